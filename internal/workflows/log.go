package workflows

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/PolarWolf314/mpw/internal/audit"
	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/utils"
)

// LogOptions selects and orders audit entries. Zero values disable a filter.
type LogOptions struct {
	Limit   int  // keep at most this many of the most recent matches
	Reverse bool // newest first

	User       string // OS user, case-insensitive
	Operations string // comma-separated operation names
	Site       string // exact site name
	Since      string // YYYY-MM-DD, inclusive
	Until      string // YYYY-MM-DD, inclusive of the whole day
}

// LogResult holds the matching entries in the requested order.
type LogResult struct {
	Entries []audit.Entry

	// TotalEntriesBeforeFilter lets callers tell an empty log from an over-narrow filter.
	TotalEntriesBeforeFilter int
}

// Log loads the audit journal and applies the filters in opts.
//
// Returns ErrNoAuditLog if no audit log exists.
// Returns ErrInvalidDateFormat if a date filter is malformed.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	data, err := os.ReadFile(audit.LogPath())
	if os.IsNotExist(err) {
		return nil, mpwerrors.ErrNoAuditLog
	}
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	entries, err := audit.ParseEntries(data)
	if err != nil {
		return nil, fmt.Errorf("parsing audit log: %w", err)
	}

	result := &LogResult{TotalEntriesBeforeFilter: len(entries)}
	filtered := entries

	if opts.User != "" {
		filtered = filterEntries(filtered, func(e audit.Entry) bool {
			return strings.EqualFold(e.User, opts.User)
		})
	}

	if ops := utils.SplitList(opts.Operations); len(ops) > 0 {
		for i := range ops {
			ops[i] = strings.ToLower(ops[i])
		}
		filtered = filterEntries(filtered, func(e audit.Entry) bool {
			return slices.Contains(ops, strings.ToLower(e.Operation))
		})
	}

	if opts.Site != "" {
		filtered = filterEntries(filtered, func(e audit.Entry) bool {
			return slices.Contains(e.Sites, opts.Site)
		})
	}

	if opts.Since != "" {
		since, err := time.Parse(time.DateOnly, opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: --since date format invalid, use YYYY-MM-DD", mpwerrors.ErrInvalidDateFormat)
		}
		filtered = filterEntries(filtered, func(e audit.Entry) bool {
			t, ok := parseTimestamp(e.Timestamp)
			return ok && !t.Before(since)
		})
	}

	if opts.Until != "" {
		until, err := time.Parse(time.DateOnly, opts.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: --until date format invalid, use YYYY-MM-DD", mpwerrors.ErrInvalidDateFormat)
		}
		// Include the entire day.
		until = until.Add(24*time.Hour - time.Nanosecond)
		filtered = filterEntries(filtered, func(e audit.Entry) bool {
			t, ok := parseTimestamp(e.Timestamp)
			return ok && !t.After(until)
		})
	}

	if opts.Reverse {
		slices.Reverse(filtered)
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			// Reversed: the first N are the most recent.
			filtered = filtered[:opts.Limit]
		} else {
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

func filterEntries(entries []audit.Entry, keep func(audit.Entry) bool) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		if keep(e) {
			result = append(result, e)
		}
	}
	return result
}

func parseTimestamp(ts string) (time.Time, bool) {
	t, err := time.Parse(audit.TimestampFormat, ts)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
	}
	return t, err == nil
}

// FormatDate renders an entry timestamp as a date, or a prefix of it when unparsable.
func FormatDate(ts string) string {
	if t, ok := parseTimestamp(ts); ok {
		return t.Format(time.DateOnly)
	}
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

// FormatDateTime renders an entry timestamp as date and time in UTC.
func FormatDateTime(ts string) string {
	if t, ok := parseTimestamp(ts); ok {
		return t.Format(time.DateTime)
	}
	if len(ts) >= 19 {
		return ts[:19]
	}
	return ts
}

// FormatDetails summarizes what an entry touched, for the default log view.
func FormatDetails(e audit.Entry) string {
	switch e.Operation {
	case audit.OpAdd, audit.OpRemove, audit.OpUpdate, audit.OpGenerate:
		if len(e.Sites) > 3 {
			return fmt.Sprintf("%d sites", len(e.Sites))
		}
		return strings.Join(e.Sites, ", ")
	case audit.OpImport:
		return fmt.Sprintf("%s, %d added, %d updated", e.Mode, e.AddedCount, e.UpdatedCount)
	case audit.OpExport:
		return e.OutputPath
	case audit.OpInit:
		return e.Identity
	default:
		return ""
	}
}

// FormatDetailsOneline is the terse variant of FormatDetails used by --oneline.
func FormatDetailsOneline(e audit.Entry) string {
	switch e.Operation {
	case audit.OpAdd, audit.OpRemove, audit.OpUpdate:
		return strings.Join(e.Sites, ", ")
	case audit.OpGenerate:
		if len(e.Sites) == 1 {
			return e.Sites[0]
		}
		return fmt.Sprintf("%d sites", len(e.Sites))
	case audit.OpImport:
		return fmt.Sprintf("%s +%d ~%d", e.Mode, e.AddedCount, e.UpdatedCount)
	case audit.OpExport:
		return e.OutputPath
	case audit.OpInit:
		return e.Identity
	default:
		return ""
	}
}
