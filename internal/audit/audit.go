package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/mpw/internal/configs"
	"github.com/PolarWolf314/mpw/internal/utils"
)

// TimestampFormat is RFC3339 in UTC with microseconds.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Operation names recorded in the log.
const (
	OpInit     = "init"
	OpAdd      = "add"
	OpRemove   = "remove"
	OpUpdate   = "update"
	OpGenerate = "generate"
	OpImport   = "import"
	OpExport   = "export"
)

// Entry represents a single audit log entry. It never carries passphrases or passwords.
type Entry struct {
	ID          string `json:"id"`             // Random UUID of this entry.
	Timestamp   string `json:"ts"`             // TimestampFormat.
	User        string `json:"user"`           // OS user running mpw.
	Host        string `json:"host,omitempty"` // Machine the command ran on.
	InstallUUID string `json:"install_uuid"`   // From the user config.
	Operation   string `json:"op"`

	// Optional fields depending on operation.
	Identity     string   `json:"identity,omitempty"`      // Document user name, for init.
	Document     string   `json:"document,omitempty"`      // Site document path.
	Sites        []string `json:"sites,omitempty"`         // For add/remove/update/generate.
	Mode         string   `json:"mode,omitempty"`          // For import: applied buckets or dry-run.
	AddedCount   int      `json:"added_count,omitempty"`   // For import.
	UpdatedCount int      `json:"updated_count,omitempty"` // For import.
	OutputPath   string   `json:"output_path,omitempty"`   // For export.
}

// Log appends an entry to the audit log. Failures are ignored: a command
// never fails because its audit entry could not be written.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser returns an entry for op with the user fields filled in.
func LogWithUser(op string) Entry {
	entry := Entry{Operation: op, User: configs.UserMpwSettings.Username}
	if host, err := utils.GetHostname(); err == nil {
		entry.Host = host
	}

	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return entry
	}
	entry.InstallUUID = userConfig.Install.UUID
	return entry
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return configs.UserMpwSettings.AuditLogPath()
}

// ReadEntries reads all entries from the audit log.
// A missing log yields no entries and no error.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data. Blank and malformed lines, such as a
// partially written last line, are skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return entries, err
	}
	return entries, nil
}
