package workflows

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/PolarWolf314/mpw/internal/algorithm"
	"github.com/PolarWolf314/mpw/internal/audit"
	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/utils"
)

// GenerateOptions configures the generate workflow.
type GenerateOptions struct {
	DocumentOptions

	// Sites are exact site names. Ignored when All or Pattern is set.
	Sites []string

	// Pattern selects sites the same way List does.
	Pattern string

	// All selects every site in the document.
	All bool

	// Passphrase is wiped once the master secret has been derived.
	Passphrase []byte

	// Parallelism bounds concurrent site renders. 0 means runtime.NumCPU().
	Parallelism int
}

// GeneratedPassword is one rendered site password.
type GeneratedPassword struct {
	Site     string
	Login    string
	Class    algorithm.PasswordClass
	Counter  uint32
	Password string
}

// GenerateResult contains the outcome of a generate operation.
type GenerateResult struct {
	Path string
	User string

	// KeyID identifies the master secret so users can spot a mistyped passphrase.
	KeyID string

	// Passwords are in document order.
	Passwords []GeneratedPassword
}

// Generate derives the master secret once and renders every selected site.
//
// Returns ErrPassphraseRequired if no passphrase is given.
// Returns ErrNoSitesSelected if the selection matched nothing.
// Returns ErrSiteNotFound if a named site is not in the document.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	passphrase := opts.Passphrase
	defer func() { utils.Zero(passphrase) }()

	if len(opts.Passphrase) == 0 {
		return nil, mpwerrors.ErrPassphraseRequired
	}

	opened, err := openDocument(opts.DocumentOptions)
	if err != nil {
		return nil, err
	}
	selected, err := selectSites(opened.Doc, opts.Sites, opts.Pattern, opts.All)
	if err != nil {
		return nil, err
	}

	var secret *algorithm.MasterSecret
	pending := algorithm.StartSecret(opened.Doc.User, passphrase)
	select {
	case <-ctx.Done():
		// The derivation still reads the passphrase; wipe both once it finishes.
		abandoned := passphrase
		passphrase = nil
		go func() {
			res := <-pending
			res.Secret.Wipe()
			utils.Zero(abandoned)
		}()
		return nil, ctx.Err()
	case res := <-pending:
		if res.Err != nil {
			return nil, res.Err
		}
		secret = res.Secret
	}
	defer secret.Wipe()

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	passwords := make([]GeneratedPassword, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, site := range selected {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			password, err := algorithm.SitePassword(secret, site.Name, site.Counter, site.Class)
			if err != nil {
				return fmt.Errorf("site %q: %w", site.Name, err)
			}
			passwords[i] = GeneratedPassword{
				Site:     site.Name,
				Login:    site.Login,
				Class:    site.Class,
				Counter:  site.Counter,
				Password: password,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	opened.remember()

	names := make([]string, len(selected))
	for i, s := range selected {
		names[i] = s.Name
	}
	logSites(audit.OpGenerate, opened.Path, names...)

	return &GenerateResult{
		Path:      opened.Path,
		User:      opened.Doc.User,
		KeyID:     secret.KeyID(),
		Passwords: passwords,
	}, nil
}
