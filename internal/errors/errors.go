package errors

import "errors"

// Derivation errors indicate a failure in one of the three password stages.
var (
	// ErrEncodingRange indicates an integer could not be encoded as an unsigned 32-bit value.
	ErrEncodingRange = errors.New("value out of range for uint32 encoding")

	// ErrStretchFailure indicates scrypt rejected its parameters or inputs.
	ErrStretchFailure = errors.New("failed to stretch master passphrase")

	// ErrSigningFailure indicates the site seed could not be computed.
	ErrSigningFailure = errors.New("failed to sign site seed")

	// ErrEmptyUserName indicates a derivation was attempted without a user name.
	ErrEmptyUserName = errors.New("user name must not be empty")

	// ErrEmptySiteName indicates a derivation was attempted without a site name.
	ErrEmptySiteName = errors.New("site name must not be empty")

	// ErrInvalidCounter indicates a site counter outside 1..2^32-1.
	ErrInvalidCounter = errors.New("site counter must be between 1 and 4294967295")

	// ErrUnknownPasswordClass indicates a password type that has no templates.
	ErrUnknownPasswordClass = errors.New("unknown password type")

	// ErrPassphraseRequired indicates no master passphrase was supplied.
	ErrPassphraseRequired = errors.New("master passphrase is required")
)

// Reconciliation errors indicate problems comparing two site lists.
var (
	// ErrMalformedMergeInput indicates a site record without a name or with a zero counter.
	ErrMalformedMergeInput = errors.New("malformed site record in merge input")

	// ErrUserMismatch indicates an import was attempted from another user's document.
	ErrUserMismatch = errors.New("document belongs to a different user")
)

// Document errors indicate issues with the persisted site list.
var (
	// ErrDocumentNotFound indicates the site document does not exist yet.
	ErrDocumentNotFound = errors.New("site document not found")

	// ErrDocumentExists indicates init would overwrite an existing site document.
	ErrDocumentExists = errors.New("site document already exists")

	// ErrInvalidDocument indicates the site document is malformed.
	ErrInvalidDocument = errors.New("site document is invalid")

	// ErrUnsupportedFormat indicates a document path with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Site errors indicate issues with individual site records.
var (
	// ErrSiteNotFound indicates the named site is not in the document.
	ErrSiteNotFound = errors.New("site not found")

	// ErrSiteExists indicates a site with the same name is already in the document.
	ErrSiteExists = errors.New("site already exists")

	// ErrNoSitesSelected indicates a command matched no sites.
	ErrNoSitesSelected = errors.New("no sites selected")
)

// Audit log errors.
var (
	// ErrNoAuditLog indicates the audit log file does not exist.
	ErrNoAuditLog = errors.New("no audit log found")

	// ErrInvalidDateFormat indicates a date filter could not be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
