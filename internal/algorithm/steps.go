package algorithm

// Request holds the inputs of one full derivation.
type Request struct {
	UserName   string
	Passphrase []byte
	SiteName   string
	Counter    uint32
	Class      PasswordClass
}

// Result is delivered exactly once by Start.
type Result struct {
	Password string
	Err      error
}

// SecretResult is delivered exactly once by StartSecret.
type SecretResult struct {
	Secret *MasterSecret
	Err    error
}

// AllSteps derives the master secret, the site seed and the rendered password
// in sequence. The first failing stage aborts the derivation; nothing is retried.
func AllSteps(userName string, passphrase []byte, siteName string, counter uint32, class PasswordClass) (string, error) {
	secret, err := DeriveSecret(userName, passphrase)
	if err != nil {
		return "", err
	}
	defer secret.Wipe()

	return SitePassword(secret, siteName, counter, class)
}

// SitePassword runs the seed and render stages against an existing master secret.
func SitePassword(secret *MasterSecret, siteName string, counter uint32, class PasswordClass) (string, error) {
	seed, err := DeriveSiteSeed(secret, siteName, counter)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()

	return RenderPassword(seed, class)
}

// Start runs AllSteps on its own goroutine. The returned channel receives a
// single Result and is then closed. A started derivation cannot be cancelled;
// callers that stop waiting simply abandon the channel.
func Start(req Request) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		password, err := AllSteps(req.UserName, req.Passphrase, req.SiteName, req.Counter, req.Class)
		out <- Result{Password: password, Err: err}
	}()
	return out
}

// StartSecret runs DeriveSecret on its own goroutine, delivering one SecretResult.
func StartSecret(userName string, passphrase []byte) <-chan SecretResult {
	out := make(chan SecretResult, 1)
	go func() {
		defer close(out)
		secret, err := DeriveSecret(userName, passphrase)
		out <- SecretResult{Secret: secret, Err: err}
	}()
	return out
}
