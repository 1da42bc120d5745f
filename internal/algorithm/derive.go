package algorithm

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/scrypt"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/utils"
)

// Namespace scopes both the master secret salt and the site seed message.
const Namespace = "com.lyndir.masterpassword"

// Scrypt cost parameters. They are part of the algorithm and must not change.
const (
	ScryptN = 32768
	ScryptR = 8
	ScryptP = 2
)

const (
	// MasterSecretLength is the scrypt output length in bytes.
	MasterSecretLength = 64

	// SiteSeedLength is the HMAC-SHA256 output length in bytes.
	SiteSeedLength = sha256.Size
)

// MasterSecret is the stretched identity key. It is never persisted or displayed.
type MasterSecret [MasterSecretLength]byte

// Wipe zeroes the secret in place.
func (m *MasterSecret) Wipe() {
	if m != nil {
		utils.Zero(m[:])
	}
}

// KeyID returns the uppercase hex SHA-256 of the secret. It identifies the
// secret without revealing anything usable to derive passwords.
func (m *MasterSecret) KeyID() string {
	sum := sha256.Sum256(m[:])
	return fmt.Sprintf("%X", sum[:])
}

// SiteSeed is the per-site pseudorandom value that selects template and characters.
type SiteSeed [SiteSeedLength]byte

// Wipe zeroes the seed in place.
func (s *SiteSeed) Wipe() {
	if s != nil {
		utils.Zero(s[:])
	}
}

// DeriveSecret stretches passphrase with scrypt, salted by the namespace and userName.
// The caller keeps ownership of passphrase and should wipe it when done.
func DeriveSecret(userName string, passphrase []byte) (*MasterSecret, error) {
	if userName == "" {
		return nil, mpwerrors.ErrEmptyUserName
	}

	salt, err := scopedMessage(userName)
	if err != nil {
		return nil, fmt.Errorf("building salt: %w", err)
	}
	defer utils.Zero(salt)

	key, err := scrypt.Key(passphrase, salt, ScryptN, ScryptR, ScryptP, MasterSecretLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mpwerrors.ErrStretchFailure, err)
	}
	defer utils.Zero(key)

	secret := new(MasterSecret)
	copy(secret[:], key)
	return secret, nil
}

// DeriveSiteSeed signs namespace ‖ len(siteName) ‖ siteName ‖ counter with the master secret.
func DeriveSiteSeed(secret *MasterSecret, siteName string, counter uint32) (*SiteSeed, error) {
	if secret == nil {
		return nil, fmt.Errorf("%w: missing master secret", mpwerrors.ErrSigningFailure)
	}
	if siteName == "" {
		return nil, mpwerrors.ErrEmptySiteName
	}
	if counter == 0 {
		return nil, mpwerrors.ErrInvalidCounter
	}

	scope, err := scopedMessage(siteName)
	if err != nil {
		return nil, fmt.Errorf("building site message: %w", err)
	}
	message := binary.BigEndian.AppendUint32(scope, counter)

	mac := hmac.New(sha256.New, secret[:])
	if _, err := mac.Write(message); err != nil {
		return nil, fmt.Errorf("%w: %v", mpwerrors.ErrSigningFailure, err)
	}
	sum := mac.Sum(nil)
	defer utils.Zero(sum)
	if len(sum) != SiteSeedLength {
		return nil, fmt.Errorf("%w: unexpected digest length %d", mpwerrors.ErrSigningFailure, len(sum))
	}

	seed := new(SiteSeed)
	copy(seed[:], sum)
	return seed, nil
}
