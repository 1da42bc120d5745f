package utils

import "crypto/subtle"

// Zero overwrites b with zeros. Used for passphrases and derived key material.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
