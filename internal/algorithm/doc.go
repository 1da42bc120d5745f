// Package algorithm implements the Master Password site password derivation.
//
// A password is produced in three stages:
//
//   - DeriveSecret stretches the master passphrase with scrypt (N=32768, r=8,
//     p=2) into a 64-byte MasterSecret, salted by the user name.
//   - DeriveSiteSeed signs the site name and counter with HMAC-SHA256 keyed by
//     the MasterSecret, giving a 32-byte SiteSeed.
//   - RenderPassword picks a template for the PasswordClass from the first
//     seed byte and fills each template symbol from its character group.
//
// Every stage is a pure function. The scrypt stage dominates latency, so
// Start and StartSecret run it on a goroutine and deliver a single result.
//
// # Secrets
//
// MasterSecret and SiteSeed are fixed-size arrays with a Wipe method.
// Callers should wipe them, and the passphrase bytes, as soon as they are
// no longer needed. Neither type is ever written to disk or printed; use
// MasterSecret.KeyID to show a fingerprint instead.
//
// # Compatibility
//
// The template and character tables, the namespace and the scrypt
// parameters are the algorithm's wire format. Changing any of them changes
// every generated password.
package algorithm
