package crypto

import "errors"

var (
	// ErrKeyUnavailable is returned when no key can be resolved for an
	// operation, e.g. the vault has not been unlocked for that user.
	// Recoverable: the caller may prompt for unlock and retry.
	ErrKeyUnavailable = errors.New("no resolvable key available")

	// ErrDecryptionFailed is returned for corrupt or incompatible
	// ciphertext (bad base64, truncated blob, authentication-tag
	// mismatch). Callers treat the record as unavailable rather than
	// fatal.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionFailed is returned when a plaintext view cannot be
	// converted to an at-rest record.
	ErrEncryptionFailed = errors.New("encryption failed")
)
