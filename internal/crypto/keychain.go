// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keychainService is the private implementation of [KeychainService].
type keychainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeychainService constructs a [KeychainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeychainService() KeychainService {
	return &keychainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeychainService]. It reads 16 random bytes from
// the OS CSPRNG and returns them as the key-derivation salt. Returns an
// error if the random read fails.
func (k *keychainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveUserKey implements [KeychainService]. It derives a 256-bit key from
// masterPassword and salt using Argon2id with the parameters stored in the
// receiver. The result exists only in client memory and is never
// transmitted to the server.
func (k *keychainService) DeriveUserKey(masterPassword string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// GenerateItemKey implements [KeychainService]. It reads 32 random bytes
// from the OS CSPRNG and returns them as a per-item wrapping key. Returns
// an error if the random read fails.
func (k *keychainService) GenerateItemKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// WrapKey implements [KeychainService]. It encrypts key with kek using
// AES-256-GCM via the same blob format as the item payloads:
// base64(nonce ‖ ciphertext).
func (k *keychainService) WrapKey(key, kek []byte) (string, error) {
	wrapped, err := encryptBytes(key, kek)
	if err != nil {
		return "", fmt.Errorf("wrap key: %w", err)
	}
	return wrapped, nil
}

// UnwrapKey implements [KeychainService]. It unwraps a blob produced by
// [keychainService.WrapKey] using kek. An authentication error here almost
// always means the wrong master password produced a wrong user key.
func (k *keychainService) UnwrapKey(wrapped string, kek []byte) ([]byte, error) {
	key, err := decryptBytes(wrapped, kek)
	if err != nil {
		return nil, fmt.Errorf("unwrap key: %w", err)
	}
	return key, nil
}
