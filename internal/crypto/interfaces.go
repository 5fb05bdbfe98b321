package crypto

import (
	"context"

	"github.com/gophervault/vaultsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyProvider supplies symmetric keys for encrypt/decrypt calls. The
// cryptography boundary never caches keys; every operation resolves its key
// through this interface.
type KeyProvider interface {
	// ResolveKey returns the 32-byte key for userID. itemID is non-empty
	// when the caller needs the key in the context of a specific item;
	// providers without per-item keys ignore it. Returns ErrKeyUnavailable
	// when no key can be resolved (e.g. the vault is locked).
	ResolveKey(ctx context.Context, userID, itemID string) ([]byte, error)
}

// CipherService is the cryptography boundary between encrypted-at-rest
// records and plaintext view models. Both directions are fallible and safe
// to call from any goroutine; implementations are stateless with respect to
// key material.
//
// Encrypt-then-decrypt round-trips preserve all user-visible fields.
// Decryption fails closed: corrupted ciphertext yields ErrDecryptionFailed
// and never partially decrypted plaintext.
type CipherService interface {
	EncryptItem(ctx context.Context, view models.ItemView) (models.Item, error)
	DecryptItem(ctx context.Context, item models.Item) (models.ItemView, error)
	EncryptFolder(ctx context.Context, view models.FolderView) (models.Folder, error)
	DecryptFolder(ctx context.Context, folder models.Folder) (models.FolderView, error)
}

// KeychainService owns client-side key generation and derivation in a
// zero-knowledge scheme. It knows nothing about the network, the database,
// or users; its single job is producing and protecting keys.
//
// Scheme:
//
//	salt     = GenerateSalt()                      (provisioning)
//	userKey  = DeriveUserKey(password, salt)       (unlock)
//	itemKey  = GenerateItemKey()                   (optional, per item)
//	wrapped  = WrapKey(itemKey, userKey)           (stored on the item)
//	itemKey  = UnwrapKey(wrapped, userKey)         (decrypt path)
type KeychainService interface {
	// GenerateSalt generates a random 16-byte key-derivation salt. The
	// salt is not a secret; it is stored server-side in the clear.
	GenerateSalt() ([]byte, error)

	// DeriveUserKey derives the 256-bit user key from the master password
	// and salt via Argon2id. The key exists only in client memory and is
	// never transmitted.
	DeriveUserKey(masterPassword string, salt []byte) []byte

	// GenerateItemKey generates a random 256-bit per-item wrapping key.
	GenerateItemKey() ([]byte, error)

	// WrapKey encrypts key with kek via AES-256-GCM. The result
	// (nonce + ciphertext, base64) is safe to store at rest.
	WrapKey(key, kek []byte) (string, error)

	// UnwrapKey reverses WrapKey. Returns an error if the blob is
	// malformed or the kek is wrong (authentication-tag mismatch).
	UnwrapKey(wrapped string, kek []byte) ([]byte, error)
}
