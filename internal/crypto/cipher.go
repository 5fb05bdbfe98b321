package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gophervault/vaultsync/models"
)

// cipherService is the private implementation of [CipherService]. It holds
// no key material; every call resolves its key through the provider.
type cipherService struct {
	keys KeyProvider
}

// NewCipherService constructs a [CipherService] that resolves keys through
// provider on every call.
func NewCipherService(provider KeyProvider) CipherService {
	return &cipherService{keys: provider}
}

// itemPayload is the JSON shape serialized into Item.Data. Exactly one
// field is set, matching the item type.
type itemPayload struct {
	Login      *models.LoginView      `json:"login,omitempty"`
	SecureNote *models.SecureNoteView `json:"secureNote,omitempty"`
	Card       *models.CardView       `json:"card,omitempty"`
	Identity   *models.IdentityView   `json:"identity,omitempty"`
	SSHKey     *models.SSHKeyView     `json:"sshKey,omitempty"`
}

// EncryptItem implements [CipherService]. It resolves the user key, then
// encrypts the display name, the type-specific payload, and the optional
// notes into an at-rest record. Identity and reference fields (ids, folder,
// collections, dates) are carried over in plain form; they are the indexing
// fields the store is allowed to see.
func (c *cipherService) EncryptItem(ctx context.Context, view models.ItemView) (models.Item, error) {
	key, err := c.keys.ResolveKey(ctx, view.UserID, view.ID)
	if err != nil {
		return models.Item{}, fmt.Errorf("resolve key for encrypt: %w", err)
	}

	payload := itemPayload{
		Login:      view.Login,
		SecureNote: view.SecureNote,
		Card:       view.Card,
		Identity:   view.Identity,
		SSHKey:     view.SSHKey,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: marshal payload: %w", ErrEncryptionFailed, err)
	}

	encName, err := encryptBytes([]byte(view.Name), key)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: encrypt name: %w", ErrEncryptionFailed, err)
	}
	encData, err := encryptBytes(raw, key)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: encrypt payload: %w", ErrEncryptionFailed, err)
	}

	item := models.Item{
		ID:             view.ID,
		UserID:         view.UserID,
		Type:           view.Type,
		Name:           models.CipheredString(encName),
		Data:           models.CipheredString(encData),
		FolderID:       view.FolderID,
		OrganizationID: view.OrganizationID,
		CollectionIDs:  view.CollectionIDs,
		Favorite:       view.Favorite,
		RevisionDate:   view.RevisionDate,
		DeletedDate:    view.DeletedDate,
	}

	if view.Notes != nil {
		encNotes, notesErr := encryptBytes([]byte(*view.Notes), key)
		if notesErr != nil {
			return models.Item{}, fmt.Errorf("%w: encrypt notes: %w", ErrEncryptionFailed, notesErr)
		}
		n := models.CipheredString(encNotes)
		item.Notes = &n
	}

	return item, nil
}

// DecryptItem implements [CipherService]. When the record carries a
// per-item wrapping key it is unwrapped with the user key first and the
// payload is decrypted with the unwrapped key. Any failure other than an
// unresolvable key maps to ErrDecryptionFailed so callers can treat the record
// as unavailable without inspecting the cause.
func (c *cipherService) DecryptItem(ctx context.Context, item models.Item) (models.ItemView, error) {
	key, err := c.keys.ResolveKey(ctx, item.UserID, item.ID)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("resolve key for decrypt: %w", err)
	}

	if item.Key != nil {
		itemKey, unwrapErr := decryptBytes(string(*item.Key), key)
		if unwrapErr != nil {
			return models.ItemView{}, fmt.Errorf("%w: unwrap item key (id=%s): %w", ErrDecryptionFailed, item.ID, unwrapErr)
		}
		key = itemKey
	}

	name, err := decryptBytes(string(item.Name), key)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("%w: decrypt name (id=%s): %w", ErrDecryptionFailed, item.ID, err)
	}
	raw, err := decryptBytes(string(item.Data), key)
	if err != nil {
		return models.ItemView{}, fmt.Errorf("%w: decrypt payload (id=%s): %w", ErrDecryptionFailed, item.ID, err)
	}

	var payload itemPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return models.ItemView{}, fmt.Errorf("%w: unmarshal payload (id=%s): %w", ErrDecryptionFailed, item.ID, err)
	}

	view := models.ItemView{
		ID:             item.ID,
		UserID:         item.UserID,
		Type:           item.Type,
		Name:           string(name),
		FolderID:       item.FolderID,
		OrganizationID: item.OrganizationID,
		CollectionIDs:  item.CollectionIDs,
		Favorite:       item.Favorite,
		RevisionDate:   item.RevisionDate,
		DeletedDate:    item.DeletedDate,
		Login:          payload.Login,
		SecureNote:     payload.SecureNote,
		Card:           payload.Card,
		Identity:       payload.Identity,
		SSHKey:         payload.SSHKey,
	}

	if item.Notes != nil {
		notes, notesErr := decryptBytes(string(*item.Notes), key)
		if notesErr != nil {
			return models.ItemView{}, fmt.Errorf("%w: decrypt notes (id=%s): %w", ErrDecryptionFailed, item.ID, notesErr)
		}
		n := string(notes)
		view.Notes = &n
	}

	return view, nil
}

// EncryptFolder implements [CipherService].
func (c *cipherService) EncryptFolder(ctx context.Context, view models.FolderView) (models.Folder, error) {
	key, err := c.keys.ResolveKey(ctx, view.UserID, "")
	if err != nil {
		return models.Folder{}, fmt.Errorf("resolve key for encrypt: %w", err)
	}

	encName, err := encryptBytes([]byte(view.Name), key)
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: encrypt folder name: %w", ErrEncryptionFailed, err)
	}

	return models.Folder{
		ID:           view.ID,
		UserID:       view.UserID,
		Name:         models.CipheredString(encName),
		RevisionDate: view.RevisionDate,
	}, nil
}

// DecryptFolder implements [CipherService].
func (c *cipherService) DecryptFolder(ctx context.Context, folder models.Folder) (models.FolderView, error) {
	key, err := c.keys.ResolveKey(ctx, folder.UserID, "")
	if err != nil {
		return models.FolderView{}, fmt.Errorf("resolve key for decrypt: %w", err)
	}

	name, err := decryptBytes(string(folder.Name), key)
	if err != nil {
		return models.FolderView{}, fmt.Errorf("%w: decrypt folder name (id=%s): %w", ErrDecryptionFailed, folder.ID, err)
	}

	return models.FolderView{
		ID:           folder.ID,
		UserID:       folder.UserID,
		Name:         string(name),
		RevisionDate: folder.RevisionDate,
	}, nil
}

func encryptBytes(plaintext, key []byte) (string, error) {
	if len(key) != 32 {
		return "", fmt.Errorf("invalid key length: %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return "", err
	}

	ct := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ct...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func decryptBytes(value string, key []byte) ([]byte, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	blob, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ct := blob[:nonceSize], blob[nonceSize:]
	pt, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, err
	}
	return pt, nil
}
