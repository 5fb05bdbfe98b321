package store

import (
	"context"

	"github.com/gophervault/vaultsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemStore is the low-level persistence interface for encrypted vault
// items. All operations are scoped by user; records are keyed by
// (user_id, id). The store never holds plaintext secret fields.
type ItemStore interface {
	// Upsert inserts item if absent, otherwise overwrites the stored
	// record with the same (user_id, id).
	Upsert(ctx context.Context, item models.Item) error

	// Delete removes a single record. Deleting a missing record returns
	// ErrItemNotFound.
	Delete(ctx context.Context, userID, id string) error

	// ReplaceAll reconciles the stored records for userID against the full
	// server-current list: every record in items is upserted and every
	// previously stored record absent from items is deleted, atomically.
	// Readers never observe a half-applied snapshot.
	ReplaceAll(ctx context.Context, userID string, items []models.Item) error

	FetchAll(ctx context.Context, userID string) ([]models.Item, error)
	FetchByID(ctx context.Context, userID, id string) (models.Item, error)
}

// FolderStore is the low-level persistence interface for folders. Folders
// support both wholesale reconciliation and direct local mutation, like
// items.
type FolderStore interface {
	Upsert(ctx context.Context, folder models.Folder) error
	Delete(ctx context.Context, userID, id string) error
	ReplaceAll(ctx context.Context, userID string, folders []models.Folder) error
	FetchAll(ctx context.Context, userID string) ([]models.Folder, error)
}

// CollectionStore persists server-owned collections. Collections have no
// offline-mutation path and are replaced wholesale on sync.
type CollectionStore interface {
	ReplaceAll(ctx context.Context, userID string, collections []models.Collection) error
	FetchAll(ctx context.Context, userID string) ([]models.Collection, error)
}

// OrganizationStore persists server-owned organization memberships.
type OrganizationStore interface {
	ReplaceAll(ctx context.Context, userID string, organizations []models.Organization) error
	FetchAll(ctx context.Context, userID string) ([]models.Organization, error)
}

// PolicyStore persists server-owned policies.
type PolicyStore interface {
	ReplaceAll(ctx context.Context, userID string, policies []models.Policy) error
	FetchAll(ctx context.Context, userID string) ([]models.Policy, error)
}

// DomainStore persists the per-user equivalent-domains list, replaced as a
// single unit on every sync.
type DomainStore interface {
	Replace(ctx context.Context, domains models.EquivalentDomains) error
	Fetch(ctx context.Context, userID string) (models.EquivalentDomains, error)
}

// ChangeFeed exposes per-user change notifications. A signal is delivered
// whenever any record for that user changes (insert, update, delete, or
// reconcile); consumers re-read the store to obtain the authoritative state.
type ChangeFeed interface {
	// Subscribe returns a channel that receives a signal on every change to
	// the user's records. The channel is closed when ctx is cancelled.
	// Signals coalesce: a slow consumer receives at least one signal for
	// any burst of changes, not necessarily one per change.
	Subscribe(ctx context.Context, userID string) <-chan struct{}
}
