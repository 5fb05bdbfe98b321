package models

import "time"

// Item is a single vault entry ("cipher") as it is persisted locally.
// It is the primary persistence model for all sensitive user data.
// All confidential payloads are stored encrypted and opaque to the database.
type Item struct {
	// ID is the server-assigned identifier of the item, stable across syncs.
	// Items created locally before their first upload receive a client-side
	// UUID that the server adopts.
	ID string `json:"id"`

	// UserID is the owner of this vault item.
	UserID string `json:"user_id"`

	// Type defines the semantic type of the stored payload
	// (login, secure note, card, identity, SSH key).
	Type ItemType `json:"type"`

	// Name is the encrypted display name of the item.
	Name CipheredString `json:"name"`

	// Data holds the encrypted type-specific payload.
	// The database treats this field as an opaque string.
	Data CipheredString `json:"data"`

	// Notes contains optional encrypted user notes.
	Notes *CipheredString `json:"notes,omitempty"`

	// Key is an optional per-item wrapping key, itself encrypted with the
	// user key. Rarely populated outside organization-owned items; when
	// absent the payload is encrypted directly with the user key.
	Key *CipheredString `json:"key,omitempty"`

	// FolderID is an optional weak reference to a folder owned by the same
	// user. An item references at most one folder.
	FolderID *string `json:"folder_id,omitempty"`

	// OrganizationID is an optional reference to the owning organization.
	OrganizationID *string `json:"organization_id,omitempty"`

	// CollectionIDs is the set of collections the item is shared into.
	CollectionIDs []string `json:"collection_ids,omitempty"`

	// Favorite marks the item for the favorites section.
	Favorite bool `json:"favorite"`

	// RevisionDate is the server-assigned modification timestamp,
	// monotonic per item.
	RevisionDate time.Time `json:"revision_date"`

	// DeletedDate is set when the item has been soft-deleted (moved to
	// trash). Soft-deleted items are excluded from the main vault list.
	DeletedDate *time.Time `json:"deleted_date,omitempty"`
}

// TableName returns the name of the database table associated with Item.
func (i *Item) TableName() string {
	return "ciphers"
}
