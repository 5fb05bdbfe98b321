package models

import "time"

// Collection is a server-owned grouping of shared items within an
// organization. Collections have no offline-mutation path: they are replaced
// wholesale on every sync.
type Collection struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	OrganizationID string         `json:"organization_id"`
	Name           CipheredString `json:"name"`
	ReadOnly       bool           `json:"read_only"`
	RevisionDate   time.Time      `json:"revision_date"`
}

// Organization describes the user's membership in an organization.
// Server-owned, replaced wholesale on sync.
type Organization struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Enabled      bool      `json:"enabled"`
	RevisionDate time.Time `json:"revision_date"`
}

// Policy is an organization-imposed rule (e.g. master password requirements,
// vault timeout limits). Server-owned, replaced wholesale on sync.
type Policy struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Type           int    `json:"type"`
	Enabled        bool   `json:"enabled"`

	// Data carries the type-specific policy options as raw JSON. Policies
	// contain no secrets and are stored in plain form.
	Data []byte `json:"data,omitempty"`
}
