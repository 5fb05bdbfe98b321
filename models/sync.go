package models

import "time"

// SyncSnapshot is the server's current full state for a user, received as
// one unit from the sync client and used to drive reconciliation of the
// local store.
type SyncSnapshot struct {
	Profile           *Profile          `json:"profile,omitempty"`
	Items             []Item            `json:"ciphers"`
	Folders           []Folder          `json:"folders"`
	Collections       []Collection      `json:"collections"`
	Organizations     []Organization    `json:"organizations"`
	Policies          []Policy          `json:"policies"`
	EquivalentDomains EquivalentDomains `json:"domains"`
}

// Profile is the optional user profile carried with a snapshot.
type Profile struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	RevisionDate time.Time `json:"revision_date"`
}
