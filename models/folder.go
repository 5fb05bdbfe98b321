package models

import "time"

// Folder is a user-defined grouping container. Folder names are always
// encrypted in the store.
type Folder struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Name         CipheredString `json:"name"`
	RevisionDate time.Time      `json:"revision_date"`
}

// FolderView is the decrypted counterpart of [Folder].
type FolderView struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	RevisionDate time.Time `json:"revision_date"`
}
