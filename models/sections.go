package models

// VaultSection is one named group of decrypted items in a sectioned vault
// list emission.
type VaultSection struct {
	// Name is the display label of the section, e.g. "All Items".
	Name string `json:"name"`

	Items []ItemView `json:"items"`
}

// VaultListUpdate is a single emission of the repository's item stream.
// Each update is the authoritative full state at emission time, not a diff.
type VaultListUpdate struct {
	Sections []VaultSection `json:"sections"`

	// Err is set when the underlying store read failed; Sections is empty
	// in that case and the subscriber decides whether to retry. Per-item
	// decryption failures never surface here.
	Err error `json:"-"`
}

// TotalItems returns the item count across all sections.
func (u VaultListUpdate) TotalItems() int {
	var n int
	for _, s := range u.Sections {
		n += len(s.Items)
	}
	return n
}
