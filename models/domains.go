package models

// EquivalentDomains is the per-user list of domain groups considered
// interchangeable for autofill matching (e.g. amazon.com ~ amazon.co.uk).
// The whole value is replaced on every sync; there is no per-group mutation.
type EquivalentDomains struct {
	UserID string `json:"user_id"`

	// Groups is the list of equivalence classes. Each inner slice contains
	// domains that match one another.
	Groups [][]string `json:"groups"`
}

// Equivalent reports whether two domains fall into the same equivalence
// group. A domain is always equivalent to itself.
func (d EquivalentDomains) Equivalent(a, b string) bool {
	if a == b {
		return true
	}
	for _, group := range d.Groups {
		var hasA, hasB bool
		for _, domain := range group {
			if domain == a {
				hasA = true
			}
			if domain == b {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}
