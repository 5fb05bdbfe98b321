package models

// ItemType defines the semantic type of a vault item. The value determines
// which payload variant of [ItemView] is populated after decryption.
type ItemType int

const (
	// Login represents authentication credentials: username, password,
	// one or more URIs, and an optional TOTP seed.
	Login ItemType = 1

	// SecureNote represents free-form secret text.
	SecureNote ItemType = 2

	// Card represents payment card information. All fields are considered
	// highly sensitive and always encrypted.
	Card ItemType = 3

	// Identity represents personal identity data (name, address, contact
	// details, document numbers).
	Identity ItemType = 4

	// SSHKey represents an SSH key pair with its fingerprint.
	SSHKey ItemType = 5
)

// String returns the canonical lowercase name of the item type, used in logs
// and section labels.
func (t ItemType) String() string {
	switch t {
	case Login:
		return "login"
	case SecureNote:
		return "secureNote"
	case Card:
		return "card"
	case Identity:
		return "identity"
	case SSHKey:
		return "sshKey"
	default:
		return "unknown"
	}
}
