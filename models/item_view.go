package models

import "time"

// ItemView is the decrypted, in-memory representation of an [Item] handed to
// callers. Exactly one payload pointer is non-nil, selected by Type. Views
// exist only transiently between decryption and display; they are never
// persisted.
type ItemView struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Type           ItemType   `json:"type"`
	Name           string     `json:"name"`
	Notes          *string    `json:"notes,omitempty"`
	FolderID       *string    `json:"folder_id,omitempty"`
	OrganizationID *string    `json:"organization_id,omitempty"`
	CollectionIDs  []string   `json:"collection_ids,omitempty"`
	Favorite       bool       `json:"favorite"`
	RevisionDate   time.Time  `json:"revision_date"`
	DeletedDate    *time.Time `json:"deleted_date,omitempty"`

	Login      *LoginView      `json:"login,omitempty"`
	SecureNote *SecureNoteView `json:"secure_note,omitempty"`
	Card       *CardView       `json:"card,omitempty"`
	Identity   *IdentityView   `json:"identity,omitempty"`
	SSHKey     *SSHKeyView     `json:"ssh_key,omitempty"`

	// TOTP is the current time-based code for login items carrying a TOTP
	// seed. Derived, never persisted; populated by the repository's code
	// refresh, not by decryption.
	TOTP *TOTPCode `json:"-"`
}

// LoginView represents decrypted login credentials.
type LoginView struct {
	// Username is the login identifier used for authentication.
	Username string `json:"username"`

	// Password is the secret credential associated with the username.
	Password string `json:"password"`

	// URIs defines one or more resources where the credentials apply.
	URIs []LoginURI `json:"uris,omitempty"`

	// TOTP contains an optional time-based one-time password seed: either a
	// bare base32 secret or a full otpauth:// URI.
	TOTP *string `json:"totp,omitempty"`
}

// LoginURI represents a single resource matching rule associated with a
// login entry.
type LoginURI struct {
	// URI is the target resource (domain, URL, or application identifier).
	URI string `json:"uri"`

	// Match defines the matching strategy used to associate the login with
	// the given URI.
	Match int `json:"match"`
}

// SecureNoteView represents decrypted free-form secret text.
type SecureNoteView struct {
	Text string `json:"text"`
}

// CardView represents decrypted payment card information.
type CardView struct {
	// CardholderName is the name printed on the card.
	CardholderName string `json:"cardholderName"`

	// Number is the primary account number (PAN) of the card.
	Number string `json:"number"`

	// Brand identifies the card network (e.g. Visa, MasterCard).
	Brand string `json:"brand"`

	// ExpMonth is the card expiration month.
	ExpMonth string `json:"expMonth"`

	// ExpYear is the card expiration year.
	ExpYear string `json:"expYear"`

	// Code is the card security code (CVV/CVC).
	Code string `json:"code"`
}

// IdentityView represents decrypted personal identity data.
type IdentityView struct {
	Title          string `json:"title,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	MiddleName     string `json:"middleName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Address1       string `json:"address1,omitempty"`
	Address2       string `json:"address2,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	Country        string `json:"country,omitempty"`
	Company        string `json:"company,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	SSN            string `json:"ssn,omitempty"`
	Username       string `json:"username,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
}

// SSHKeyView represents a decrypted SSH key pair.
type SSHKeyView struct {
	PrivateKey  string `json:"privateKey"`
	PublicKey   string `json:"publicKey"`
	Fingerprint string `json:"fingerprint"`
}

// HasTOTP reports whether the view is a login item carrying a TOTP seed.
func (v *ItemView) HasTOTP() bool {
	return v.Type == Login && v.Login != nil && v.Login.TOTP != nil && *v.Login.TOTP != ""
}
