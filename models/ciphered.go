package models

type (
	// CipheredString is a string alias representing an encrypted value as it
	// is stored at rest: base64(nonce || ciphertext). The store treats it as
	// an opaque blob and never interprets its content.
	CipheredString string
)
