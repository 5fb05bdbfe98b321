package models

import "time"

// TOTPCode is a derived time-based one-time password. Codes are computed on
// demand from an item's TOTP seed and the current instant and are never
// written to the store.
type TOTPCode struct {
	// Code is the numeric one-time code, zero-padded to its digit count.
	Code string `json:"code"`

	// Period is the validity window length in seconds, aligned to
	// Unix-epoch boundaries.
	Period uint `json:"period"`

	// IssuedAt is the instant the code was computed.
	IssuedAt time.Time `json:"issued_at"`

	// ExpiresAt is the end of the current validity window:
	// the next multiple of Period after IssuedAt.
	ExpiresAt time.Time `json:"expires_at"`
}
