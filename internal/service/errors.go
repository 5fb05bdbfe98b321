package service

import "errors"

var (
	// ErrReconciliationConflict is returned when a snapshot cannot be
	// applied to the local store as one unit; the previous local state is
	// left intact and the next sync retries from scratch.
	ErrReconciliationConflict = errors.New("snapshot reconciliation conflict")

	ErrInvalidItem = errors.New("invalid item")
)
