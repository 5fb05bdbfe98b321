package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid sync client settings
	// (for example, a missing server base URL).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidVaultConfigs indicates invalid vault account settings
	// (for example, a missing user identifier).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
)
