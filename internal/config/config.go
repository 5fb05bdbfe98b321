// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// vaultsync client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds network settings for the snapshot sync client and the
	// background sync job.
	Sync Sync `envPrefix:"SYNC_"`

	// Vault holds the account identity and key-derivation inputs used to
	// unlock the local vault.
	Vault Vault `envPrefix:"VAULT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local vault database.
type DB struct {
	// DSN is the SQLite database file path
	// (e.g. "/home/user/.vaultsync/vault.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds settings for the snapshot sync client and the periodic
// background sync job.
type Sync struct {
	// BaseURL is the base URL of the sync server
	// (e.g. "https://vault.example.com").
	// Env: SYNC_ADDRESS
	BaseURL string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for a single snapshot fetch
	// (e.g. "15s").
	// Env: SYNC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Interval defines how often the background sync job runs (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Vault holds account identity and key-derivation inputs. The master
// password itself never leaves the process; it is consumed once at startup
// to derive the user key.
type Vault struct {
	// UserID is the account identifier the local store is scoped to.
	// Env: VAULT_USER_ID
	UserID string `env:"USER_ID"`

	// MasterPassword is the unlock secret used for user-key derivation.
	// Supplying it via environment is intended for headless operation;
	// interactive unlock flows are out of scope of this client core.
	// Env: VAULT_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD"`

	// KDFSalt is the base64-encoded per-account key-derivation salt,
	// as provisioned by the server at account creation.
	// Env: VAULT_KDF_SALT
	KDFSalt string `env:"KDF_SALT"`
}

// GetConfig loads, merges, and validates the client configuration from all
// available sources in the following priority order (first non-zero value
// wins under mergo semantics):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
