// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallbacks applied after merging when a field was supplied by no source.
const (
	defaultRequestTimeout = 15 * time.Second
	defaultSyncInterval   = 5 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Sync.RequestTimeout <= 0 {
		cfg.Sync.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = defaultSyncInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// client invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.BaseURL == "" {
		return ErrInvalidSyncConfigs
	}

	if cfg.Vault.UserID == "" {
		return ErrInvalidVaultConfigs
	}

	return nil
}
