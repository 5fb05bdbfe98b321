package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/vault.db")
	t.Setenv("SYNC_ADDRESS", "https://vault.example.com")
	t.Setenv("SYNC_INTERVAL", "2m")
	t.Setenv("VAULT_USER_ID", "user-1")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://vault.example.com", cfg.Sync.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, "user-1", cfg.Vault.UserID)
}

func TestParseJSON_StringDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "/tmp/v.db"}},
		"sync": map[string]any{
			"base_url":        "http://localhost:8080",
			"request_timeout": "30s",
			"interval":        "10m",
		},
		"vault": map[string]any{"user_id": "user-2"},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/v.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:8080", cfg.Sync.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Sync.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, "user-2", cfg.Vault.UserID)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestBuilder_MergePriorityAndDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "/primary.db"}}, Vault: Vault{UserID: "u"}},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "/secondary.db"}},
			Sync:    Sync{BaseURL: "http://fallback"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// First source wins for fields it set; later sources fill the gaps.
	assert.Equal(t, "/primary.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://fallback", cfg.Sync.BaseURL)

	// Unset durations fall back to defaults.
	assert.Equal(t, defaultRequestTimeout, cfg.Sync.RequestTimeout)
	assert.Equal(t, defaultSyncInterval, cfg.Sync.Interval)
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want error
	}{
		{
			name: "missing dsn",
			cfg: StructuredConfig{
				Sync:  Sync{BaseURL: "http://x"},
				Vault: Vault{UserID: "u"},
			},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "missing sync url",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "/v.db"}},
				Vault:   Vault{UserID: "u"},
			},
			want: ErrInvalidSyncConfigs,
		},
		{
			name: "missing user",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "/v.db"}},
				Sync:    Sync{BaseURL: "http://x"},
			},
			want: ErrInvalidVaultConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.validate(), tt.want)
		})
	}
}
