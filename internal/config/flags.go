package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database file path
//	-s sync server base URL
//	-sync-interval background sync interval (e.g., "5m")
//	-request-timeout snapshot fetch timeout (e.g., "15s")
//	-u user (account) identifier
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var syncBaseURL string
	var syncInterval time.Duration
	var requestTimeout time.Duration
	var userID string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&syncBaseURL, "s", "", "Sync server base URL")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&userID, "u", "", "User identifier")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			BaseURL:        syncBaseURL,
			RequestTimeout: requestTimeout,
			Interval:       syncInterval,
		},
		Vault: Vault{
			UserID: userID,
		},
		JSONFilePath: jsonConfigPath,
	}
}
