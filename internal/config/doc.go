// Package config loads the vaultsync client configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources with mergo and validating the result before startup.
package config
