package store

import (
	"context"
	"fmt"

	"github.com/gophervault/vaultsync/internal/config"
	"github.com/gophervault/vaultsync/internal/logger"
)

// VaultStorages groups all local storage repositories into a single value
// that can be passed around the service layer, together with the change feed
// that reactive consumers subscribe to.
type VaultStorages struct {
	Items         ItemStore
	Folders       FolderStore
	Collections   CollectionStore
	Organizations OrganizationStore
	Policies      PolicyStore
	Domains       DomainStore

	// Changes delivers per-user change signals for every mutation made
	// through any of the repositories above.
	Changes ChangeFeed
}

// NewVaultStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [VaultStorages] value with every repository
//     wired to a shared change notifier.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewVaultStorages(cfg config.Storage, logger *logger.Logger) (*VaultStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	notifier := NewNotifier()

	return &VaultStorages{
		Items:         NewItemStore(db, notifier, logger),
		Folders:       NewFolderStore(db, notifier, logger),
		Collections:   NewCollectionStore(db, notifier, logger),
		Organizations: NewOrganizationStore(db, notifier, logger),
		Policies:      NewPolicyStore(db, notifier, logger),
		Domains:       NewDomainStore(db, notifier, logger),
		Changes:       notifier,
	}, nil
}
