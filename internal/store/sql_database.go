package store

import (
	"database/sql"

	"github.com/gophervault/vaultsync/internal/logger"
	"github.com/gophervault/vaultsync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
