package store

import (
	"database/sql"

	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/migrations"
)

// DB wraps the shared connection pool used by every repository.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	if db == nil || db.DB == nil {
		return errNilDB
	}
	return migrations.Migrate(db.DB)
}
