package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_WiresRepositories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	s := newStorages(&DB{DB: db}, logger.Nop())

	assert.NotNil(t, s.UserRepository)
	assert.NotNil(t, s.MediaRepository)
	assert.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

func TestDB_MigrateNil(t *testing.T) {
	var db *DB
	assert.ErrorIs(t, db.Migrate(), errNilDB)
}
