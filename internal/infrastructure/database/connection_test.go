package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestdash/internal/shared/config"
)

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "forest.db?_foreign_keys=on", withForeignKeys("forest.db"))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", withForeignKeys("file::memory:?cache=shared"))
	assert.Equal(t, "forest.db?_fk=1", withForeignKeys("forest.db?_fk=1"))
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "postgres"})
	assert.Error(t, err)

	_, err = Open(&config.DatabaseConfig{Driver: config.DriverMemory})
	assert.Error(t, err)
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	gdb, err := Open(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)

	var enabled int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}
