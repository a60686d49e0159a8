// Package storetest opens a migrated throwaway SQLite database for tests.
package storetest

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"videogame-catalog/config"
	"videogame-catalog/database"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()
	cfg := config.Database{Driver: "sqlite", URL: filepath.Join(t.TempDir(), "catalog.db")}
	db, err := database.Open(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))
	return db
}

// Count returns the number of rows of model matching the optional condition.
func Count(t testing.TB, db *gorm.DB, model any, conds ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
