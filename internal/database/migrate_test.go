package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublearn/sublearn/internal/config"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the schema and is idempotent", func(t *testing.T) {
		db, err := Open(config.DatabaseConfig{
			Driver: "sqlite3",
			Path:   filepath.Join(t.TempDir(), "sublearn.db"),
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		require.NoError(t, Migrate(ctx, db, "sqlite3"))
		require.NoError(t, Migrate(ctx, db, "sqlite3"))

		var tables []string
		require.NoError(t, db.Select(&tables,
			"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name"))
		assert.Subset(t, tables, []string{
			"users", "user_preferences", "user_vocabulary", "vocabulary_reviews",
		})
	})

	t.Run("unknown driver has no migrations", func(t *testing.T) {
		db, err := Open(config.DatabaseConfig{
			Driver: "sqlite3",
			Path:   filepath.Join(t.TempDir(), "sublearn.db"),
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		assert.ErrorContains(t, Migrate(ctx, db, "postgres"), "no migrations for driver")
	})
}
