package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublearn/sublearn/internal/config"
)

func TestOpen(t *testing.T) {
	t.Run("creates mysql connection with valid config", func(t *testing.T) {
		got, err := Open(config.DatabaseConfig{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     3306,
			Name:     "testdb",
			User:     "testuser",
			Password: "testpass",
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		defer got.Close()

		assert.Equal(t, "mysql", got.DriverName())
	})

	t.Run("creates sqlite connection and parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "sublearn.db")
		got, err := Open(config.DatabaseConfig{
			Driver: "sqlite3",
			Path:   path,
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		defer got.Close()

		assert.Equal(t, "sqlite3", got.DriverName())
	})

	t.Run("rejects sqlite config without path", func(t *testing.T) {
		_, err := Open(config.DatabaseConfig{Driver: "sqlite3"})
		assert.Error(t, err)
	})

	t.Run("rejects unsupported driver", func(t *testing.T) {
		_, err := Open(config.DatabaseConfig{Driver: "postgres"})
		assert.Error(t, err)
	})
}
