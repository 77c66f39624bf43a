package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/diegoclair/duty-roster-bot/migrator/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Should open a file database and store rows", func(t *testing.T) {
		db, err := New(filepath.Join(t.TempDir(), "roster.db"))
		require.NoError(t, err)
		defer db.Close()

		require.NoError(t, sqlite.Migrate(db.DB()))

		ctx := context.Background()
		repo := NewInstance(db).RosterRow()
		require.NoError(t, repo.Insert(ctx, 0, []string{"пн, 2 дек.", "7:30-14:30"}))

		rows, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"пн, 2 дек.", "7:30-14:30"}}, rows)
	})

	t.Run("Should fail when the directory does not exist", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing", "roster.db"))
		assert.Error(t, err)
	})
}
