package source

import (
	"context"

	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
)

// Database reads the snapshot imported into SQLite. The stored rows no longer
// carry the title row.
type Database struct {
	dm contract.DataManager
}

func NewDatabase(dm contract.DataManager) *Database {
	return &Database{dm: dm}
}

func (d *Database) Rows(ctx context.Context) ([][]string, error) {
	return d.dm.RosterRow().List(ctx)
}
