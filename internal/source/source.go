package source

import (
	"strings"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
)

// KindSQLite selects the imported SQLite snapshot as ROSTER_SOURCE.
const KindSQLite = "sqlite"

// New picks the source for location: an http(s) URL, "sqlite", or a file
// path. dm is only used for the SQLite source and may be nil otherwise.
func New(location string, timeout time.Duration, dm contract.DataManager) contract.RowSource {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTP(location, timeout)
	case location == KindSQLite:
		return NewDatabase(dm)
	default:
		return NewFile(location)
	}
}
