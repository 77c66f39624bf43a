// Package source supplies the raw duty table rows from a CSV file, a CSV
// served over HTTP or the imported SQLite snapshot.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// ReadCSV reads every record of r. Records may have any number of fields.
// The first record is the table title row and is skipped when skipHeader is
// set.
func ReadCSV(r io.Reader, skipHeader bool) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)
	}
	if skipHeader && len(records) > 0 {
		records = records[1:]
	}

	return records, nil
}
