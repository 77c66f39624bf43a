package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
)

type rosterRowRepo struct {
	db dbConn
}

func newRosterRowRepo(db dbConn) contract.RosterRowRepo {
	return &rosterRowRepo{db: db}
}

func (r *rosterRowRepo) Insert(ctx context.Context, position int, cells []string) error {
	query := `
		INSERT INTO roster_rows (position, cells, imported_at)
		VALUES (?, ?, ?)
	`

	// Cells are stored as a JSON array to keep empty and trailing cells
	cellsJSON, err := json.Marshal(cells)
	if err != nil {
		return fmt.Errorf("failed to marshal cells: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, position, string(cellsJSON), time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert roster row %d: %w", position, err)
	}

	return nil
}

func (r *rosterRowRepo) List(ctx context.Context) ([][]string, error) {
	query := `
		SELECT cells
		FROM roster_rows
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster rows: %w", err)
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		var cellsJSON string
		if err := rows.Scan(&cellsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}

		var cells []string
		if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cells: %w", err)
		}
		result = append(result, cells)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster rows: %w", err)
	}

	return result, nil
}

func (r *rosterRowRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roster_rows`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count roster rows: %w", err)
	}
	return count, nil
}

func (r *rosterRowRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM roster_rows`)
	if err != nil {
		return fmt.Errorf("failed to delete roster rows: %w", err)
	}
	return nil
}
