package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
	"github.com/sirupsen/logrus"
)

type importService struct {
	dm  contract.DataManager
	log logrus.FieldLogger
}

func newImporter(dm contract.DataManager, log logrus.FieldLogger) *importService {
	return &importService{
		dm:  dm,
		log: log,
	}
}

// Replace swaps the stored table snapshot for rows, all or nothing. It
// returns the number of rows stored.
func (s *importService) Replace(ctx context.Context, rows [][]string) (int, error) {
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.RosterRow().DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear roster rows: %w", err)
		}

		for i, row := range rows {
			if err := tx.RosterRow().Insert(ctx, i, row); err != nil {
				return fmt.Errorf("failed to store row %d: %w", i+1, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.WithField("rows", len(rows)).Info("Roster snapshot replaced")
	return len(rows), nil
}
