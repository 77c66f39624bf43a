package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"

	"github.com/diegoclair/duty-roster-bot/internal/roster"
)

type DutyService interface {
	CurrentDuty(ctx context.Context) (roster.DutyResult, error)
	PersonSchedule(ctx context.Context, name string, days int) (roster.Schedule, error)
	SlackUserSchedule(ctx context.Context, slackUserID string, days int) (roster.Schedule, error)
	Persons() []roster.Person
	Vocabulary() roster.Vocabulary
}

// RowSource supplies the raw duty table. Column 0 holds day headers,
// column 1 interval times and the remaining columns one person each.
type RowSource interface {
	Rows(ctx context.Context) ([][]string, error)
}
