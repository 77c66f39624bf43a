package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	RosterRow() RosterRowRepo
}

// RosterRowRepo stores the imported snapshot of the duty table, one raw row
// per record in table order.
type RosterRowRepo interface {
	Insert(ctx context.Context, position int, cells []string) error
	List(ctx context.Context) ([][]string, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
