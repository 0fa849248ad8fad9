package class

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c FitnessClass) (*FitnessClass, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]FitnessClass, error)
	GetByID(ctx context.Context, id int) (*FitnessClass, error)
	GetByIDs(ctx context.Context, ids []int) (map[int]FitnessClass, error)
	CountAll(ctx context.Context) (int, error)
}
