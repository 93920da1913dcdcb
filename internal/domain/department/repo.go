package department

import "context"

// Repository is the department record store contract.
type Repository interface {
	GetAll(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id int) (Department, error)
	Create(ctx context.Context, d Department) (Department, error)
	Update(ctx context.Context, id int, patch Patch) (Department, error)
	Delete(ctx context.Context, id int) (Department, error)
	ListByOccupancyThreshold(ctx context.Context, threshold float64) ([]Department, error)
}
