package department

import (
	"context"
	"time"

	"github.com/medboard/medboard/internal/platform/store"
)

type memRepo struct {
	store *store.Store[Department]
}

// NewMemRepo builds an in-memory repository seeded with the given
// departments.
func NewMemRepo(seed []Department, latency time.Duration) Repository {
	return &memRepo{store: store.New(seed, latency)}
}

func (r *memRepo) GetAll(ctx context.Context) ([]Department, error) {
	return r.store.GetAll(ctx)
}

func (r *memRepo) GetByID(ctx context.Context, id int) (Department, error) {
	return r.store.GetByID(ctx, id)
}

func (r *memRepo) Create(ctx context.Context, d Department) (Department, error) {
	return r.store.Create(ctx, d)
}

func (r *memRepo) Update(ctx context.Context, id int, patch Patch) (Department, error) {
	return r.store.Update(ctx, id, patch.Apply)
}

func (r *memRepo) Delete(ctx context.Context, id int) (Department, error) {
	return r.store.Delete(ctx, id)
}

func (r *memRepo) ListByOccupancyThreshold(ctx context.Context, threshold float64) ([]Department, error) {
	return r.store.Find(ctx, func(d Department) bool {
		rate := 0.0
		if d.TotalBeds > 0 {
			rate = float64(d.OccupiedBeds) / float64(d.TotalBeds) * 100
		}
		return rate >= threshold
	})
}
