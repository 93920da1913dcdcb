package patient

import (
	"context"
	"time"

	"github.com/medboard/medboard/internal/platform/store"
)

type memRepo struct {
	store *store.Store[Patient]
}

// NewMemRepo builds an in-memory repository seeded with the given patients.
func NewMemRepo(seed []Patient, latency time.Duration) Repository {
	return &memRepo{store: store.New(seed, latency)}
}

func (r *memRepo) GetAll(ctx context.Context) ([]Patient, error) {
	return r.store.GetAll(ctx)
}

func (r *memRepo) GetByID(ctx context.Context, id int) (Patient, error) {
	return r.store.GetByID(ctx, id)
}

func (r *memRepo) Create(ctx context.Context, p Patient) (Patient, error) {
	return r.store.Create(ctx, p)
}

func (r *memRepo) Update(ctx context.Context, id int, patch Patch) (Patient, error) {
	return r.store.Update(ctx, id, patch.Apply)
}

func (r *memRepo) Delete(ctx context.Context, id int) (Patient, error) {
	return r.store.Delete(ctx, id)
}

func (r *memRepo) ListByStatus(ctx context.Context, status Status) ([]Patient, error) {
	return r.store.Find(ctx, func(p Patient) bool {
		return ParseStatus(p.CurrentStatus) == status
	})
}
