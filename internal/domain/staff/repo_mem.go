package staff

import (
	"context"
	"strings"
	"time"

	"github.com/medboard/medboard/internal/platform/store"
)

type memRepo struct {
	store *store.Store[Member]
}

// NewMemRepo builds an in-memory repository seeded with the given members.
func NewMemRepo(seed []Member, latency time.Duration) Repository {
	return &memRepo{store: store.New(seed, latency)}
}

func (r *memRepo) GetAll(ctx context.Context) ([]Member, error) {
	return r.store.GetAll(ctx)
}

func (r *memRepo) GetByID(ctx context.Context, id int) (Member, error) {
	return r.store.GetByID(ctx, id)
}

func (r *memRepo) Create(ctx context.Context, m Member) (Member, error) {
	return r.store.Create(ctx, m)
}

func (r *memRepo) Update(ctx context.Context, id int, patch Patch) (Member, error) {
	return r.store.Update(ctx, id, patch.Apply)
}

func (r *memRepo) Delete(ctx context.Context, id int) (Member, error) {
	return r.store.Delete(ctx, id)
}

func (r *memRepo) ListByRole(ctx context.Context, role Role) ([]Member, error) {
	return r.store.Find(ctx, func(m Member) bool {
		return ParseRole(m.Role) == role
	})
}

func (r *memRepo) ListByDepartment(ctx context.Context, department string) ([]Member, error) {
	dept := strings.ToLower(department)
	return r.store.Find(ctx, func(m Member) bool {
		return strings.Contains(strings.ToLower(m.Department), dept)
	})
}

func (r *memRepo) ListOnDuty(ctx context.Context, date string) ([]Member, error) {
	return r.store.Find(ctx, func(m Member) bool {
		return m.StatusOn(date) == DutyOn
	})
}
