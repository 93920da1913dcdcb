package appointment

import (
	"context"
	"time"

	"github.com/medboard/medboard/internal/platform/store"
)

type memRepo struct {
	store *store.Store[Appointment]
}

// NewMemRepo builds an in-memory repository seeded with the given
// appointments.
func NewMemRepo(seed []Appointment, latency time.Duration) Repository {
	return &memRepo{store: store.New(seed, latency)}
}

func (r *memRepo) GetAll(ctx context.Context) ([]Appointment, error) {
	return r.store.GetAll(ctx)
}

func (r *memRepo) GetByID(ctx context.Context, id int) (Appointment, error) {
	return r.store.GetByID(ctx, id)
}

func (r *memRepo) Create(ctx context.Context, a Appointment) (Appointment, error) {
	return r.store.Create(ctx, a)
}

func (r *memRepo) Update(ctx context.Context, id int, patch Patch) (Appointment, error) {
	return r.store.Update(ctx, id, patch.Apply)
}

func (r *memRepo) Delete(ctx context.Context, id int) (Appointment, error) {
	return r.store.Delete(ctx, id)
}

func (r *memRepo) ListByPatient(ctx context.Context, patientID int) ([]Appointment, error) {
	return r.store.Find(ctx, func(a Appointment) bool {
		return a.PatientIDInt() == patientID
	})
}

func (r *memRepo) ListByStaff(ctx context.Context, staffID int) ([]Appointment, error) {
	return r.store.Find(ctx, func(a Appointment) bool {
		return a.StaffIDInt() == staffID
	})
}

func (r *memRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	return r.store.Find(ctx, func(a Appointment) bool {
		return !a.DateTime.Before(from) && !a.DateTime.After(to)
	})
}

func (r *memRepo) ListByStatus(ctx context.Context, status Status) ([]Appointment, error) {
	return r.store.Find(ctx, func(a Appointment) bool {
		return ParseStatus(a.Status) == status
	})
}
