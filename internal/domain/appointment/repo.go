package appointment

import (
	"context"
	"time"
)

// Repository is the appointment record store contract.
type Repository interface {
	GetAll(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id int) (Appointment, error)
	Create(ctx context.Context, a Appointment) (Appointment, error)
	Update(ctx context.Context, id int, patch Patch) (Appointment, error)
	Delete(ctx context.Context, id int) (Appointment, error)
	ListByPatient(ctx context.Context, patientID int) ([]Appointment, error)
	ListByStaff(ctx context.Context, staffID int) ([]Appointment, error)
	// ListByDateRange returns appointments whose instant falls within
	// [from, to] inclusive.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Appointment, error)
	ListByStatus(ctx context.Context, status Status) ([]Appointment, error)
}
