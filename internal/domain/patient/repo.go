package patient

import "context"

// Repository is the patient record store contract. The in-memory and
// Postgres implementations are interchangeable behind it.
type Repository interface {
	GetAll(ctx context.Context) ([]Patient, error)
	GetByID(ctx context.Context, id int) (Patient, error)
	Create(ctx context.Context, p Patient) (Patient, error)
	Update(ctx context.Context, id int, patch Patch) (Patient, error)
	Delete(ctx context.Context, id int) (Patient, error)
	ListByStatus(ctx context.Context, status Status) ([]Patient, error)
}
