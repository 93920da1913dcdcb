package staff

import "context"

// Repository is the staff record store contract.
type Repository interface {
	GetAll(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id int) (Member, error)
	Create(ctx context.Context, m Member) (Member, error)
	Update(ctx context.Context, id int, patch Patch) (Member, error)
	Delete(ctx context.Context, id int) (Member, error)
	ListByRole(ctx context.Context, role Role) ([]Member, error)
	ListByDepartment(ctx context.Context, department string) ([]Member, error)
	// ListOnDuty returns members whose schedule marks them on duty for the
	// given "2006-01-02" date.
	ListOnDuty(ctx context.Context, date string) ([]Member, error)
}
