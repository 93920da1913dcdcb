package staff

import (
	"context"
	"fmt"
	"time"
)

// Service validates staff input and implements patient assignment.
type Service struct {
	staff Repository
}

func NewService(staff Repository) *Service {
	return &Service{staff: staff}
}

func (s *Service) validate(m Member) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if ParseRole(m.Role) == RoleUnknown {
		return fmt.Errorf("invalid staff role: %s", m.Role)
	}
	return ValidateSchedule(m.Schedule)
}

func (s *Service) Create(ctx context.Context, m Member) (Member, error) {
	if err := s.validate(m); err != nil {
		return Member{}, err
	}
	return s.staff.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id int) (Member, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.staff.GetAll(ctx)
}

func (s *Service) ListByRole(ctx context.Context, role string) ([]Member, error) {
	parsed := ParseRole(role)
	if parsed == RoleUnknown {
		return nil, fmt.Errorf("invalid staff role: %s", role)
	}
	return s.staff.ListByRole(ctx, parsed)
}

func (s *Service) ListByDepartment(ctx context.Context, department string) ([]Member, error) {
	return s.staff.ListByDepartment(ctx, department)
}

// ListOnDuty defaults to today's local date when date is empty.
func (s *Service) ListOnDuty(ctx context.Context, date string) ([]Member, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected yyyy-MM-dd", date)
	}
	return s.staff.ListOnDuty(ctx, date)
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (Member, error) {
	if patch.Role != nil && ParseRole(*patch.Role) == RoleUnknown {
		return Member{}, fmt.Errorf("invalid staff role: %s", *patch.Role)
	}
	if patch.Schedule != nil {
		if err := ValidateSchedule(*patch.Schedule); err != nil {
			return Member{}, err
		}
	}
	return s.staff.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) (Member, error) {
	return s.staff.Delete(ctx, id)
}

// AssignPatient adds a patient id to a member's assignment list. Adding an
// already-assigned id is a no-op, matching the list's set semantics.
func (s *Service) AssignPatient(ctx context.Context, staffID, patientID int) (Member, error) {
	m, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		return Member{}, err
	}
	for _, id := range m.AssignedPatients {
		if id == patientID {
			return m, nil
		}
	}
	assigned := append(append([]int(nil), m.AssignedPatients...), patientID)
	return s.staff.Update(ctx, staffID, Patch{AssignedPatients: &assigned})
}

// UnassignPatient removes a patient id from a member's assignment list.
func (s *Service) UnassignPatient(ctx context.Context, staffID, patientID int) (Member, error) {
	m, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		return Member{}, err
	}
	assigned := make([]int, 0, len(m.AssignedPatients))
	for _, id := range m.AssignedPatients {
		if id != patientID {
			assigned = append(assigned, id)
		}
	}
	return s.staff.Update(ctx, staffID, Patch{AssignedPatients: &assigned})
}
