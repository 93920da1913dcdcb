package patient

import (
	"context"
	"fmt"
)

// Service validates patient input before it reaches the repository.
type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) validate(p Patient) error {
	if p.FirstName == "" {
		return fmt.Errorf("firstName is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("lastName is required")
	}
	if p.DateOfBirth == "" {
		return fmt.Errorf("dateOfBirth is required")
	}
	if p.Gender == "" {
		return fmt.Errorf("gender is required")
	}
	if p.CurrentStatus != "" && ParseStatus(p.CurrentStatus) == StatusUnknown {
		return fmt.Errorf("invalid patient status: %s", p.CurrentStatus)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p Patient) (Patient, error) {
	if p.CurrentStatus == "" {
		p.CurrentStatus = string(StatusStable)
	}
	if err := s.validate(p); err != nil {
		return Patient{}, err
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int) (Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.patients.GetAll(ctx)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]Patient, error) {
	parsed := ParseStatus(status)
	if parsed == StatusUnknown {
		return nil, fmt.Errorf("invalid patient status: %s", status)
	}
	return s.patients.ListByStatus(ctx, parsed)
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (Patient, error) {
	if patch.CurrentStatus != nil && ParseStatus(*patch.CurrentStatus) == StatusUnknown {
		return Patient{}, fmt.Errorf("invalid patient status: %s", *patch.CurrentStatus)
	}
	return s.patients.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) (Patient, error) {
	return s.patients.Delete(ctx, id)
}
