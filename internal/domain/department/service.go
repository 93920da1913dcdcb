package department

import (
	"context"
	"fmt"
)

// Service validates department input. Bed counts are advisory: the fixture
// data is trusted, so occupied > total is tolerated, only negatives are
// rejected.
type Service struct {
	departments Repository
}

func NewService(departments Repository) *Service {
	return &Service{departments: departments}
}

func (s *Service) validate(d Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.TotalBeds < 0 {
		return fmt.Errorf("totalBeds must be non-negative")
	}
	if d.OccupiedBeds < 0 {
		return fmt.Errorf("occupiedBeds must be non-negative")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, d Department) (Department, error) {
	if err := s.validate(d); err != nil {
		return Department{}, err
	}
	return s.departments.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id int) (Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Department, error) {
	return s.departments.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (Department, error) {
	if patch.Name != nil && *patch.Name == "" {
		return Department{}, fmt.Errorf("name is required")
	}
	if patch.TotalBeds != nil && *patch.TotalBeds < 0 {
		return Department{}, fmt.Errorf("totalBeds must be non-negative")
	}
	if patch.OccupiedBeds != nil && *patch.OccupiedBeds < 0 {
		return Department{}, fmt.Errorf("occupiedBeds must be non-negative")
	}
	return s.departments.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int) (Department, error) {
	return s.departments.Delete(ctx, id)
}

// ListByOccupancyThreshold returns departments whose occupancy rate is at or
// above threshold percent. A department with no beds counts as 0% occupied.
func (s *Service) ListByOccupancyThreshold(ctx context.Context, threshold float64) ([]Department, error) {
	return s.departments.ListByOccupancyThreshold(ctx, threshold)
}

// AddEquipment appends an item to a department's equipment list. Adding an
// item that is already present is a no-op, matching the list's set semantics.
func (s *Service) AddEquipment(ctx context.Context, id int, item string) (Department, error) {
	if item == "" {
		return Department{}, fmt.Errorf("equipment item is required")
	}
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return Department{}, err
	}
	for _, got := range d.Equipment {
		if got == item {
			return d, nil
		}
	}
	equipment := append(append([]string(nil), d.Equipment...), item)
	return s.departments.Update(ctx, id, Patch{Equipment: &equipment})
}
