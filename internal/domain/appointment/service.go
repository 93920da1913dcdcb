package appointment

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Service validates appointment input before it reaches the repository.
type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

func (s *Service) validate(a Appointment) error {
	if _, err := strconv.Atoi(a.PatientID); err != nil {
		return fmt.Errorf("patientId must be numeric, got %q", a.PatientID)
	}
	if _, err := strconv.Atoi(a.StaffID); err != nil {
		return fmt.Errorf("staffId must be numeric, got %q", a.StaffID)
	}
	if a.DateTime.IsZero() {
		return fmt.Errorf("dateTime is required")
	}
	if a.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if ParseStatus(a.Status) == StatusUnknown {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, a Appointment) (Appointment, error) {
	if a.Status == "" {
		a.Status = string(StatusPending)
	}
	if err := s.validate(a); err != nil {
		return Appointment{}, err
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id int) (Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.appointments.GetAll(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int) ([]Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

func (s *Service) ListByStaff(ctx context.Context, staffID int) ([]Appointment, error) {
	return s.appointments.ListByStaff(ctx, staffID)
}

func (s *Service) ListByDateRange(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("date range end precedes start")
	}
	return s.appointments.ListByDateRange(ctx, from, to)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]Appointment, error) {
	parsed := ParseStatus(status)
	if parsed == StatusUnknown {
		return nil, fmt.Errorf("invalid appointment status: %s", status)
	}
	return s.appointments.ListByStatus(ctx, parsed)
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (Appointment, error) {
	if patch.Status != nil && ParseStatus(*patch.Status) == StatusUnknown {
		return Appointment{}, fmt.Errorf("invalid appointment status: %s", *patch.Status)
	}
	if patch.PatientID != nil {
		if _, err := strconv.Atoi(*patch.PatientID); err != nil {
			return Appointment{}, fmt.Errorf("patientId must be numeric, got %q", *patch.PatientID)
		}
	}
	if patch.StaffID != nil {
		if _, err := strconv.Atoi(*patch.StaffID); err != nil {
			return Appointment{}, fmt.Errorf("staffId must be numeric, got %q", *patch.StaffID)
		}
	}
	return s.appointments.Update(ctx, id, patch)
}

// UpdateStatus is the one-field update the admin views use when confirming,
// cancelling or completing an appointment.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (Appointment, error) {
	return s.Update(ctx, id, Patch{Status: &status})
}

func (s *Service) Delete(ctx context.Context, id int) (Appointment, error) {
	return s.appointments.Delete(ctx, id)
}
