package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/medboard/medboard/internal/platform/store"
)

func testService(seed ...Member) *Service {
	return NewService(NewMemRepo(seed, 0))
}

func TestCreateValidation(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, Member{Role: "doctor"}); err == nil {
		t.Error("missing name accepted")
	}
	if _, err := svc.Create(ctx, Member{Name: "Dr. Chen", Role: "janitor"}); err == nil {
		t.Error("unknown role accepted")
	}
	if _, err := svc.Create(ctx, Member{Name: "Dr. Chen", Role: "doctor", Schedule: []ScheduleEntry{
		{Date: "2025-08-29", Status: "on duty"},
		{Date: "2025-08-29", Status: "break"},
	}}); err == nil {
		t.Error("duplicate schedule dates accepted")
	}

	created, err := svc.Create(ctx, Member{Name: "Dr. Chen", Role: "doctor"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}
}

func TestListByRole(t *testing.T) {
	svc := testService(
		Member{ID: 1, Name: "A", Role: "doctor"},
		Member{ID: 2, Name: "B", Role: "nurse"},
		Member{ID: 3, Name: "C", Role: "Doctor"},
	)
	got, err := svc.ListByRole(context.Background(), "doctor")
	if err != nil {
		t.Fatalf("ListByRole: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(got))
	}

	if _, err := svc.ListByRole(context.Background(), "janitor"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestListOnDuty(t *testing.T) {
	svc := testService(
		Member{ID: 1, Name: "A", Role: "doctor", Schedule: []ScheduleEntry{
			{Date: "2025-08-29", Status: "on duty"},
		}},
		Member{ID: 2, Name: "B", Role: "nurse", Schedule: []ScheduleEntry{
			{Date: "2025-08-29", Status: "off duty"},
		}},
		Member{ID: 3, Name: "C", Role: "nurse"},
	)
	got, err := svc.ListOnDuty(context.Background(), "2025-08-29")
	if err != nil {
		t.Fatalf("ListOnDuty: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected only member 1 on duty, got %+v", got)
	}

	if _, err := svc.ListOnDuty(context.Background(), "29/08/2025"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestAssignPatient(t *testing.T) {
	svc := testService(Member{ID: 1, Name: "A", Role: "doctor", AssignedPatients: []int{4}})
	ctx := context.Background()

	m, err := svc.AssignPatient(ctx, 1, 7)
	if err != nil {
		t.Fatalf("AssignPatient: %v", err)
	}
	if len(m.AssignedPatients) != 2 || m.AssignedPatients[1] != 7 {
		t.Errorf("patient not appended: %v", m.AssignedPatients)
	}

	// Assigning the same patient again is a no-op.
	m, err = svc.AssignPatient(ctx, 1, 7)
	if err != nil {
		t.Fatalf("AssignPatient repeat: %v", err)
	}
	if len(m.AssignedPatients) != 2 {
		t.Errorf("duplicate assignment added: %v", m.AssignedPatients)
	}

	if _, err := svc.AssignPatient(ctx, 99, 7); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing member, got %v", err)
	}
}

func TestUnassignPatient(t *testing.T) {
	svc := testService(Member{ID: 1, Name: "A", Role: "doctor", AssignedPatients: []int{4, 7}})
	m, err := svc.UnassignPatient(context.Background(), 1, 4)
	if err != nil {
		t.Fatalf("UnassignPatient: %v", err)
	}
	if len(m.AssignedPatients) != 1 || m.AssignedPatients[0] != 7 {
		t.Errorf("expected [7], got %v", m.AssignedPatients)
	}

	// Removing an id that is not assigned leaves the list as is.
	m, err = svc.UnassignPatient(context.Background(), 1, 42)
	if err != nil {
		t.Fatalf("UnassignPatient absent: %v", err)
	}
	if len(m.AssignedPatients) != 1 {
		t.Errorf("expected [7], got %v", m.AssignedPatients)
	}
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	svc := testService(Member{ID: 1, Name: "A", Role: "doctor"})
	ctx := context.Background()

	badRole := "janitor"
	if _, err := svc.Update(ctx, 1, Patch{Role: &badRole}); err == nil {
		t.Error("unknown role accepted in patch")
	}

	badSchedule := []ScheduleEntry{
		{Date: "2025-08-29", Status: "on duty"},
		{Date: "2025-08-29", Status: "break"},
	}
	if _, err := svc.Update(ctx, 1, Patch{Schedule: &badSchedule}); err == nil {
		t.Error("duplicate schedule accepted in patch")
	}
}
