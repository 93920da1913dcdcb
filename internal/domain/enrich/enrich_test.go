package enrich

import (
	"reflect"
	"testing"
	"time"

	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/department"
	"github.com/medboard/medboard/internal/domain/patient"
	"github.com/medboard/medboard/internal/domain/staff"
)

var (
	testPatients = []patient.Patient{
		{ID: 1, FirstName: "John", LastName: "Smith", AssignedRoom: "CAR-101",
			ContactInfo: patient.ContactInfo{Phone: "555-0101"}},
		{ID: 2, FirstName: "Maria", LastName: "Garcia", AssignedRoom: "EME-001"},
	}
	testStaff = []staff.Member{
		{ID: 1, Name: "Dr. Chen", Role: "doctor", Department: "Cardiology",
			AssignedPatients: []int{1, 9999},
			Schedule: []staff.ScheduleEntry{
				{Date: "2025-08-29", Status: "on duty"},
			}},
		{ID: 2, Name: "Nurse Adams", Role: "nurse", Department: "Emergency"},
	}
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAppointmentsResolvesNames(t *testing.T) {
	appts := []appointment.Appointment{
		{ID: 1, PatientID: "1", StaffID: "1"},
	}
	out := Appointments(appts, testPatients, testStaff)
	if len(out) != 1 {
		t.Fatalf("expected 1 enriched appointment, got %d", len(out))
	}
	a := out[0]
	if a.PatientName != "John Smith" {
		t.Errorf("PatientName = %q", a.PatientName)
	}
	if a.PatientPhone != "555-0101" {
		t.Errorf("PatientPhone = %q", a.PatientPhone)
	}
	if a.StaffName != "Dr. Chen" || a.StaffRole != "doctor" {
		t.Errorf("staff fields = %q / %q", a.StaffName, a.StaffRole)
	}
}

func TestAppointmentsFallbackLabels(t *testing.T) {
	appts := []appointment.Appointment{
		{ID: 1, PatientID: "9999", StaffID: "8888"},
	}
	out := Appointments(appts, testPatients, testStaff)
	if out[0].PatientName != "Patient #9999" {
		t.Errorf("PatientName = %q", out[0].PatientName)
	}
	if out[0].StaffName != "Staff #8888" {
		t.Errorf("StaffName = %q", out[0].StaffName)
	}
	if out[0].PatientPhone != "" || out[0].StaffRole != "" {
		t.Errorf("unresolved refs should leave phone/role empty: %+v", out[0])
	}
}

func TestAppointmentsIdempotent(t *testing.T) {
	appts := []appointment.Appointment{{ID: 1, PatientID: "1", StaffID: "2"}}
	first := Appointments(appts, testPatients, testStaff)
	second := Appointments(appts, testPatients, testStaff)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated enrichment produced different output")
	}
}

func TestStaffEnrichment(t *testing.T) {
	out := Staff(testStaff, testPatients, day("2025-08-29"))
	if len(out) != 2 {
		t.Fatalf("expected 2 members, got %d", len(out))
	}

	chen := out[0]
	if !reflect.DeepEqual(chen.AssignedPatientNames, []string{"John Smith", "Patient #9999"}) {
		t.Errorf("AssignedPatientNames = %v", chen.AssignedPatientNames)
	}
	if chen.CurrentStatus != "on duty" {
		t.Errorf("CurrentStatus = %q", chen.CurrentStatus)
	}

	// No schedule entry for the date defaults to off duty.
	if out[1].CurrentStatus != string(staff.DutyOff) {
		t.Errorf("unscheduled member CurrentStatus = %q", out[1].CurrentStatus)
	}
}

func TestRoomPrefix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Cardiology", "CAR"},
		{"Emergency", "EME"},
		{"ICU", "ICU"},
		{"ER", "ER"},
		{"", ""},
		// Multi-byte names slice by rune, not byte.
		{"Ökologie", "ÖKO"},
		{"Émergences", "ÉME"},
	}
	for _, tt := range tests {
		if got := RoomPrefix(tt.in); got != tt.want {
			t.Errorf("RoomPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOccupancyRate(t *testing.T) {
	tests := []struct {
		occupied, total int
		want            string
	}{
		{14, 20, "70.0"},
		{13, 15, "86.7"},
		{0, 20, "0.0"},
		{5, 0, "0.0"},
		{10, 10, "100.0"},
	}
	for _, tt := range tests {
		if got := OccupancyRate(tt.occupied, tt.total); got != tt.want {
			t.Errorf("OccupancyRate(%d, %d) = %q, want %q", tt.occupied, tt.total, got, tt.want)
		}
	}
}

func TestDepartmentsEnrichment(t *testing.T) {
	depts := []department.Department{
		{ID: 1, Name: "Cardiology", TotalBeds: 20, OccupiedBeds: 14},
		{ID: 2, Name: "Emergency", TotalBeds: 15, OccupiedBeds: 13},
	}
	out := Departments(depts, testStaff, testPatients, day("2025-08-29"))

	car := out[0]
	if car.OccupancyRate != "70.0" {
		t.Errorf("OccupancyRate = %q", car.OccupancyRate)
	}
	if car.AvailableBeds != 6 {
		t.Errorf("AvailableBeds = %d", car.AvailableBeds)
	}
	if car.TotalStaff != 1 || car.StaffOnDuty != 1 {
		t.Errorf("staff counts = %d total / %d on duty", car.TotalStaff, car.StaffOnDuty)
	}
	if len(car.DepartmentPatients) != 1 || car.DepartmentPatients[0].ID != 1 {
		t.Errorf("room-prefix join failed: %+v", car.DepartmentPatients)
	}

	eme := out[1]
	if len(eme.DepartmentPatients) != 1 || eme.DepartmentPatients[0].ID != 2 {
		t.Errorf("EME prefix join failed: %+v", eme.DepartmentPatients)
	}
	if eme.StaffOnDuty != 0 {
		t.Errorf("Nurse Adams has no schedule, StaffOnDuty = %d", eme.StaffOnDuty)
	}
}

func TestDepartmentsDoNotMutateInput(t *testing.T) {
	depts := []department.Department{{ID: 1, Name: "Cardiology", TotalBeds: 20, OccupiedBeds: 14}}
	before := depts[0]
	Departments(depts, testStaff, testPatients, day("2025-08-29"))
	if !reflect.DeepEqual(before, depts[0]) {
		t.Error("enrichment mutated the input slice")
	}
}
