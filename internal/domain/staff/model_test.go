package staff

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"doctor", RoleDoctor},
		{"Doctor", RoleDoctor},
		{"NURSE", RoleNurse},
		{"technician", RoleTechnician},
		{"administrator", RoleAdministrator},
		{"", RoleUnknown},
		{"janitor", RoleUnknown},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDutyStatusFoldsSpaces(t *testing.T) {
	tests := []struct {
		in   string
		want DutyStatus
	}{
		{"on duty", DutyOn},
		{"onduty", DutyOn},
		{"On Duty", DutyOn},
		{"OFF DUTY", DutyOff},
		{"offduty", DutyOff},
		{"break", DutyBreak},
		{"emergency", DutyEmergency},
		{"vacation", DutyUnknown},
	}
	for _, tt := range tests {
		if got := ParseDutyStatus(tt.in); got != tt.want {
			t.Errorf("ParseDutyStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateSchedule(t *testing.T) {
	ok := []ScheduleEntry{
		{Date: "2025-08-29", Status: "on duty"},
		{Date: "2025-08-30", Status: "off duty"},
	}
	if err := ValidateSchedule(ok); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}

	dup := []ScheduleEntry{
		{Date: "2025-08-29", Status: "on duty"},
		{Date: "2025-08-29", Status: "break"},
	}
	if err := ValidateSchedule(dup); err == nil {
		t.Error("duplicate date accepted")
	}
}

func TestStatusOn(t *testing.T) {
	m := Member{Schedule: []ScheduleEntry{
		{Date: "2025-08-29", Status: "on duty"},
		{Date: "2025-08-30", Status: "break"},
		{Date: "2025-08-31", Status: "gibberish"},
	}}

	if got := m.StatusOn("2025-08-29"); got != DutyOn {
		t.Errorf("scheduled day: got %q", got)
	}
	if got := m.StatusOn("2025-08-30"); got != DutyBreak {
		t.Errorf("break day: got %q", got)
	}
	// Unparseable entries and absent dates both fall back to off duty.
	if got := m.StatusOn("2025-08-31"); got != DutyOff {
		t.Errorf("unparseable entry: got %q", got)
	}
	if got := m.StatusOn("2025-09-15"); got != DutyOff {
		t.Errorf("absent date: got %q", got)
	}
}

func TestCloneDeepCopies(t *testing.T) {
	m := Member{
		ID:               1,
		AssignedPatients: []int{1, 2},
		Schedule:         []ScheduleEntry{{Date: "2025-08-29", Status: "on duty"}},
	}
	c := m.Clone()
	c.AssignedPatients[0] = 99
	c.Schedule[0].Status = "break"

	if m.AssignedPatients[0] != 1 || m.Schedule[0].Status != "on duty" {
		t.Error("Clone shares backing slices")
	}
}
