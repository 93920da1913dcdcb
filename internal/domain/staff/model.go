package staff

import (
	"fmt"
	"strings"
)

// Role is a staff member's job category.
type Role string

const (
	RoleDoctor        Role = "doctor"
	RoleNurse         Role = "nurse"
	RoleTechnician    Role = "technician"
	RoleAdministrator Role = "administrator"
	RoleUnknown       Role = "unknown"
)

// ParseRole folds case and returns RoleUnknown for anything outside the set.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleDoctor:
		return RoleDoctor
	case RoleNurse:
		return RoleNurse
	case RoleTechnician:
		return RoleTechnician
	case RoleAdministrator:
		return RoleAdministrator
	}
	return RoleUnknown
}

// DutyStatus is a staff member's status for a given day. The fixture data
// writes these with spaces ("on duty"); parsing strips them so "onduty" and
// "on duty" compare equal.
type DutyStatus string

const (
	DutyOn        DutyStatus = "on duty"
	DutyOff       DutyStatus = "off duty"
	DutyBreak     DutyStatus = "break"
	DutyEmergency DutyStatus = "emergency"
	DutyUnknown   DutyStatus = "unknown"
)

// ParseDutyStatus normalizes case and internal spaces.
func ParseDutyStatus(s string) DutyStatus {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "") {
	case "onduty":
		return DutyOn
	case "offduty":
		return DutyOff
	case "break":
		return DutyBreak
	case "emergency":
		return DutyEmergency
	}
	return DutyUnknown
}

// ContactInfo holds a staff member's contact details.
type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ScheduleEntry records the duty status for one date ("2006-01-02" form).
type ScheduleEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Member maps to the staff fixture/table. AssignedPatients holds patient ids;
// the references are advisory and never validated against the patient store.
type Member struct {
	ID               int             `json:"Id" db:"id"`
	Name             string          `json:"name" db:"name"`
	Role             string          `json:"role" db:"role"`
	Department       string          `json:"department" db:"department"`
	Shift            string          `json:"shift" db:"shift"`
	ContactInfo      ContactInfo     `json:"contactInfo" db:"contact_info"`
	AssignedPatients []int           `json:"assignedPatients" db:"assigned_patients"`
	Schedule         []ScheduleEntry `json:"schedule" db:"schedule"`
}

// RecordID implements store.Record.
func (m Member) RecordID() int { return m.ID }

// WithRecordID implements store.Record.
func (m Member) WithRecordID(id int) Member {
	m.ID = id
	return m
}

// Clone implements store.Record with a deep copy.
func (m Member) Clone() Member {
	out := m
	if m.AssignedPatients != nil {
		out.AssignedPatients = append([]int(nil), m.AssignedPatients...)
	}
	if m.Schedule != nil {
		out.Schedule = append([]ScheduleEntry(nil), m.Schedule...)
	}
	return out
}

// ValidateSchedule rejects schedules carrying more than one entry per date.
func ValidateSchedule(entries []ScheduleEntry) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Date] {
			return fmt.Errorf("duplicate schedule entry for date %s", e.Date)
		}
		seen[e.Date] = true
	}
	return nil
}

// StatusOn returns the duty status recorded for the given date, or DutyOff
// when the schedule has no entry for it.
func (m Member) StatusOn(date string) DutyStatus {
	for _, e := range m.Schedule {
		if e.Date == date {
			if st := ParseDutyStatus(e.Status); st != DutyUnknown {
				return st
			}
			return DutyOff
		}
	}
	return DutyOff
}

// Patch carries the fields of a partial update.
type Patch struct {
	Name             *string          `json:"name"`
	Role             *string          `json:"role"`
	Department       *string          `json:"department"`
	Shift            *string          `json:"shift"`
	ContactInfo      *ContactInfo     `json:"contactInfo"`
	AssignedPatients *[]int           `json:"assignedPatients"`
	Schedule         *[]ScheduleEntry `json:"schedule"`
}

// Apply merges the patch onto m and returns the result.
func (patch Patch) Apply(m Member) Member {
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Role != nil {
		m.Role = *patch.Role
	}
	if patch.Department != nil {
		m.Department = *patch.Department
	}
	if patch.Shift != nil {
		m.Shift = *patch.Shift
	}
	if patch.ContactInfo != nil {
		m.ContactInfo = *patch.ContactInfo
	}
	if patch.AssignedPatients != nil {
		m.AssignedPatients = append([]int(nil), *patch.AssignedPatients...)
	}
	if patch.Schedule != nil {
		m.Schedule = append([]ScheduleEntry(nil), *patch.Schedule...)
	}
	return m
}
