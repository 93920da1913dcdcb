// Package enrich joins raw record snapshots across entities into the derived
// views the admin pages render. Every function is pure: given the same
// snapshots and the same "today", the output is identical, and inputs are
// never mutated. Unresolved cross-references degrade to placeholder labels
// instead of failing.
package enrich

import (
	"fmt"
	"strings"
	"time"

	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/department"
	"github.com/medboard/medboard/internal/domain/patient"
	"github.com/medboard/medboard/internal/domain/staff"
)

// DateLayout is the calendar-date form used by schedules and fixtures.
const DateLayout = "2006-01-02"

// Appointment is an appointment with patient and staff display fields
// attached.
type Appointment struct {
	appointment.Appointment
	PatientName  string `json:"patientName"`
	StaffName    string `json:"staffName"`
	PatientPhone string `json:"patientPhone"`
	StaffRole    string `json:"staffRole"`
}

// StaffMember is a staff record with assigned-patient names and the duty
// status for "today" attached.
type StaffMember struct {
	staff.Member
	AssignedPatientNames []string `json:"assignedPatientNames"`
	CurrentStatus        string   `json:"currentStatus"`
}

// Department is a department with occupancy metrics and its staff and
// patient subsets attached.
type Department struct {
	department.Department
	DepartmentStaff    []staff.Member    `json:"departmentStaff"`
	DepartmentPatients []patient.Patient `json:"departmentPatients"`
	OccupancyRate      string            `json:"occupancyRate"`
	AvailableBeds      int               `json:"availableBeds"`
	StaffOnDuty        int               `json:"staffOnDuty"`
	TotalStaff         int               `json:"totalStaff"`
}

func patientLabel(id int) string { return fmt.Sprintf("Patient #%d", id) }
func staffLabel(id int) string   { return fmt.Sprintf("Staff #%d", id) }

// Appointments attaches patient and staff display fields to each
// appointment. Ids that resolve to no record produce "Patient #<id>" /
// "Staff #<id>" labels.
func Appointments(appts []appointment.Appointment, patients []patient.Patient, members []staff.Member) []Appointment {
	byPatient := make(map[int]patient.Patient, len(patients))
	for _, p := range patients {
		byPatient[p.ID] = p
	}
	byStaff := make(map[int]staff.Member, len(members))
	for _, m := range members {
		byStaff[m.ID] = m
	}

	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		e := Appointment{Appointment: a}
		if p, ok := byPatient[a.PatientIDInt()]; ok {
			e.PatientName = p.FullName()
			e.PatientPhone = p.ContactInfo.Phone
		} else {
			e.PatientName = patientLabel(a.PatientIDInt())
		}
		if m, ok := byStaff[a.StaffIDInt()]; ok {
			e.StaffName = m.Name
			e.StaffRole = m.Role
		} else {
			e.StaffName = staffLabel(a.StaffIDInt())
		}
		out = append(out, e)
	}
	return out
}

// Staff maps assigned-patient ids to display names and resolves each
// member's duty status for today, defaulting to "off duty".
func Staff(members []staff.Member, patients []patient.Patient, today time.Time) []StaffMember {
	byPatient := make(map[int]patient.Patient, len(patients))
	for _, p := range patients {
		byPatient[p.ID] = p
	}
	date := today.Format(DateLayout)

	out := make([]StaffMember, 0, len(members))
	for _, m := range members {
		e := StaffMember{
			Member:               m,
			AssignedPatientNames: make([]string, 0, len(m.AssignedPatients)),
			CurrentStatus:        string(staff.DutyOff),
		}
		for _, id := range m.AssignedPatients {
			if p, ok := byPatient[id]; ok {
				e.AssignedPatientNames = append(e.AssignedPatientNames, p.FullName())
			} else {
				e.AssignedPatientNames = append(e.AssignedPatientNames, patientLabel(id))
			}
		}
		for _, entry := range m.Schedule {
			if entry.Date == date {
				e.CurrentStatus = entry.Status
				break
			}
		}
		out = append(out, e)
	}
	return out
}

// RoomPrefix returns the room-code prefix derived from a department name:
// its first three letters upper-cased. The prefix join it feeds is a
// heuristic carried over from the source data, not a real foreign key;
// departments sharing a prefix will claim each other's patients.
func RoomPrefix(name string) string {
	if runes := []rune(name); len(runes) > 3 {
		name = string(runes[:3])
	}
	return strings.ToUpper(name)
}

// OccupancyRate renders occupied/total as a percentage with one decimal,
// "0.0" when total is zero.
func OccupancyRate(occupied, total int) string {
	if total <= 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(occupied)/float64(total)*100)
}

// Departments attaches occupancy metrics plus the staff and patient subsets
// belonging to each department.
func Departments(depts []department.Department, members []staff.Member, patients []patient.Patient, today time.Time) []Department {
	date := today.Format(DateLayout)

	out := make([]Department, 0, len(depts))
	for _, d := range depts {
		e := Department{
			Department:    d,
			OccupancyRate: OccupancyRate(d.OccupiedBeds, d.TotalBeds),
			AvailableBeds: d.TotalBeds - d.OccupiedBeds,
		}
		for _, m := range members {
			if m.Department == d.Name {
				e.DepartmentStaff = append(e.DepartmentStaff, m)
				if m.StatusOn(date) == staff.DutyOn {
					e.StaffOnDuty++
				}
			}
		}
		prefix := RoomPrefix(d.Name)
		for _, p := range patients {
			if strings.HasPrefix(p.AssignedRoom, prefix) {
				e.DepartmentPatients = append(e.DepartmentPatients, p)
			}
		}
		e.TotalStaff = len(e.DepartmentStaff)
		out = append(out, e)
	}
	return out
}
