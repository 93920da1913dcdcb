// Package fixtures loads the bundled seed data the in-memory repositories
// start from. The JSON files mirror the shapes the admin views consume; they
// are trusted input and only advisory cross-reference checks are run against
// them.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/department"
	"github.com/medboard/medboard/internal/domain/patient"
	"github.com/medboard/medboard/internal/domain/staff"
)

//go:embed data/*.json
var embedded embed.FS

// Data holds one decoded copy of every fixture file.
type Data struct {
	Patients     []patient.Patient
	Staff        []staff.Member
	Appointments []appointment.Appointment
	Departments  []department.Department
}

func decode(fsys fs.FS, name string, out any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

func loadFS(fsys fs.FS) (*Data, error) {
	d := &Data{}
	if err := decode(fsys, "patients.json", &d.Patients); err != nil {
		return nil, err
	}
	if err := decode(fsys, "staff.json", &d.Staff); err != nil {
		return nil, err
	}
	if err := decode(fsys, "appointments.json", &d.Appointments); err != nil {
		return nil, err
	}
	if err := decode(fsys, "departments.json", &d.Departments); err != nil {
		return nil, err
	}
	return d, nil
}

// Load decodes the embedded fixture set.
func Load() (*Data, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return loadFS(sub)
}

// LoadDir decodes fixtures from a directory on disk instead of the embedded
// set, for running against custom seed data.
func LoadDir(dir string) (*Data, error) {
	if _, err := os.Stat(filepath.Join(dir, "patients.json")); err != nil {
		return nil, fmt.Errorf("fixture dir %s: %w", dir, err)
	}
	return loadFS(os.DirFS(dir))
}

// Validate runs advisory integrity checks and returns one warning per
// finding. Cross-entity references are weak, so findings are reported,
// never fatal.
func (d *Data) Validate() []string {
	var warnings []string

	patientIDs := make(map[int]bool, len(d.Patients))
	for _, p := range d.Patients {
		if patientIDs[p.ID] {
			warnings = append(warnings, fmt.Sprintf("duplicate patient id %d", p.ID))
		}
		patientIDs[p.ID] = true
	}
	staffIDs := make(map[int]bool, len(d.Staff))
	for _, m := range d.Staff {
		if staffIDs[m.ID] {
			warnings = append(warnings, fmt.Sprintf("duplicate staff id %d", m.ID))
		}
		staffIDs[m.ID] = true
		for _, pid := range m.AssignedPatients {
			if !patientIDs[pid] {
				warnings = append(warnings, fmt.Sprintf("staff %d references missing patient %d", m.ID, pid))
			}
		}
		if err := staff.ValidateSchedule(m.Schedule); err != nil {
			warnings = append(warnings, fmt.Sprintf("staff %d: %v", m.ID, err))
		}
	}
	apptIDs := make(map[int]bool, len(d.Appointments))
	for _, a := range d.Appointments {
		if apptIDs[a.ID] {
			warnings = append(warnings, fmt.Sprintf("duplicate appointment id %d", a.ID))
		}
		apptIDs[a.ID] = true
		if !patientIDs[a.PatientIDInt()] {
			warnings = append(warnings, fmt.Sprintf("appointment %d references missing patient %s", a.ID, a.PatientID))
		}
		if !staffIDs[a.StaffIDInt()] {
			warnings = append(warnings, fmt.Sprintf("appointment %d references missing staff %s", a.ID, a.StaffID))
		}
	}
	deptIDs := make(map[int]bool, len(d.Departments))
	for _, dept := range d.Departments {
		if deptIDs[dept.ID] {
			warnings = append(warnings, fmt.Sprintf("duplicate department id %d", dept.ID))
		}
		deptIDs[dept.ID] = true
		if dept.OccupiedBeds > dept.TotalBeds {
			warnings = append(warnings, fmt.Sprintf("department %d occupancy exceeds capacity (%d/%d)",
				dept.ID, dept.OccupiedBeds, dept.TotalBeds))
		}
	}
	return warnings
}
