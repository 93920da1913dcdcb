package appointment

import (
	"strconv"
	"strings"
	"time"
)

// Status is an appointment's scheduling status.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusUnknown   Status = "unknown"
)

// ParseStatus folds case and returns StatusUnknown for anything outside the
// known set.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusConfirmed:
		return StatusConfirmed
	case StatusPending:
		return StatusPending
	case StatusCancelled:
		return StatusCancelled
	case StatusCompleted:
		return StatusCompleted
	}
	return StatusUnknown
}

// Appointment maps to the appointment fixture/table. PatientID and StaffID
// are stored as strings, the form the fixture data carries them in; they are
// compared numerically everywhere (see PatientIDInt/StaffIDInt).
type Appointment struct {
	ID         int       `json:"Id" db:"id"`
	PatientID  string    `json:"patientId" db:"patient_id"`
	StaffID    string    `json:"staffId" db:"staff_id"`
	DateTime   time.Time `json:"dateTime" db:"date_time"`
	Duration   int       `json:"duration" db:"duration"`
	Type       string    `json:"type" db:"type"`
	Department string    `json:"department" db:"department"`
	Status     string    `json:"status" db:"status"`
}

// PatientIDInt returns the numeric patient id, 0 when unparseable.
func (a Appointment) PatientIDInt() int {
	n, _ := strconv.Atoi(a.PatientID)
	return n
}

// StaffIDInt returns the numeric staff id, 0 when unparseable.
func (a Appointment) StaffIDInt() int {
	n, _ := strconv.Atoi(a.StaffID)
	return n
}

// RecordID implements store.Record.
func (a Appointment) RecordID() int { return a.ID }

// WithRecordID implements store.Record.
func (a Appointment) WithRecordID(id int) Appointment {
	a.ID = id
	return a
}

// Clone implements store.Record.
func (a Appointment) Clone() Appointment { return a }

// Patch carries the fields of a partial update.
type Patch struct {
	PatientID  *string    `json:"patientId"`
	StaffID    *string    `json:"staffId"`
	DateTime   *time.Time `json:"dateTime"`
	Duration   *int       `json:"duration"`
	Type       *string    `json:"type"`
	Department *string    `json:"department"`
	Status     *string    `json:"status"`
}

// Apply merges the patch onto a and returns the result.
func (patch Patch) Apply(a Appointment) Appointment {
	if patch.PatientID != nil {
		a.PatientID = *patch.PatientID
	}
	if patch.StaffID != nil {
		a.StaffID = *patch.StaffID
	}
	if patch.DateTime != nil {
		a.DateTime = *patch.DateTime
	}
	if patch.Duration != nil {
		a.Duration = *patch.Duration
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Department != nil {
		a.Department = *patch.Department
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	return a
}
