package patient

import "strings"

// Status is a patient's current care status.
type Status string

const (
	StatusCritical    Status = "critical"
	StatusUrgent      Status = "urgent"
	StatusStable      Status = "stable"
	StatusObservation Status = "observation"
	StatusDischarge   Status = "discharge"
	StatusUnknown     Status = "unknown"
)

// ParseStatus folds case and surrounding space and returns StatusUnknown for
// anything outside the known set.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusCritical:
		return StatusCritical
	case StatusUrgent:
		return StatusUrgent
	case StatusStable:
		return StatusStable
	case StatusObservation:
		return StatusObservation
	case StatusDischarge:
		return StatusDischarge
	}
	return StatusUnknown
}

// ContactInfo holds a patient's own contact details.
type ContactInfo struct {
	Phone   string `json:"phone" db:"phone"`
	Email   string `json:"email" db:"email"`
	Address string `json:"address" db:"address"`
}

// EmergencyContact is the person to notify for a patient.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// Insurance identifies a patient's coverage.
type Insurance struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policyNumber"`
}

// Patient maps to the patient fixture/table. Dates are stored in the
// "2006-01-02" form the fixtures use; AdmissionDate is empty for outpatients.
type Patient struct {
	ID               int              `json:"Id" db:"id"`
	FirstName        string           `json:"firstName" db:"first_name"`
	LastName         string           `json:"lastName" db:"last_name"`
	DateOfBirth      string           `json:"dateOfBirth" db:"date_of_birth"`
	Gender           string           `json:"gender" db:"gender"`
	BloodType        string           `json:"bloodType,omitempty" db:"blood_type"`
	CurrentStatus    string           `json:"currentStatus" db:"current_status"`
	AssignedRoom     string           `json:"assignedRoom" db:"assigned_room"`
	PrimaryPhysician string           `json:"primaryPhysician" db:"primary_physician"`
	AdmissionDate    string           `json:"admissionDate,omitempty" db:"admission_date"`
	ContactInfo      ContactInfo      `json:"contactInfo" db:"contact_info"`
	EmergencyContact EmergencyContact `json:"emergencyContact" db:"emergency_contact"`
	Insurance        Insurance        `json:"insurance" db:"insurance"`
	MedicalHistory   []string         `json:"medicalHistory" db:"medical_history"`
}

// FullName returns the display name used across enriched views.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// RecordID implements store.Record.
func (p Patient) RecordID() int { return p.ID }

// WithRecordID implements store.Record.
func (p Patient) WithRecordID(id int) Patient {
	p.ID = id
	return p
}

// Clone implements store.Record with a deep copy.
func (p Patient) Clone() Patient {
	out := p
	if p.MedicalHistory != nil {
		out.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	}
	return out
}

// Patch carries the fields of a partial update. Nil fields are left as they
// are; set fields overwrite.
type Patch struct {
	FirstName        *string           `json:"firstName"`
	LastName         *string           `json:"lastName"`
	DateOfBirth      *string           `json:"dateOfBirth"`
	Gender           *string           `json:"gender"`
	BloodType        *string           `json:"bloodType"`
	CurrentStatus    *string           `json:"currentStatus"`
	AssignedRoom     *string           `json:"assignedRoom"`
	PrimaryPhysician *string           `json:"primaryPhysician"`
	AdmissionDate    *string           `json:"admissionDate"`
	ContactInfo      *ContactInfo      `json:"contactInfo"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
	Insurance        *Insurance        `json:"insurance"`
	MedicalHistory   *[]string         `json:"medicalHistory"`
}

// Apply merges the patch onto p and returns the result.
func (patch Patch) Apply(p Patient) Patient {
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = *patch.LastName
	}
	if patch.DateOfBirth != nil {
		p.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.BloodType != nil {
		p.BloodType = *patch.BloodType
	}
	if patch.CurrentStatus != nil {
		p.CurrentStatus = *patch.CurrentStatus
	}
	if patch.AssignedRoom != nil {
		p.AssignedRoom = *patch.AssignedRoom
	}
	if patch.PrimaryPhysician != nil {
		p.PrimaryPhysician = *patch.PrimaryPhysician
	}
	if patch.AdmissionDate != nil {
		p.AdmissionDate = *patch.AdmissionDate
	}
	if patch.ContactInfo != nil {
		p.ContactInfo = *patch.ContactInfo
	}
	if patch.EmergencyContact != nil {
		p.EmergencyContact = *patch.EmergencyContact
	}
	if patch.Insurance != nil {
		p.Insurance = *patch.Insurance
	}
	if patch.MedicalHistory != nil {
		p.MedicalHistory = append([]string(nil), *patch.MedicalHistory...)
	}
	return p
}
