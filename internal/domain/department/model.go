package department

// Department maps to the department fixture/table. The name doubles as a
// loose join key: staff records carry it verbatim and patient room codes are
// matched against its first three letters.
type Department struct {
	ID           int      `json:"Id" db:"id"`
	Name         string   `json:"name" db:"name"`
	TotalBeds    int      `json:"totalBeds" db:"total_beds"`
	OccupiedBeds int      `json:"occupiedBeds" db:"occupied_beds"`
	Equipment    []string `json:"equipment" db:"equipment"`
}

// RecordID implements store.Record.
func (d Department) RecordID() int { return d.ID }

// WithRecordID implements store.Record.
func (d Department) WithRecordID(id int) Department {
	d.ID = id
	return d
}

// Clone implements store.Record with a deep copy.
func (d Department) Clone() Department {
	out := d
	if d.Equipment != nil {
		out.Equipment = append([]string(nil), d.Equipment...)
	}
	return out
}

// Patch carries the fields of a partial update.
type Patch struct {
	Name         *string   `json:"name"`
	TotalBeds    *int      `json:"totalBeds"`
	OccupiedBeds *int      `json:"occupiedBeds"`
	Equipment    *[]string `json:"equipment"`
}

// Apply merges the patch onto d and returns the result.
func (patch Patch) Apply(d Department) Department {
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.TotalBeds != nil {
		d.TotalBeds = *patch.TotalBeds
	}
	if patch.OccupiedBeds != nil {
		d.OccupiedBeds = *patch.OccupiedBeds
	}
	if patch.Equipment != nil {
		d.Equipment = append([]string(nil), *patch.Equipment...)
	}
	return d
}
