package patient

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"critical", StatusCritical},
		{"Critical", StatusCritical},
		{"  URGENT  ", StatusUrgent},
		{"stable", StatusStable},
		{"observation", StatusObservation},
		{"discharge", StatusDischarge},
		{"", StatusUnknown},
		{"deceased", StatusUnknown},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFullName(t *testing.T) {
	p := Patient{FirstName: "John", LastName: "Smith"}
	if got := p.FullName(); got != "John Smith" {
		t.Errorf("FullName() = %q", got)
	}
}

func TestPatchApply(t *testing.T) {
	p := Patient{
		ID:            3,
		FirstName:     "John",
		LastName:      "Smith",
		CurrentStatus: "stable",
		AssignedRoom:  "CAR-101",
	}

	status := "critical"
	room := "EME-001"
	out := Patch{CurrentStatus: &status, AssignedRoom: &room}.Apply(p)

	if out.CurrentStatus != "critical" || out.AssignedRoom != "EME-001" {
		t.Errorf("patched fields not applied: %+v", out)
	}
	if out.FirstName != "John" || out.LastName != "Smith" || out.ID != 3 {
		t.Errorf("unpatched fields changed: %+v", out)
	}
}

func TestPatchApplyNilLeavesEverything(t *testing.T) {
	p := Patient{ID: 1, FirstName: "Jane", MedicalHistory: []string{"Asthma"}}
	out := Patch{}.Apply(p)
	if out.FirstName != "Jane" || len(out.MedicalHistory) != 1 {
		t.Errorf("empty patch modified the record: %+v", out)
	}
}

func TestCloneDeepCopiesHistory(t *testing.T) {
	p := Patient{ID: 1, MedicalHistory: []string{"Asthma"}}
	c := p.Clone()
	c.MedicalHistory[0] = "changed"
	if p.MedicalHistory[0] != "Asthma" {
		t.Error("Clone shares the medical history slice")
	}
}
