package calendar

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/enrich"
)

func at(day, clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", day+" "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

func appt(id int, day, clock string) enrich.Appointment {
	return enrich.Appointment{
		Appointment: appointment.Appointment{ID: id, DateTime: at(day, clock)},
	}
}

func slotIdx(t *testing.T, slot string) int {
	t.Helper()
	for i, s := range TimeSlots {
		if s == slot {
			return i
		}
	}
	t.Fatalf("slot %q not in grid", slot)
	return -1
}

func TestWeekStartIsMonday(t *testing.T) {
	tests := []struct{ anchor, want string }{
		{"2024-03-04", "2024-03-04"}, // Monday anchors to itself
		{"2024-03-06", "2024-03-04"}, // Wednesday
		{"2024-03-10", "2024-03-04"}, // Sunday belongs to the preceding Monday
		{"2024-03-11", "2024-03-11"}, // next Monday
	}
	for _, tt := range tests {
		got := WeekStart(at(tt.anchor, "15:45")).Format(enrich.DateLayout)
		if got != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.anchor, got, tt.want)
		}
	}
}

func TestLayoutPlacesSlotAlignedAppointments(t *testing.T) {
	appts := []enrich.Appointment{
		appt(1, "2024-03-04", "09:00"), // Monday
		appt(2, "2024-03-06", "09:30"), // Wednesday
	}
	g := Layout(appts, at("2024-03-04", "00:00"), at("2024-03-04", "12:00"), zerolog.Nop())

	if g.WeekStart != "2024-03-04" || g.WeekEnd != "2024-03-10" {
		t.Fatalf("week bounds = %s..%s", g.WeekStart, g.WeekEnd)
	}
	if len(g.Days) != 7 || len(g.Cells) != 7 {
		t.Fatalf("expected 7 days, got %d days / %d cell columns", len(g.Days), len(g.Cells))
	}
	if len(g.Slots) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(g.Slots))
	}

	monday9 := g.Cells[0][slotIdx(t, "09:00")]
	if len(monday9) != 1 || monday9[0].ID != 1 {
		t.Errorf("Monday 09:00 cell = %+v", monday9)
	}
	wednesday930 := g.Cells[2][slotIdx(t, "09:30")]
	if len(wednesday930) != 1 || wednesday930[0].ID != 2 {
		t.Errorf("Wednesday 09:30 cell = %+v", wednesday930)
	}
	if g.Days[0].Weekday != "Monday" || g.Days[2].Weekday != "Wednesday" {
		t.Errorf("weekday labels = %s / %s", g.Days[0].Weekday, g.Days[2].Weekday)
	}
}

func TestLayoutDropsOffGridTimes(t *testing.T) {
	appts := []enrich.Appointment{
		appt(1, "2024-03-04", "09:15"), // not on a half-hour boundary
		appt(2, "2024-03-04", "07:30"), // before the grid
		appt(3, "2024-03-04", "18:00"), // after the grid
	}
	g := Layout(appts, at("2024-03-04", "00:00"), at("2024-03-04", "12:00"), zerolog.Nop())

	for si := range g.Slots {
		if len(g.Cells[0][si]) != 0 {
			t.Errorf("off-grid appointment placed in slot %s", g.Slots[si])
		}
	}
	// The day header still counts them.
	if g.Days[0].Count != 3 {
		t.Errorf("day count = %d, want 3", g.Days[0].Count)
	}
	if len(g.Days[0].Appointments) != 3 {
		t.Errorf("day appointment list = %d, want 3", len(g.Days[0].Appointments))
	}
}

func TestLayoutIgnoresOtherWeeks(t *testing.T) {
	appts := []enrich.Appointment{
		appt(1, "2024-03-15", "09:00"), // following week
	}
	g := Layout(appts, at("2024-03-04", "00:00"), at("2024-03-04", "12:00"), zerolog.Nop())
	for _, d := range g.Days {
		if d.Count != 0 {
			t.Errorf("appointment outside the week counted on %s", d.Date)
		}
	}
}

func TestLayoutMarksToday(t *testing.T) {
	g := Layout(nil, at("2024-03-04", "00:00"), at("2024-03-06", "08:15"), zerolog.Nop())
	for i, d := range g.Days {
		want := i == 2 // Wednesday 2024-03-06
		if d.IsToday != want {
			t.Errorf("day %s IsToday = %v, want %v", d.Date, d.IsToday, want)
		}
	}
}

func TestLayoutSortsDayAppointments(t *testing.T) {
	appts := []enrich.Appointment{
		appt(2, "2024-03-04", "14:00"),
		appt(1, "2024-03-04", "08:30"),
		appt(3, "2024-03-04", "09:15"), // off-grid but still listed
	}
	g := Layout(appts, at("2024-03-04", "00:00"), at("2024-03-04", "12:00"), zerolog.Nop())

	day := g.Days[0].Appointments
	if len(day) != 3 {
		t.Fatalf("expected 3 appointments on Monday, got %d", len(day))
	}
	for i, want := range []int{1, 3, 2} {
		if day[i].ID != want {
			t.Errorf("position %d: got id %d, want %d", i, day[i].ID, want)
		}
	}
}
