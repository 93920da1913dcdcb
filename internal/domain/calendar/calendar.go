// Package calendar buckets time-stamped appointments into the fixed
// 7-day-by-20-slot week grid the scheduling view renders.
package calendar

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/medboard/medboard/internal/domain/enrich"
)

// TimeSlots is the ordered list of half-hour grid rows, 08:00 through 17:30.
var TimeSlots = []string{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30",
}

const slotLayout = "15:04"

// Day is one column of the grid.
type Day struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	IsToday bool   `json:"isToday"`
	// Count is the day-header appointment total. It counts every
	// appointment on the day, including ones that fall outside the slot
	// grid, and is computed independently of cell bucketing.
	Count        int                  `json:"count"`
	Appointments []enrich.Appointment `json:"appointments"`
}

// Grid is the laid-out week: 7 days by len(TimeSlots) rows. Cells[d][s]
// holds the appointments for day d at slot s; an appointment occupies at
// most one cell.
type Grid struct {
	WeekStart string                   `json:"weekStart"`
	WeekEnd   string                   `json:"weekEnd"`
	Slots     []string                 `json:"slots"`
	Days      []Day                    `json:"days"`
	Cells     [][][]enrich.Appointment `json:"cells"`
}

// WeekStart returns midnight of the Monday of the week containing anchor, in
// anchor's location.
func WeekStart(anchor time.Time) time.Time {
	y, m, d := anchor.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, anchor.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday -> 0, Sunday -> 6
	return day.AddDate(0, 0, -offset)
}

// Layout buckets appointments into the week grid anchored at anchor. now
// drives "today" highlighting. Appointments whose time of day is not on a
// 30-minute boundary within 08:00-17:30 never match a slot; they are kept
// out of the cells but logged so the drop is visible.
func Layout(appts []enrich.Appointment, anchor, now time.Time, logger zerolog.Logger) Grid {
	start := WeekStart(anchor)
	loc := anchor.Location()
	today := now.In(loc).Format(enrich.DateLayout)

	slotIndex := make(map[string]int, len(TimeSlots))
	for i, s := range TimeSlots {
		slotIndex[s] = i
	}

	g := Grid{
		WeekStart: start.Format(enrich.DateLayout),
		WeekEnd:   start.AddDate(0, 0, 6).Format(enrich.DateLayout),
		Slots:     TimeSlots,
		Days:      make([]Day, 7),
		Cells:     make([][][]enrich.Appointment, 7),
	}

	dayIndex := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		key := date.Format(enrich.DateLayout)
		dayIndex[key] = i
		g.Days[i] = Day{
			Date:    key,
			Weekday: date.Weekday().String(),
			IsToday: key == today,
		}
		g.Cells[i] = make([][]enrich.Appointment, len(TimeSlots))
	}

	for _, a := range appts {
		local := a.DateTime.In(loc)
		di, ok := dayIndex[local.Format(enrich.DateLayout)]
		if !ok {
			continue
		}
		g.Days[di].Count++
		g.Days[di].Appointments = append(g.Days[di].Appointments, a)

		si, ok := slotIndex[local.Format(slotLayout)]
		if !ok {
			logger.Debug().
				Int("appointment_id", a.ID).
				Str("time", local.Format(slotLayout)).
				Msg("appointment time off the slot grid, not placed")
			continue
		}
		g.Cells[di][si] = append(g.Cells[di][si], a)
	}

	for i := range g.Days {
		day := g.Days[i].Appointments
		sort.SliceStable(day, func(a, b int) bool {
			return day[a].DateTime.Before(day[b].DateTime)
		})
	}

	return g
}
