// Package pages assembles the read models behind the admin views. Each page
// loads the stores it needs concurrently and fails as a whole if any one
// load fails; there is no partial-result recovery.
package pages

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/calendar"
	"github.com/medboard/medboard/internal/domain/department"
	"github.com/medboard/medboard/internal/domain/enrich"
	"github.com/medboard/medboard/internal/domain/patient"
	"github.com/medboard/medboard/internal/domain/query"
	"github.com/medboard/medboard/internal/domain/staff"
)

// The page services only ever read full snapshots, so they depend on these
// narrow sources rather than the full repositories.
type (
	PatientSource interface {
		GetAll(ctx context.Context) ([]patient.Patient, error)
	}
	StaffSource interface {
		GetAll(ctx context.Context) ([]staff.Member, error)
	}
	AppointmentSource interface {
		GetAll(ctx context.Context) ([]appointment.Appointment, error)
	}
	DepartmentSource interface {
		GetAll(ctx context.Context) ([]department.Department, error)
	}
)

type Service struct {
	patients     PatientSource
	staff        StaffSource
	appointments AppointmentSource
	departments  DepartmentSource
	logger       zerolog.Logger
	now          func() time.Time
}

func NewService(p PatientSource, s StaffSource, a AppointmentSource, d DepartmentSource, logger zerolog.Logger) *Service {
	return &Service{
		patients:     p,
		staff:        s,
		appointments: a,
		departments:  d,
		logger:       logger,
		now:          time.Now,
	}
}

// snapshot loads the requested stores concurrently, fail-fast: the first
// error cancels the remaining loads and fails the whole batch.
func (s *Service) snapshot(ctx context.Context, patients *[]patient.Patient, members *[]staff.Member,
	appts *[]appointment.Appointment, depts *[]department.Department) error {

	g, ctx := errgroup.WithContext(ctx)
	if patients != nil {
		g.Go(func() error {
			var err error
			*patients, err = s.patients.GetAll(ctx)
			return err
		})
	}
	if members != nil {
		g.Go(func() error {
			var err error
			*members, err = s.staff.GetAll(ctx)
			return err
		})
	}
	if appts != nil {
		g.Go(func() error {
			var err error
			*appts, err = s.appointments.GetAll(ctx)
			return err
		})
	}
	if depts != nil {
		g.Go(func() error {
			var err error
			*depts, err = s.departments.GetAll(ctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	return nil
}

// Dashboard is the landing-page read model.
type Dashboard struct {
	TotalPatients        int                  `json:"totalPatients"`
	CriticalPatients     int                  `json:"criticalPatients"`
	TodayAppointments    int                  `json:"todayAppointments"`
	StaffOnDuty          int                  `json:"staffOnDuty"`
	RecentPatients       []patient.Patient    `json:"recentPatients"`
	UpcomingAppointments []enrich.Appointment `json:"upcomingAppointments"`
	DepartmentOccupancy  []enrich.Department  `json:"departmentOccupancy"`
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		patients []patient.Patient
		members  []staff.Member
		appts    []appointment.Appointment
		depts    []department.Department
	)
	if err := s.snapshot(ctx, &patients, &members, &appts, &depts); err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format(enrich.DateLayout)

	d := &Dashboard{TotalPatients: len(patients)}
	for _, p := range patients {
		if patient.ParseStatus(p.CurrentStatus) == patient.StatusCritical {
			d.CriticalPatients++
		}
	}
	for _, a := range appts {
		if a.DateTime.In(now.Location()).Format(enrich.DateLayout) == today {
			d.TodayAppointments++
		}
	}
	for _, m := range members {
		if m.StatusOn(today) == staff.DutyOn {
			d.StaffOnDuty++
		}
	}

	// Five most recent admissions. The date form sorts lexicographically.
	admitted := make([]patient.Patient, 0, len(patients))
	for _, p := range patients {
		if p.AdmissionDate != "" {
			admitted = append(admitted, p)
		}
	}
	sort.SliceStable(admitted, func(i, j int) bool {
		return admitted[i].AdmissionDate > admitted[j].AdmissionDate
	})
	if len(admitted) > 5 {
		admitted = admitted[:5]
	}
	d.RecentPatients = admitted

	// Five soonest pending or confirmed appointments.
	enriched := enrich.Appointments(appts, patients, members)
	upcoming := make([]enrich.Appointment, 0, len(enriched))
	for _, a := range enriched {
		switch appointment.ParseStatus(a.Status) {
		case appointment.StatusPending, appointment.StatusConfirmed:
			upcoming = append(upcoming, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DateTime.Before(upcoming[j].DateTime)
	})
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	d.UpcomingAppointments = upcoming

	d.DepartmentOccupancy = enrich.Departments(depts, members, patients, now)
	return d, nil
}

// PatientsPage is the patient-list read model.
type PatientsPage struct {
	Patients     []patient.Patient `json:"patients"`
	StatusCounts map[string]int    `json:"statusCounts"`
}

func (s *Service) Patients(ctx context.Context, c query.Criteria) (*PatientsPage, error) {
	var patients []patient.Patient
	if err := s.snapshot(ctx, &patients, nil, nil, nil); err != nil {
		return nil, err
	}

	counts := map[string]int{query.All: len(patients)}
	for _, st := range []patient.Status{
		patient.StatusCritical, patient.StatusUrgent, patient.StatusStable,
		patient.StatusObservation, patient.StatusDischarge,
	} {
		counts[string(st)] = 0
	}
	for _, p := range patients {
		if st := patient.ParseStatus(p.CurrentStatus); st != patient.StatusUnknown {
			counts[string(st)]++
		}
	}

	filtered := query.Filter(patients, c,
		func(p patient.Patient) []string {
			return []string{p.FullName(), p.AssignedRoom, p.PrimaryPhysician}
		},
		func(p patient.Patient) string { return p.CurrentStatus })

	return &PatientsPage{Patients: filtered, StatusCounts: counts}, nil
}

// AppointmentsPage is the appointment-list read model, with an optional
// calendar grid when a week anchor is supplied.
type AppointmentsPage struct {
	Appointments []enrich.Appointment `json:"appointments"`
	StatusCounts map[string]int       `json:"statusCounts"`
	Calendar     *calendar.Grid       `json:"calendar,omitempty"`
}

func (s *Service) Appointments(ctx context.Context, c query.Criteria, weekAnchor *time.Time) (*AppointmentsPage, error) {
	var (
		patients []patient.Patient
		members  []staff.Member
		appts    []appointment.Appointment
	)
	if err := s.snapshot(ctx, &patients, &members, &appts, nil); err != nil {
		return nil, err
	}

	counts := map[string]int{query.All: len(appts)}
	for _, st := range []appointment.Status{
		appointment.StatusConfirmed, appointment.StatusPending,
		appointment.StatusCancelled, appointment.StatusCompleted,
	} {
		counts[string(st)] = 0
	}
	for _, a := range appts {
		if st := appointment.ParseStatus(a.Status); st != appointment.StatusUnknown {
			counts[string(st)]++
		}
	}

	enriched := enrich.Appointments(appts, patients, members)
	filtered := query.Filter(enriched, c,
		func(a enrich.Appointment) []string {
			return []string{a.PatientName, a.StaffName, a.Type, a.Department}
		},
		func(a enrich.Appointment) string { return a.Status })

	page := &AppointmentsPage{Appointments: filtered, StatusCounts: counts}
	if weekAnchor != nil {
		grid := calendar.Layout(enriched, *weekAnchor, s.now(), s.logger)
		page.Calendar = &grid
	}
	return page, nil
}

// StaffPage is the staff-list read model. Role and duty-status filters apply
// on top of the shared search criteria.
type StaffPage struct {
	Staff        []enrich.StaffMember `json:"staff"`
	RoleCounts   map[string]int       `json:"roleCounts"`
	StatusCounts map[string]int       `json:"statusCounts"`
}

func (s *Service) Staff(ctx context.Context, c query.Criteria, role string) (*StaffPage, error) {
	var (
		patients []patient.Patient
		members  []staff.Member
	)
	if err := s.snapshot(ctx, &patients, &members, nil, nil); err != nil {
		return nil, err
	}

	enriched := enrich.Staff(members, patients, s.now())

	roleCounts := map[string]int{query.All: len(members)}
	for _, r := range []staff.Role{staff.RoleDoctor, staff.RoleNurse, staff.RoleTechnician, staff.RoleAdministrator} {
		roleCounts[string(r)] = 0
	}
	for _, m := range members {
		if r := staff.ParseRole(m.Role); r != staff.RoleUnknown {
			roleCounts[string(r)]++
		}
	}

	statusCounts := map[string]int{query.All: len(members)}
	for _, st := range []staff.DutyStatus{staff.DutyOn, staff.DutyOff, staff.DutyBreak, staff.DutyEmergency} {
		statusCounts[query.Normalize(string(st))] = 0
	}
	for _, m := range enriched {
		if st := staff.ParseDutyStatus(m.CurrentStatus); st != staff.DutyUnknown {
			statusCounts[query.Normalize(string(st))]++
		}
	}

	filtered := query.Filter(enriched, c,
		func(m enrich.StaffMember) []string {
			return []string{m.Name, m.Role, m.Department}
		},
		func(m enrich.StaffMember) string { return m.CurrentStatus })
	if query.Normalize(role) != "" && query.Normalize(role) != query.All {
		kept := filtered[:0:0]
		for _, m := range filtered {
			if query.MatchesStatus(role, m.Role) {
				kept = append(kept, m)
			}
		}
		filtered = kept
	}

	return &StaffPage{Staff: filtered, RoleCounts: roleCounts, StatusCounts: statusCounts}, nil
}

// DepartmentsPage is the department-list read model.
type DepartmentsPage struct {
	Departments      []enrich.Department `json:"departments"`
	TotalBeds        int                 `json:"totalBeds"`
	TotalOccupied    int                 `json:"totalOccupied"`
	OverallOccupancy string              `json:"overallOccupancy"`
	TotalStaffOnDuty int                 `json:"totalStaffOnDuty"`
}

func (s *Service) Departments(ctx context.Context, c query.Criteria) (*DepartmentsPage, error) {
	var (
		patients []patient.Patient
		members  []staff.Member
		depts    []department.Department
	)
	if err := s.snapshot(ctx, &patients, &members, nil, &depts); err != nil {
		return nil, err
	}

	enriched := enrich.Departments(depts, members, patients, s.now())
	page := &DepartmentsPage{}
	for _, d := range enriched {
		page.TotalBeds += d.TotalBeds
		page.TotalOccupied += d.OccupiedBeds
		page.TotalStaffOnDuty += d.StaffOnDuty
	}
	page.OverallOccupancy = enrich.OccupancyRate(page.TotalOccupied, page.TotalBeds)

	page.Departments = query.Filter(enriched, c,
		func(d enrich.Department) []string { return []string{d.Name} },
		nil)
	return page, nil
}

// Reports is the reporting read model.
type Reports struct {
	TotalPatients             int            `json:"totalPatients"`
	CriticalPatients          int            `json:"criticalPatients"`
	AdmittedThisMonth         int            `json:"admittedThisMonth"`
	TotalAppointments         int            `json:"totalAppointments"`
	CompletedAppointments     int            `json:"completedAppointments"`
	CancelledAppointments     int            `json:"cancelledAppointments"`
	AppointmentCompletionRate string         `json:"appointmentCompletionRate"`
	TotalStaff                int            `json:"totalStaff"`
	DoctorsCount              int            `json:"doctorsCount"`
	NursesCount               int            `json:"nursesCount"`
	TotalBeds                 int            `json:"totalBeds"`
	OccupiedBeds              int            `json:"occupiedBeds"`
	AverageOccupancy          string         `json:"averageOccupancy"`
	StatusDistribution        map[string]int `json:"statusDistribution"`
}

func (s *Service) Reports(ctx context.Context) (*Reports, error) {
	var (
		patients []patient.Patient
		members  []staff.Member
		appts    []appointment.Appointment
		depts    []department.Department
	)
	if err := s.snapshot(ctx, &patients, &members, &appts, &depts); err != nil {
		return nil, err
	}

	now := s.now()
	monthPrefix := now.Format("2006-01")

	r := &Reports{
		TotalPatients:     len(patients),
		TotalAppointments: len(appts),
		TotalStaff:        len(members),
		StatusDistribution: map[string]int{
			string(patient.StatusCritical):    0,
			string(patient.StatusUrgent):      0,
			string(patient.StatusStable):      0,
			string(patient.StatusObservation): 0,
			string(patient.StatusDischarge):   0,
		},
	}
	for _, p := range patients {
		st := patient.ParseStatus(p.CurrentStatus)
		if st == patient.StatusCritical {
			r.CriticalPatients++
		}
		if st != patient.StatusUnknown {
			r.StatusDistribution[string(st)]++
		}
		if strings.HasPrefix(p.AdmissionDate, monthPrefix) {
			r.AdmittedThisMonth++
		}
	}
	for _, a := range appts {
		switch appointment.ParseStatus(a.Status) {
		case appointment.StatusCompleted:
			r.CompletedAppointments++
		case appointment.StatusCancelled:
			r.CancelledAppointments++
		}
	}
	r.AppointmentCompletionRate = "0.0"
	if r.TotalAppointments > 0 {
		r.AppointmentCompletionRate = fmt.Sprintf("%.1f",
			float64(r.CompletedAppointments)/float64(r.TotalAppointments)*100)
	}
	for _, m := range members {
		switch staff.ParseRole(m.Role) {
		case staff.RoleDoctor:
			r.DoctorsCount++
		case staff.RoleNurse:
			r.NursesCount++
		}
	}
	for _, d := range depts {
		r.TotalBeds += d.TotalBeds
		r.OccupiedBeds += d.OccupiedBeds
	}
	r.AverageOccupancy = enrich.OccupancyRate(r.OccupiedBeds, r.TotalBeds)
	return r, nil
}
