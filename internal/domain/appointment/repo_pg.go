package appointment

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medboard/medboard/internal/platform/store"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo builds a Postgres-backed repository over the appointment table.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const apptCols = `id, patient_id, staff_id, date_time, duration, type, department, status`

func scanAppointment(row pgx.Row) (Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.StaffID, &a.DateTime, &a.Duration,
		&a.Type, &a.Department, &a.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return Appointment{}, store.ErrNotFound
	}
	return a, err
}

func (r *pgRepo) collect(rows pgx.Rows) ([]Appointment, error) {
	defer rows.Close()
	var out []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *pgRepo) GetAll(ctx context.Context) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+apptCols+` FROM appointment ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
}

func (r *pgRepo) Create(ctx context.Context, a Appointment) (Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointment (id, patient_id, staff_id, date_time, duration, type, department, status)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM appointment), $1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		a.PatientID, a.StaffID, a.DateTime, a.Duration, a.Type, a.Department, a.Status)
	if err := row.Scan(&a.ID); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (r *pgRepo) Update(ctx context.Context, id int, patch Patch) (Appointment, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	a := patch.Apply(existing)
	_, err = r.pool.Exec(ctx, `
		UPDATE appointment SET patient_id=$2, staff_id=$3, date_time=$4, duration=$5,
			type=$6, department=$7, status=$8
		WHERE id = $1`,
		id, a.PatientID, a.StaffID, a.DateTime, a.Duration, a.Type, a.Department, a.Status)
	if err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (r *pgRepo) Delete(ctx context.Context, id int) (Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx,
		`DELETE FROM appointment WHERE id = $1 RETURNING `+apptCols, id))
}

func (r *pgRepo) ListByPatient(ctx context.Context, patientID int) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE patient_id = $1 ORDER BY id`,
		strconv.Itoa(patientID))
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) ListByStaff(ctx context.Context, staffID int) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE staff_id = $1 ORDER BY id`,
		strconv.Itoa(staffID))
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE date_time BETWEEN $1 AND $2 ORDER BY id`,
		from, to)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) ListByStatus(ctx context.Context, status Status) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE LOWER(status) = $1 ORDER BY id`,
		string(status))
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}
