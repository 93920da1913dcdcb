package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medboard/medboard/internal/platform/store"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo builds a Postgres-backed repository over the patient table.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const patientCols = `id, first_name, last_name, date_of_birth, gender, blood_type,
	current_status, assigned_room, primary_physician, admission_date,
	contact_info, emergency_contact, insurance, medical_history`

func scanPatient(row pgx.Row) (Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.BloodType, &p.CurrentStatus, &p.AssignedRoom, &p.PrimaryPhysician,
		&p.AdmissionDate, &p.ContactInfo, &p.EmergencyContact, &p.Insurance,
		&p.MedicalHistory)
	if errors.Is(err, pgx.ErrNoRows) {
		return Patient{}, store.ErrNotFound
	}
	return p, err
}

func (r *pgRepo) collect(rows pgx.Rows) ([]Patient, error) {
	defer rows.Close()
	var out []Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *pgRepo) GetAll(ctx context.Context) ([]Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *pgRepo) Create(ctx context.Context, p Patient) (Patient, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO patient (id, first_name, last_name, date_of_birth, gender, blood_type,
			current_status, assigned_room, primary_physician, admission_date,
			contact_info, emergency_contact, insurance, medical_history)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM patient),
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id`,
		p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.BloodType,
		p.CurrentStatus, p.AssignedRoom, p.PrimaryPhysician, p.AdmissionDate,
		p.ContactInfo, p.EmergencyContact, p.Insurance, p.MedicalHistory)
	if err := row.Scan(&p.ID); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (r *pgRepo) Update(ctx context.Context, id int, patch Patch) (Patient, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}
	p := patch.Apply(existing)
	_, err = r.pool.Exec(ctx, `
		UPDATE patient SET first_name=$2, last_name=$3, date_of_birth=$4, gender=$5,
			blood_type=$6, current_status=$7, assigned_room=$8, primary_physician=$9,
			admission_date=$10, contact_info=$11, emergency_contact=$12, insurance=$13,
			medical_history=$14
		WHERE id = $1`,
		id, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.BloodType,
		p.CurrentStatus, p.AssignedRoom, p.PrimaryPhysician, p.AdmissionDate,
		p.ContactInfo, p.EmergencyContact, p.Insurance, p.MedicalHistory)
	if err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (r *pgRepo) Delete(ctx context.Context, id int) (Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`DELETE FROM patient WHERE id = $1 RETURNING `+patientCols, id))
}

func (r *pgRepo) ListByStatus(ctx context.Context, status Status) ([]Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patient WHERE LOWER(current_status) = $1 ORDER BY id`,
		string(status))
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}
