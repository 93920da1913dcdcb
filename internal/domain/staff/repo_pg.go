package staff

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medboard/medboard/internal/platform/store"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo builds a Postgres-backed repository over the staff_member table.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const staffCols = `id, name, role, department, shift, contact_info, assigned_patients, schedule`

func scanMember(row pgx.Row) (Member, error) {
	var m Member
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Department, &m.Shift,
		&m.ContactInfo, &m.AssignedPatients, &m.Schedule)
	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, store.ErrNotFound
	}
	return m, err
}

func (r *pgRepo) collect(rows pgx.Rows) ([]Member, error) {
	defer rows.Close()
	var out []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *pgRepo) GetAll(ctx context.Context) ([]Member, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+staffCols+` FROM staff_member ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (Member, error) {
	return scanMember(r.pool.QueryRow(ctx, `SELECT `+staffCols+` FROM staff_member WHERE id = $1`, id))
}

func (r *pgRepo) Create(ctx context.Context, m Member) (Member, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO staff_member (id, name, role, department, shift, contact_info, assigned_patients, schedule)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM staff_member), $1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		m.Name, m.Role, m.Department, m.Shift, m.ContactInfo, m.AssignedPatients, m.Schedule)
	if err := row.Scan(&m.ID); err != nil {
		return Member{}, err
	}
	return m, nil
}

func (r *pgRepo) Update(ctx context.Context, id int, patch Patch) (Member, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return Member{}, err
	}
	m := patch.Apply(existing)
	_, err = r.pool.Exec(ctx, `
		UPDATE staff_member SET name=$2, role=$3, department=$4, shift=$5,
			contact_info=$6, assigned_patients=$7, schedule=$8
		WHERE id = $1`,
		id, m.Name, m.Role, m.Department, m.Shift, m.ContactInfo, m.AssignedPatients, m.Schedule)
	if err != nil {
		return Member{}, err
	}
	return m, nil
}

func (r *pgRepo) Delete(ctx context.Context, id int) (Member, error) {
	return scanMember(r.pool.QueryRow(ctx,
		`DELETE FROM staff_member WHERE id = $1 RETURNING `+staffCols, id))
}

func (r *pgRepo) ListByRole(ctx context.Context, role Role) ([]Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+staffCols+` FROM staff_member WHERE LOWER(role) = $1 ORDER BY id`, string(role))
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) ListByDepartment(ctx context.Context, department string) ([]Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+staffCols+` FROM staff_member WHERE department ILIKE '%' || $1 || '%' ORDER BY id`,
		department)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) ListOnDuty(ctx context.Context, date string) ([]Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+staffCols+` FROM staff_member
		WHERE schedule @> jsonb_build_array(jsonb_build_object('date', $1::text, 'status', 'on duty'))
		ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}
