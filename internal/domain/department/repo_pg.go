package department

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medboard/medboard/internal/platform/store"
)

type pgRepo struct{ pool *pgxpool.Pool }

// NewPGRepo builds a Postgres-backed repository over the department table.
func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const deptCols = `id, name, total_beds, occupied_beds, equipment`

func scanDepartment(row pgx.Row) (Department, error) {
	var d Department
	err := row.Scan(&d.ID, &d.Name, &d.TotalBeds, &d.OccupiedBeds, &d.Equipment)
	if errors.Is(err, pgx.ErrNoRows) {
		return Department{}, store.ErrNotFound
	}
	return d, err
}

func (r *pgRepo) collect(rows pgx.Rows) ([]Department, error) {
	defer rows.Close()
	var out []Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *pgRepo) GetAll(ctx context.Context) ([]Department, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+deptCols+` FROM department ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (Department, error) {
	return scanDepartment(r.pool.QueryRow(ctx, `SELECT `+deptCols+` FROM department WHERE id = $1`, id))
}

func (r *pgRepo) Create(ctx context.Context, d Department) (Department, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO department (id, name, total_beds, occupied_beds, equipment)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM department), $1,$2,$3,$4)
		RETURNING id`,
		d.Name, d.TotalBeds, d.OccupiedBeds, d.Equipment)
	if err := row.Scan(&d.ID); err != nil {
		return Department{}, err
	}
	return d, nil
}

func (r *pgRepo) Update(ctx context.Context, id int, patch Patch) (Department, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return Department{}, err
	}
	d := patch.Apply(existing)
	_, err = r.pool.Exec(ctx, `
		UPDATE department SET name=$2, total_beds=$3, occupied_beds=$4, equipment=$5
		WHERE id = $1`,
		id, d.Name, d.TotalBeds, d.OccupiedBeds, d.Equipment)
	if err != nil {
		return Department{}, err
	}
	return d, nil
}

func (r *pgRepo) ListByOccupancyThreshold(ctx context.Context, threshold float64) ([]Department, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+deptCols+` FROM department
		WHERE CASE WHEN total_beds > 0
			THEN occupied_beds * 100.0 / total_beds
			ELSE 0 END >= $1
		ORDER BY id`, threshold)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *pgRepo) Delete(ctx context.Context, id int) (Department, error) {
	return scanDepartment(r.pool.QueryRow(ctx,
		`DELETE FROM department WHERE id = $1 RETURNING `+deptCols, id))
}
