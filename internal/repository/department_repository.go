package repository

import (
	"context"
	"errors"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

type DepartmentRepository struct {
	db *pgxpool.Pool
}

func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) DepartmentByCode(ctx context.Context, code string) (entity.Department, error) {
	q := `SELECT id, name, code, COALESCE(description, ''), is_active FROM departments WHERE code = $1`

	var dept entity.Department

	err := r.db.QueryRow(ctx, q, code).Scan(
		&dept.ID,
		&dept.Name,
		&dept.Code,
		&dept.Description,
		&dept.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Department{}, entity.ErrNotFound
		}

		return entity.Department{}, err
	}

	return dept, nil
}

func (r *DepartmentRepository) ActiveDepartments(ctx context.Context) ([]entity.Department, error) {
	q := `SELECT id, name, code, COALESCE(description, ''), is_active FROM departments WHERE is_active ORDER BY position`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []entity.Department

	for rows.Next() {
		var dept entity.Department

		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Code, &dept.Description, &dept.IsActive); err != nil {
			return nil, err
		}

		departments = append(departments, dept)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *DepartmentRepository) CountDepartments(ctx context.Context) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `SELECT count(*) FROM departments`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
