package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

const studentColumns = `id, student_id, full_name, email, department,
	COALESCE(phone, ''), COALESCE(course_code, ''), COALESCE(year_level, ''),
	COALESCE(clearance_reason, ''), created_at, updated_at`

type StudentRepository struct {
	db *pgxpool.Pool
}

func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (entity.Student, error) {
	var s entity.Student

	err := row.Scan(
		&s.ID,
		&s.StudentID,
		&s.FullName,
		&s.Email,
		&s.Department,
		&s.Phone,
		&s.CourseCode,
		&s.YearLevel,
		&s.ClearanceReason,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Student{}, entity.ErrNotFound
		}

		return entity.Student{}, err
	}

	return s, nil
}

func (r *StudentRepository) StudentByEmail(ctx context.Context, email string) (entity.Student, error) {
	q := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	return scanStudent(r.db.QueryRow(ctx, q, email))
}

func (r *StudentRepository) StudentByID(ctx context.Context, id uuid.UUID) (entity.Student, error) {
	q := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	return scanStudent(r.db.QueryRow(ctx, q, id))
}

func (r *StudentRepository) ListStudents(ctx context.Context) ([]entity.Student, error) {
	q := `SELECT ` + studentColumns + ` FROM students ORDER BY full_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []entity.Student

	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}

		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// AdoptAccountID rewrites the row id to the backing account id. Legacy rows
// were keyed by email only; this keeps them aligned with the auth backend.
func (r *StudentRepository) AdoptAccountID(ctx context.Context, email string, accountID uuid.UUID) error {
	q := `UPDATE students SET id = $1, updated_at = now() WHERE email = $2 AND id <> $1`

	_, err := r.db.Exec(ctx, q, accountID, email)
	if err != nil {
		return err
	}

	return nil
}

func (r *StudentRepository) CountStudents(ctx context.Context) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `SELECT count(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *StudentRepository) CreateStudent(ctx context.Context, s entity.Student) error {
	q := `
	INSERT INTO students (id, student_id, full_name, email, department, phone, course_code, year_level, clearance_reason)
	VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))`

	_, err := r.db.Exec(ctx, q,
		s.ID, s.StudentID, s.FullName, s.Email, s.Department,
		s.Phone, s.CourseCode, s.YearLevel, s.ClearanceReason,
	)
	if err != nil {
		return err
	}

	return nil
}
