package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

var recordColumns = []string{
	"id", "student_id", "department", "status", "notes",
	"cleared_by", "cleared_at", "updated_by", "created_at", "updated_at",
}

type ClearanceRepository struct {
	db *pgxpool.Pool
}

func NewClearanceRepository(db *pgxpool.Pool) *ClearanceRepository {
	return &ClearanceRepository{db: db}
}

func scanRecord(row pgx.Row) (entity.ClearanceRecord, error) {
	var rec entity.ClearanceRecord

	err := row.Scan(
		&rec.ID,
		&rec.StudentID,
		&rec.Department,
		&rec.Status,
		&rec.Notes,
		&rec.ClearedBy,
		&rec.ClearedAt,
		&rec.UpdatedBy,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ClearanceRecord{}, entity.ErrNotFound
		}

		return entity.ClearanceRecord{}, err
	}

	return rec, nil
}

func (r *ClearanceRepository) recordsWhere(ctx context.Context, pred any) ([]entity.ClearanceRecord, error) {
	stmt := sq.Select(recordColumns...).
		From("clearance_records").
		Where(pred).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entity.ClearanceRecord

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *ClearanceRepository) RecordsByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.ClearanceRecord, error) {
	return r.recordsWhere(ctx, sq.Eq{"student_id": studentID})
}

func (r *ClearanceRepository) RecordsByDepartment(ctx context.Context, department string) ([]entity.ClearanceRecord, error) {
	return r.recordsWhere(ctx, sq.Eq{"department": department})
}

func (r *ClearanceRepository) RecordByStudentAndDepartment(
	ctx context.Context, studentID uuid.UUID, department string,
) (entity.ClearanceRecord, error) {
	stmt := sq.Select(recordColumns...).
		From("clearance_records").
		Where(sq.Eq{"student_id": studentID, "department": department}).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return entity.ClearanceRecord{}, err
	}

	return scanRecord(r.db.QueryRow(ctx, sqlQuery, args...))
}

// UpsertRecord writes the unique (student_id, department) record,
// last-write-wins on conflict.
func (r *ClearanceRepository) UpsertRecord(ctx context.Context, rec entity.ClearanceRecord) error {
	stmt := sq.Insert("clearance_records").
		Columns("id", "student_id", "department", "status", "notes", "cleared_by", "cleared_at", "updated_by").
		Values(rec.ID, rec.StudentID, rec.Department, rec.Status, rec.Notes, rec.ClearedBy, rec.ClearedAt, rec.UpdatedBy).
		Suffix(`ON CONFLICT (student_id, department) DO UPDATE SET
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			cleared_by = EXCLUDED.cleared_by,
			cleared_at = EXCLUDED.cleared_at,
			updated_by = EXCLUDED.updated_by,
			updated_at = now()`).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *ClearanceRepository) CountByStatus(ctx context.Context, status entity.ClearanceStatus) (int, error) {
	stmt := sq.Select("count(*)").
		From("clearance_records").
		Where(sq.Eq{"status": status}).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
