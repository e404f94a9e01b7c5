package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"campusevents/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{
		DB: db,
	}
}

// Upsert creates the attendance record or, when one exists for the pair,
// updates its presence flag and timestamp. ON CONFLICT on the pair's unique
// index makes this a single atomic statement, so repeated marking can never
// produce a second row. The stored row's id is scanned back so callers see
// the original id on update.
func (r *attendanceRepository) Upsert(ctx context.Context, att *domain.Attendance) error {
	if att.ID == "" {
		att.ID = uuid.New().String()
	}
	query := `
		INSERT INTO attendances (id, student_id, event_id, is_present, marked_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, event_id)
		DO UPDATE SET is_present = EXCLUDED.is_present, marked_at = EXCLUDED.marked_at
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		att.ID, att.StudentID, att.EventID, att.IsPresent, att.MarkedAt,
	).Scan(&att.ID)
}

func (r *attendanceRepository) GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*domain.Attendance, error) {
	query := `
		SELECT id, student_id, event_id, is_present, marked_at
		FROM attendances
		WHERE student_id = $1 AND event_id = $2
	`
	att := &domain.Attendance{}
	err := r.DB.QueryRowContext(ctx, query, studentID, eventID).
		Scan(&att.ID, &att.StudentID, &att.EventID, &att.IsPresent, &att.MarkedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return att, nil
}

func (r *attendanceRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	query := `
		SELECT id, student_id, event_id, is_present, marked_at
		FROM attendances
		WHERE event_id = $1
		ORDER BY marked_at ASC
	`
	return r.queryAttendances(ctx, query, eventID)
}

func (r *attendanceRepository) ListByStudentID(ctx context.Context, studentID string) ([]*domain.Attendance, error) {
	query := `
		SELECT id, student_id, event_id, is_present, marked_at
		FROM attendances
		WHERE student_id = $1
		ORDER BY marked_at DESC
	`
	return r.queryAttendances(ctx, query, studentID)
}

func (r *attendanceRepository) ListPresentByEventID(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	query := `
		SELECT id, student_id, event_id, is_present, marked_at
		FROM attendances
		WHERE event_id = $1 AND is_present = TRUE
		ORDER BY marked_at ASC
	`
	return r.queryAttendances(ctx, query, eventID)
}

func (r *attendanceRepository) ListPresentByStudentID(ctx context.Context, studentID string) ([]*domain.Attendance, error) {
	query := `
		SELECT id, student_id, event_id, is_present, marked_at
		FROM attendances
		WHERE student_id = $1 AND is_present = TRUE
		ORDER BY marked_at DESC
	`
	return r.queryAttendances(ctx, query, studentID)
}

func (r *attendanceRepository) List(ctx context.Context) ([]*domain.Attendance, error) {
	query := `
		SELECT id, student_id, event_id, is_present, marked_at
		FROM attendances
		ORDER BY marked_at DESC
	`
	return r.queryAttendances(ctx, query)
}

func (r *attendanceRepository) CountPresentByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendances WHERE event_id = $1 AND is_present = TRUE`,
		eventID,
	).Scan(&count)
	return count, err
}

func (r *attendanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM attendances`).Scan(&count)
	return count, err
}

func (r *attendanceRepository) queryAttendances(ctx context.Context, query string, args ...any) ([]*domain.Attendance, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	atts := make([]*domain.Attendance, 0)
	for rows.Next() {
		att := &domain.Attendance{}
		if err := rows.Scan(&att.ID, &att.StudentID, &att.EventID, &att.IsPresent, &att.MarkedAt); err != nil {
			return nil, err
		}
		atts = append(atts, att)
	}
	return atts, rows.Err()
}
