package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"campusevents/internal/domain"
)

type feedbackRepository struct {
	DB *sql.DB
}

func NewFeedbackRepository(db *sql.DB) domain.FeedbackRepository {
	return &feedbackRepository{
		DB: db,
	}
}

// Create inserts feedback for a pair. The unique index on (student_id,
// event_id) rejects a second submission; unlike attendance there is no upsert
// here, a duplicate maps to ErrFeedbackExists.
func (r *feedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	fb.ID = uuid.New().String()
	query := `
		INSERT INTO feedbacks (id, student_id, event_id, rating, comment, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		fb.ID, fb.StudentID, fb.EventID, fb.Rating, fb.Comment, fb.SubmittedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrFeedbackExists
		}
		return err
	}
	return nil
}

func (r *feedbackRepository) Update(ctx context.Context, fb *domain.Feedback) error {
	query := `
		UPDATE feedbacks
		SET rating = $1, comment = $2, submitted_at = $3
		WHERE student_id = $4 AND event_id = $5
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		fb.Rating, fb.Comment, fb.SubmittedAt, fb.StudentID, fb.EventID,
	).Scan(&fb.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrFeedbackNotFound
		}
		return err
	}
	return nil
}

func (r *feedbackRepository) GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*domain.Feedback, error) {
	query := `
		SELECT id, student_id, event_id, rating, comment, submitted_at
		FROM feedbacks
		WHERE student_id = $1 AND event_id = $2
	`
	fb := &domain.Feedback{}
	err := r.DB.QueryRowContext(ctx, query, studentID, eventID).
		Scan(&fb.ID, &fb.StudentID, &fb.EventID, &fb.Rating, &fb.Comment, &fb.SubmittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return fb, nil
}

func (r *feedbackRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	query := `
		SELECT id, student_id, event_id, rating, comment, submitted_at
		FROM feedbacks
		WHERE event_id = $1
		ORDER BY submitted_at DESC
	`
	return r.queryFeedbacks(ctx, query, eventID)
}

func (r *feedbackRepository) ListByStudentID(ctx context.Context, studentID string) ([]*domain.Feedback, error) {
	query := `
		SELECT id, student_id, event_id, rating, comment, submitted_at
		FROM feedbacks
		WHERE student_id = $1
		ORDER BY submitted_at DESC
	`
	return r.queryFeedbacks(ctx, query, studentID)
}

func (r *feedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	query := `
		SELECT id, student_id, event_id, rating, comment, submitted_at
		FROM feedbacks
		ORDER BY submitted_at DESC
	`
	return r.queryFeedbacks(ctx, query)
}

// AverageRatingByEventID returns the mean rating over stored feedback rows,
// or 0 when the event has no feedback.
func (r *feedbackRepository) AverageRatingByEventID(ctx context.Context, eventID string) (float64, error) {
	var avg float64
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM feedbacks WHERE event_id = $1`,
		eventID,
	).Scan(&avg)
	return avg, err
}

func (r *feedbackRepository) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM feedbacks WHERE event_id = $1`,
		eventID,
	).Scan(&count)
	return count, err
}

func (r *feedbackRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedbacks`).Scan(&count)
	return count, err
}

func (r *feedbackRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func (r *feedbackRepository) queryFeedbacks(ctx context.Context, query string, args ...any) ([]*domain.Feedback, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fbs := make([]*domain.Feedback, 0)
	for rows.Next() {
		fb := &domain.Feedback{}
		if err := rows.Scan(&fb.ID, &fb.StudentID, &fb.EventID, &fb.Rating, &fb.Comment, &fb.SubmittedAt); err != nil {
			return nil, err
		}
		fbs = append(fbs, fb)
	}
	return fbs, rows.Err()
}
