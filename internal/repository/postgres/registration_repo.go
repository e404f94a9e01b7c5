package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns the registration ledger backed by PostgreSQL.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Register inserts a registration and increments the event counter as one
// transaction. The event row is locked with SELECT ... FOR UPDATE so that
// concurrent registrations for the same event are serialized: the capacity
// check and the increment happen as one atomic step, and the second of two
// racers for the last seat sees the committed counter and fails with
// ErrEventFull. Preconditions are checked against rows read inside the
// transaction, most specific error first.
func (r *registrationRepository) Register(ctx context.Context, studentID, eventID string) (reg *domain.Registration, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM students WHERE id = $1)`, studentID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check student: %w", err)
	}
	if !exists {
		err = domain.ErrStudentNotFound
		return nil, err
	}

	// Exclusive row lock on the event. Every Register and Cancel for this
	// event queues behind it until commit, so counter and registration rows
	// can never diverge.
	var maxCapacity, current int
	var isActive bool
	err = tx.QueryRowContext(ctx, `
		SELECT max_capacity, current_registrations, is_active
		FROM events
		WHERE id = $1
		FOR UPDATE
	`, eventID).Scan(&maxCapacity, &current, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrEventNotFound
			return nil, err
		}
		return nil, fmt.Errorf("lock event row: %w", err)
	}
	if !isActive {
		err = domain.ErrEventInactive
		return nil, err
	}

	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM registrations WHERE student_id = $1 AND event_id = $2)`,
		studentID, eventID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check duplicate registration: %w", err)
	}
	if exists {
		err = domain.ErrAlreadyRegistered
		return nil, err
	}

	if current >= maxCapacity {
		err = domain.ErrEventFull
		return nil, err
	}

	reg = domain.NewRegistration(studentID, eventID, time.Now().UTC())
	reg.ID = uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO registrations (id, student_id, event_id, is_confirmed, registered_at)
		VALUES ($1, $2, $3, $4, $5)
	`, reg.ID, reg.StudentID, reg.EventID, reg.IsConfirmed, reg.RegisteredAt)
	if err != nil {
		// Unique index on (student_id, event_id) backstops the in-tx check.
		if isUniqueViolation(err) {
			err = domain.ErrAlreadyRegistered
			return nil, err
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE events
		SET current_registrations = current_registrations + 1, updated_at = NOW()
		WHERE id = $1
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("increment registration counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return reg, nil
}

// Cancel deletes the registration and decrements the event counter as one
// transaction, with the same event row lock as Register. The decrement is
// floored at zero: an already inconsistent counter must never go negative.
func (r *registrationRepository) Cancel(ctx context.Context, studentID, eventID string) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT current_registrations FROM events WHERE id = $1 FOR UPDATE`, eventID,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrEventNotFound
			return err
		}
		return fmt.Errorf("lock event row: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM registrations WHERE student_id = $1 AND event_id = $2`,
		studentID, eventID,
	)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		err = domain.ErrRegistrationNotFound
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE events
		SET current_registrations = GREATEST(current_registrations - 1, 0), updated_at = NOW()
		WHERE id = $1
	`, eventID)
	if err != nil {
		return fmt.Errorf("decrement registration counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *registrationRepository) GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	query := `
		SELECT id, student_id, event_id, is_confirmed, registered_at
		FROM registrations
		WHERE student_id = $1 AND event_id = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, studentID, eventID).
		Scan(&reg.ID, &reg.StudentID, &reg.EventID, &reg.IsConfirmed, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, student_id, event_id, is_confirmed, registered_at
		FROM registrations
		WHERE event_id = $1 AND is_confirmed = TRUE
		ORDER BY registered_at ASC
	`
	return r.queryRegistrations(ctx, query, eventID)
}

func (r *registrationRepository) ListByStudentID(ctx context.Context, studentID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, student_id, event_id, is_confirmed, registered_at
		FROM registrations
		WHERE student_id = $1
		ORDER BY registered_at DESC
	`
	return r.queryRegistrations(ctx, query, studentID)
}

func (r *registrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	query := `
		SELECT id, student_id, event_id, is_confirmed, registered_at
		FROM registrations
		ORDER BY registered_at DESC
	`
	return r.queryRegistrations(ctx, query)
}

func (r *registrationRepository) CountConfirmedByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND is_confirmed = TRUE`,
		eventID,
	).Scan(&count)
	return count, err
}

func (r *registrationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&count)
	return count, err
}

func (r *registrationRepository) queryRegistrations(ctx context.Context, query string, args ...any) ([]*domain.Registration, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.StudentID, &reg.EventID, &reg.IsConfirmed, &reg.RegisteredAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
