package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/domain"
)

const eventColumns = `id, name, description, event_date, location, max_capacity, current_registrations, event_type, is_active, college_id, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	e.ID = uuid.New().String()
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Name, e.Description, e.EventDate, e.Location,
		e.MaxCapacity, e.CurrentRegistrations, e.EventType, e.IsActive,
		e.CollegeID, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Description, &e.EventDate, &e.Location,
		&e.MaxCapacity, &e.CurrentRegistrations, &e.EventType, &e.IsActive,
		&e.CollegeID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date ASC`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) ListActive(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE is_active = TRUE ORDER BY event_date ASC`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) ListAvailable(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE is_active = TRUE AND current_registrations < max_capacity
		ORDER BY event_date ASC
	`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) ListByCollegeID(ctx context.Context, collegeID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE college_id = $1 ORDER BY event_date ASC`
	return r.queryEvents(ctx, query, collegeID)
}

func (r *eventRepository) ListByType(ctx context.Context, eventType string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_type = $1 ORDER BY event_date ASC`
	return r.queryEvents(ctx, query, eventType)
}

func (r *eventRepository) Search(ctx context.Context, term string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY event_date ASC
	`
	return r.queryEvents(ctx, query, term)
}

func (r *eventRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_date >= $1 AND event_date <= $2
		ORDER BY event_date ASC
	`
	return r.queryEvents(ctx, query, start, end)
}

// Update writes all mutable event fields. current_registrations is deliberately
// excluded; only the registration ledger touches the counter.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, description = $2, event_date = $3, location = $4,
		    max_capacity = $5, event_type = $6, is_active = $7, college_id = $8,
		    updated_at = NOW()
		WHERE id = $9
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Name, e.Description, e.EventDate, e.Location,
		e.MaxCapacity, e.EventType, e.IsActive, e.CollegeID, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.EventDate, &e.Location,
			&e.MaxCapacity, &e.CurrentRegistrations, &e.EventType, &e.IsActive,
			&e.CollegeID, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
