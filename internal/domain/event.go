package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for event operations.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventInactive = errors.New("event is not active")
	ErrEventFull     = errors.New("event is at full capacity")
)

// Event represents a campus event hosted by a college.
// MaxCapacity is the hard ceiling on registrations. CurrentRegistrations is a
// denormalized counter maintained exclusively by the registration ledger; it
// must always equal the number of live registration rows for the event.
// swagger:model Event
type Event struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	EventDate            time.Time `json:"event_date"`
	Location             string    `json:"location"`
	MaxCapacity          int       `json:"max_capacity"`
	CurrentRegistrations int       `json:"current_registrations"`
	EventType            string    `json:"event_type"`
	IsActive             bool      `json:"is_active"`
	CollegeID            string    `json:"college_id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewEvent returns a new active Event with zero registrations. ID is set by the repository on create.
func NewEvent(name, description string, eventDate time.Time, location string, maxCapacity int, eventType, collegeID string, createdAt time.Time) *Event {
	return &Event{
		Name:        name,
		Description: description,
		EventDate:   eventDate,
		Location:    location,
		MaxCapacity: maxCapacity,
		EventType:   eventType,
		IsActive:    true,
		CollegeID:   collegeID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

// HasCapacity reports whether the event can accept another registration.
func (e *Event) HasCapacity() bool {
	return e.CurrentRegistrations < e.MaxCapacity
}

// EventRepository defines the interface for event storage.
// CurrentRegistrations is never written through this interface; only the
// registration ledger mutates it.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListActive(ctx context.Context) ([]*Event, error)
	// ListAvailable returns active events that still have free capacity.
	ListAvailable(ctx context.Context) ([]*Event, error)
	ListByCollegeID(ctx context.Context, collegeID string) ([]*Event, error)
	ListByType(ctx context.Context, eventType string) ([]*Event, error)
	Search(ctx context.Context, term string) ([]*Event, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event management.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListActiveEvents(ctx context.Context) ([]*Event, error)
	ListAvailableEvents(ctx context.Context) ([]*Event, error)
	ListEventsByCollege(ctx context.Context, collegeID string) ([]*Event, error)
	ListEventsByType(ctx context.Context, eventType string) ([]*Event, error)
	SearchEvents(ctx context.Context, term string) ([]*Event, error)
	ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*Event, error)
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id string) error
}
