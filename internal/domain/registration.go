package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the registration ledger.
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrAlreadyRegistered    = errors.New("student is already registered for this event")
	ErrRegistrationNotFound = errors.New("registration not found")
)

// Registration represents a student's registration for an event.
// At most one registration exists per (student, event) pair; it is created by
// Register, destroyed by Cancel, and never updated in place.
// swagger:model Registration
type Registration struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	EventID      string    `json:"event_id"`
	IsConfirmed  bool      `json:"is_confirmed"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewRegistration returns a confirmed Registration. ID is set by the repository on create.
func NewRegistration(studentID, eventID string, registeredAt time.Time) *Registration {
	return &Registration{
		StudentID:    studentID,
		EventID:      eventID,
		IsConfirmed:  true,
		RegisteredAt: registeredAt,
	}
}

// RegistrationRepository defines storage operations for registrations.
//
// Register and Cancel are the write side of the capacity ledger. Each runs as
// a single database transaction that re-reads the event row under an exclusive
// lock, validates preconditions against that fresh read, and commits the
// registration row together with the counter change. Two concurrent Register
// calls racing for the last seat are serialized on the event row: exactly one
// commits, the other observes the updated counter and fails with ErrEventFull.
//
// Register precondition order (most specific error wins): student exists,
// event exists, event is active, no registration for the pair, free capacity.
type RegistrationRepository interface {
	Register(ctx context.Context, studentID, eventID string) (*Registration, error)
	Cancel(ctx context.Context, studentID, eventID string) error
	GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
	ListByStudentID(ctx context.Context, studentID string) ([]*Registration, error)
	List(ctx context.Context) ([]*Registration, error)
	CountConfirmedByEventID(ctx context.Context, eventID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// RegistrationService defines attendee-facing registration operations.
type RegistrationService interface {
	RegisterStudent(ctx context.Context, studentID, eventID string) (*Registration, error)
	CancelRegistration(ctx context.Context, studentID, eventID string) error
	GetRegistration(ctx context.Context, studentID, eventID string) (*Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Registration, error)
	ListByStudent(ctx context.Context, studentID string) ([]*Registration, error)
	ListAll(ctx context.Context) ([]*Registration, error)
	CountByEvent(ctx context.Context, eventID string) (int64, error)
}
