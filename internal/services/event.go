package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
)

const maxEventCapacity = 100_000

type eventService struct {
	eventRepo   domain.EventRepository
	collegeRepo domain.CollegeRepository
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(eventRepo domain.EventRepository, collegeRepo domain.CollegeRepository) domain.EventService {
	return &eventService{
		eventRepo:   eventRepo,
		collegeRepo: collegeRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if _, err := s.collegeRepo.GetByID(ctx, event.CollegeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: college %s", domain.ErrNotFound, event.CollegeID)
		}
		return fmt.Errorf("get college: %w", err)
	}

	// New events always start open and empty regardless of request payload.
	event.IsActive = true
	event.CurrentRegistrations = 0
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.listEvents(s.eventRepo.List(ctx))
}

func (s *eventService) ListActiveEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.listEvents(s.eventRepo.ListActive(ctx))
}

func (s *eventService) ListAvailableEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.listEvents(s.eventRepo.ListAvailable(ctx))
}

func (s *eventService) ListEventsByCollege(ctx context.Context, collegeID string) ([]*domain.Event, error) {
	return s.listEvents(s.eventRepo.ListByCollegeID(ctx, collegeID))
}

func (s *eventService) ListEventsByType(ctx context.Context, eventType string) ([]*domain.Event, error) {
	return s.listEvents(s.eventRepo.ListByType(ctx, eventType))
}

func (s *eventService) SearchEvents(ctx context.Context, term string) ([]*domain.Event, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", domain.ErrInvalidInput)
	}
	return s.listEvents(s.eventRepo.Search(ctx, term))
}

func (s *eventService) ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Event, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date is before start date", domain.ErrInvalidInput)
	}
	return s.listEvents(s.eventRepo.ListByDateRange(ctx, start, end))
}

func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if _, err := s.eventRepo.GetByID(ctx, event.ID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return err
		}
		return fmt.Errorf("get event: %w", err)
	}
	if _, err := s.collegeRepo.GetByID(ctx, event.CollegeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: college %s", domain.ErrNotFound, event.CollegeID)
		}
		return fmt.Errorf("get college: %w", err)
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return err
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) listEvents(events []*domain.Event, err error) ([]*domain.Event, error) {
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func validateEvent(event *domain.Event) error {
	event.Name = strings.TrimSpace(event.Name)
	if len(event.Name) < 3 || len(event.Name) > 100 {
		return fmt.Errorf("%w: event name must be between 3 and 100 characters", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(event.Description) == "" {
		return fmt.Errorf("%w: event description is required", domain.ErrInvalidInput)
	}
	if event.EventDate.IsZero() {
		return fmt.Errorf("%w: event date is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(event.Location) == "" {
		return fmt.Errorf("%w: event location is required", domain.ErrInvalidInput)
	}
	if event.MaxCapacity <= 0 {
		return fmt.Errorf("%w: max capacity must be a positive integer", domain.ErrInvalidInput)
	}
	if event.MaxCapacity > maxEventCapacity {
		return fmt.Errorf("%w: max capacity cannot exceed %d", domain.ErrInvalidInput, maxEventCapacity)
	}
	if strings.TrimSpace(event.EventType) == "" {
		return fmt.Errorf("%w: event type is required", domain.ErrInvalidInput)
	}
	if event.CollegeID == "" {
		return fmt.Errorf("%w: college id is required", domain.ErrInvalidInput)
	}
	return nil
}
