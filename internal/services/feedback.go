package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
)

type feedbackService struct {
	feedbackRepo domain.FeedbackRepository
	studentRepo  domain.StudentRepository
	eventRepo    domain.EventRepository
}

// NewFeedbackService creates a FeedbackService with the given repositories.
func NewFeedbackService(
	feedbackRepo domain.FeedbackRepository,
	studentRepo domain.StudentRepository,
	eventRepo domain.EventRepository,
) domain.FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		studentRepo:  studentRepo,
		eventRepo:    eventRepo,
	}
}

// SubmitFeedback records a one-time judgment. A second submit for the same
// pair is rejected with ErrFeedbackExists; changing a submitted rating goes
// through UpdateFeedback instead.
func (s *feedbackService) SubmitFeedback(ctx context.Context, studentID, eventID string, rating int, comment string) (*domain.Feedback, error) {
	comment = strings.TrimSpace(comment)
	if err := validateFeedbackInput(rating, comment); err != nil {
		return nil, err
	}
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.IsActive {
		return nil, domain.ErrEventInactive
	}

	fb := domain.NewFeedback(studentID, eventID, rating, comment, time.Now().UTC())
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		if errors.Is(err, domain.ErrFeedbackExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return fb, nil
}

// UpdateFeedback revises an existing submission in place.
func (s *feedbackService) UpdateFeedback(ctx context.Context, studentID, eventID string, rating int, comment string) (*domain.Feedback, error) {
	comment = strings.TrimSpace(comment)
	if err := validateFeedbackInput(rating, comment); err != nil {
		return nil, err
	}

	fb := domain.NewFeedback(studentID, eventID, rating, comment, time.Now().UTC())
	if err := s.feedbackRepo.Update(ctx, fb); err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackService) GetFeedback(ctx context.Context, studentID, eventID string) (*domain.Feedback, error) {
	fb, err := s.feedbackRepo.GetByStudentAndEvent(ctx, studentID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	fbs, err := s.feedbackRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list feedback by event: %w", err)
	}
	return fbs, nil
}

func (s *feedbackService) ListByStudent(ctx context.Context, studentID string) ([]*domain.Feedback, error) {
	fbs, err := s.feedbackRepo.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list feedback by student: %w", err)
	}
	return fbs, nil
}

func (s *feedbackService) ListAll(ctx context.Context) ([]*domain.Feedback, error) {
	fbs, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return fbs, nil
}

func (s *feedbackService) AverageRatingByEvent(ctx context.Context, eventID string) (float64, error) {
	avg, err := s.feedbackRepo.AverageRatingByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, nil
}

func (s *feedbackService) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	count, err := s.feedbackRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return count, nil
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id string) error {
	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			return err
		}
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}

func validateFeedbackInput(rating int, comment string) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", domain.ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if comment == "" {
		return fmt.Errorf("%w: comment is required", domain.ErrInvalidInput)
	}
	if len(comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment must not exceed %d characters", domain.ErrInvalidInput, domain.MaxCommentLength)
	}
	return nil
}
