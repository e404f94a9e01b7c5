package domain

import (
	"context"
	"errors"
	"time"
)

// Rating and comment bounds for feedback.
const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

// ErrFeedbackExists is returned when feedback was already submitted for the pair.
// Unlike attendance, a repeated submit is rejected; changing feedback requires
// the explicit update operation.
var ErrFeedbackExists = errors.New("feedback already submitted for this event")

// ErrFeedbackNotFound is returned when no feedback exists for the pair.
var ErrFeedbackNotFound = errors.New("feedback not found")

// Feedback is a student's one-time judgment of an event: a rating in [1,5]
// and a non-empty comment. At most one row exists per (student, event) pair.
// swagger:model Feedback
type Feedback struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	EventID     string    `json:"event_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewFeedback returns a Feedback record. ID is set by the repository on create.
func NewFeedback(studentID, eventID string, rating int, comment string, submittedAt time.Time) *Feedback {
	return &Feedback{
		StudentID:   studentID,
		EventID:     eventID,
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: submittedAt,
	}
}

// FeedbackRepository defines storage operations for feedback records.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *Feedback) error
	Update(ctx context.Context, fb *Feedback) error
	GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*Feedback, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Feedback, error)
	ListByStudentID(ctx context.Context, studentID string) ([]*Feedback, error)
	List(ctx context.Context) ([]*Feedback, error)
	AverageRatingByEventID(ctx context.Context, eventID string) (float64, error)
	CountByEventID(ctx context.Context, eventID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

// FeedbackService defines the feedback operations.
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, studentID, eventID string, rating int, comment string) (*Feedback, error)
	UpdateFeedback(ctx context.Context, studentID, eventID string, rating int, comment string) (*Feedback, error)
	GetFeedback(ctx context.Context, studentID, eventID string) (*Feedback, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Feedback, error)
	ListByStudent(ctx context.Context, studentID string) ([]*Feedback, error)
	ListAll(ctx context.Context) ([]*Feedback, error)
	AverageRatingByEvent(ctx context.Context, eventID string) (float64, error)
	CountByEvent(ctx context.Context, eventID string) (int64, error)
	DeleteFeedback(ctx context.Context, id string) error
}
