package domain

import (
	"context"
	"time"
)

// EventPopularity is the reconciler's derived view of one event. All counts
// are computed from raw registration, attendance, and feedback rows; the
// denormalized counter on the event is reported for comparison but never used
// in the derived figures.
// swagger:model EventPopularity
type EventPopularity struct {
	EventID              string    `json:"event_id"`
	EventName            string    `json:"event_name"`
	EventDate            time.Time `json:"event_date"`
	MaxCapacity          int       `json:"max_capacity"`
	CurrentRegistrations int       `json:"current_registrations"`
	RegistrationCount    int64     `json:"registration_count"`
	AttendanceCount      int64     `json:"attendance_count"`
	AverageRating        float64   `json:"average_rating"`
	FeedbackCount        int64     `json:"feedback_count"`
	// PopularityScore = RegistrationCount + AttendanceCount + AverageRating.
	PopularityScore float64 `json:"popularity_score"`
}

// EventAttendanceReport summarizes attendance for one event.
// AttendancePercentage is present/totalRegistrations*100, 0 when there are no
// registrations.
// swagger:model EventAttendanceReport
type EventAttendanceReport struct {
	EventID              string    `json:"event_id"`
	EventName            string    `json:"event_name"`
	EventDate            time.Time `json:"event_date"`
	TotalRegistrations   int64     `json:"total_registrations"`
	PresentAttendances   int64     `json:"present_attendances"`
	AbsentCount          int64     `json:"absent_count"`
	AttendancePercentage float64   `json:"attendance_percentage"`
}

// OverallStatistics aggregates counts across all events.
// swagger:model OverallStatistics
type OverallStatistics struct {
	TotalEvents           int64   `json:"total_events"`
	TotalRegistrations    int64   `json:"total_registrations"`
	TotalAttendances      int64   `json:"total_attendances"`
	TotalFeedbacks        int64   `json:"total_feedbacks"`
	AverageAttendanceRate float64 `json:"average_attendance_rate"`
}

// ReportService derives aggregate metrics strictly from stored records.
// Sorting is stable: events with equal scores keep their input order.
type ReportService interface {
	EventPopularityReport(ctx context.Context) ([]*EventPopularity, error)
	AttendanceReportByEvent(ctx context.Context, eventID string) (*EventAttendanceReport, error)
	AllEventsAttendanceReport(ctx context.Context) ([]*EventAttendanceReport, error)
	Statistics(ctx context.Context) (*OverallStatistics, error)
}
