package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"campusevents/internal/domain"
)

type reportService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	attendanceRepo   domain.AttendanceRepository
	feedbackRepo     domain.FeedbackRepository
}

// NewReportService creates the read-side reconciler. Every figure it returns
// is recomputed from raw registration, attendance, and feedback rows; the
// denormalized counter on the event row is never an input.
func NewReportService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	attendanceRepo domain.AttendanceRepository,
	feedbackRepo domain.FeedbackRepository,
) domain.ReportService {
	return &reportService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		attendanceRepo:   attendanceRepo,
		feedbackRepo:     feedbackRepo,
	}
}

func (s *reportService) EventPopularityReport(ctx context.Context) ([]*domain.EventPopularity, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	report := make([]*domain.EventPopularity, 0, len(events))
	for _, event := range events {
		regCount, err := s.registrationRepo.CountConfirmedByEventID(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("count registrations for event %s: %w", event.ID, err)
		}
		attCount, err := s.attendanceRepo.CountPresentByEventID(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("count attendance for event %s: %w", event.ID, err)
		}
		avgRating, err := s.feedbackRepo.AverageRatingByEventID(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("average rating for event %s: %w", event.ID, err)
		}
		fbCount, err := s.feedbackRepo.CountByEventID(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("count feedback for event %s: %w", event.ID, err)
		}

		report = append(report, &domain.EventPopularity{
			EventID:              event.ID,
			EventName:            event.Name,
			EventDate:            event.EventDate,
			MaxCapacity:          event.MaxCapacity,
			CurrentRegistrations: event.CurrentRegistrations,
			RegistrationCount:    regCount,
			AttendanceCount:      attCount,
			AverageRating:        avgRating,
			FeedbackCount:        fbCount,
			PopularityScore:      float64(regCount) + float64(attCount) + avgRating,
		})
	}

	// Stable sort: events with equal scores keep their input order.
	sort.SliceStable(report, func(i, j int) bool {
		return report[i].PopularityScore > report[j].PopularityScore
	})
	return report, nil
}

func (s *reportService) AttendanceReportByEvent(ctx context.Context, eventID string) (*domain.EventAttendanceReport, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.attendanceReport(ctx, event)
}

func (s *reportService) AllEventsAttendanceReport(ctx context.Context) ([]*domain.EventAttendanceReport, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	report := make([]*domain.EventAttendanceReport, 0, len(events))
	for _, event := range events {
		r, err := s.attendanceReport(ctx, event)
		if err != nil {
			return nil, err
		}
		report = append(report, r)
	}
	sort.SliceStable(report, func(i, j int) bool {
		return report[i].AttendancePercentage > report[j].AttendancePercentage
	})
	return report, nil
}

func (s *reportService) Statistics(ctx context.Context) (*domain.OverallStatistics, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	totalRegs, err := s.registrationRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	totalAtts, err := s.attendanceRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count attendances: %w", err)
	}
	totalFbs, err := s.feedbackRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count feedbacks: %w", err)
	}

	rate := 0.0
	if totalRegs > 0 {
		rate = round2(float64(totalAtts) / float64(totalRegs) * 100)
	}
	return &domain.OverallStatistics{
		TotalEvents:           int64(len(events)),
		TotalRegistrations:    totalRegs,
		TotalAttendances:      totalAtts,
		TotalFeedbacks:        totalFbs,
		AverageAttendanceRate: rate,
	}, nil
}

func (s *reportService) attendanceReport(ctx context.Context, event *domain.Event) (*domain.EventAttendanceReport, error) {
	totalRegs, err := s.registrationRepo.CountConfirmedByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("count registrations for event %s: %w", event.ID, err)
	}
	present, err := s.attendanceRepo.CountPresentByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("count attendance for event %s: %w", event.ID, err)
	}

	// Zero registrations means 0%, not a division error.
	percentage := 0.0
	if totalRegs > 0 {
		percentage = round2(float64(present) / float64(totalRegs) * 100)
	}
	return &domain.EventAttendanceReport{
		EventID:              event.ID,
		EventName:            event.Name,
		EventDate:            event.EventDate,
		TotalRegistrations:   totalRegs,
		PresentAttendances:   present,
		AbsentCount:          totalRegs - present,
		AttendancePercentage: percentage,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
