package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type attendanceService struct {
	attendanceRepo domain.AttendanceRepository
	studentRepo    domain.StudentRepository
	eventRepo      domain.EventRepository
}

// NewAttendanceService creates an AttendanceService with the given repositories.
func NewAttendanceService(
	attendanceRepo domain.AttendanceRepository,
	studentRepo domain.StudentRepository,
	eventRepo domain.EventRepository,
) domain.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		eventRepo:      eventRepo,
	}
}

// MarkAttendance records presence for the pair, creating the row on first
// mark and updating it afterwards. Marking present requires an active event;
// marking absent is allowed regardless, so a wrong mark on a closed event can
// still be corrected. Attendance never requires a prior registration
// (walk-ins are recorded the same way).
func (s *attendanceService) MarkAttendance(ctx context.Context, studentID, eventID string, present bool) (*domain.Attendance, error) {
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
	if present && !event.IsActive {
		return nil, domain.ErrEventInactive
	}

	att := domain.NewAttendance(studentID, eventID, present, time.Now().UTC())
	if err := s.attendanceRepo.Upsert(ctx, att); err != nil {
		return nil, fmt.Errorf("upsert attendance: %w", err)
	}
	return att, nil
}

func (s *attendanceService) GetAttendance(ctx context.Context, studentID, eventID string) (*domain.Attendance, error) {
	att, err := s.attendanceRepo.GetByStudentAndEvent(ctx, studentID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return att, nil
}

func (s *attendanceService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	atts, err := s.attendanceRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendance by event: %w", err)
	}
	return atts, nil
}

func (s *attendanceService) ListByStudent(ctx context.Context, studentID string) ([]*domain.Attendance, error) {
	atts, err := s.attendanceRepo.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list attendance by student: %w", err)
	}
	return atts, nil
}

func (s *attendanceService) ListPresentByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	atts, err := s.attendanceRepo.ListPresentByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list present attendance by event: %w", err)
	}
	return atts, nil
}

func (s *attendanceService) ListPresentByStudent(ctx context.Context, studentID string) ([]*domain.Attendance, error) {
	atts, err := s.attendanceRepo.ListPresentByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list present attendance by student: %w", err)
	}
	return atts, nil
}

func (s *attendanceService) ListAll(ctx context.Context) ([]*domain.Attendance, error) {
	atts, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return atts, nil
}

func (s *attendanceService) CountPresentByEvent(ctx context.Context, eventID string) (int64, error) {
	count, err := s.attendanceRepo.CountPresentByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("count present attendance: %w", err)
	}
	return count, nil
}
