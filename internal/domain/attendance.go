package domain

import (
	"context"
	"time"
)

// Attendance records whether a student was present at an event.
// At most one row exists per (student, event) pair: marking again updates the
// same row. Attendance does not require a prior registration; walk-ins are
// recorded the same way.
// swagger:model Attendance
type Attendance struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	EventID   string    `json:"event_id"`
	IsPresent bool      `json:"is_present"`
	MarkedAt  time.Time `json:"marked_at"`
}

// NewAttendance returns an Attendance record. ID is set by the repository on create.
func NewAttendance(studentID, eventID string, present bool, markedAt time.Time) *Attendance {
	return &Attendance{
		StudentID: studentID,
		EventID:   eventID,
		IsPresent: present,
		MarkedAt:  markedAt,
	}
}

// AttendanceRepository defines storage operations for attendance records.
// Upsert inserts the record or, if one exists for the pair, updates its
// presence flag and timestamp in a single atomic statement.
type AttendanceRepository interface {
	Upsert(ctx context.Context, att *Attendance) error
	GetByStudentAndEvent(ctx context.Context, studentID, eventID string) (*Attendance, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Attendance, error)
	ListByStudentID(ctx context.Context, studentID string) ([]*Attendance, error)
	ListPresentByEventID(ctx context.Context, eventID string) ([]*Attendance, error)
	ListPresentByStudentID(ctx context.Context, studentID string) ([]*Attendance, error)
	List(ctx context.Context) ([]*Attendance, error)
	CountPresentByEventID(ctx context.Context, eventID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// AttendanceService defines the attendance marking operations.
// Marking is always revisable: present and absent may be set in any order, any
// number of times, without creating duplicate rows.
type AttendanceService interface {
	MarkAttendance(ctx context.Context, studentID, eventID string, present bool) (*Attendance, error)
	GetAttendance(ctx context.Context, studentID, eventID string) (*Attendance, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Attendance, error)
	ListByStudent(ctx context.Context, studentID string) ([]*Attendance, error)
	ListPresentByEvent(ctx context.Context, eventID string) ([]*Attendance, error)
	ListPresentByStudent(ctx context.Context, studentID string) ([]*Attendance, error)
	ListAll(ctx context.Context) ([]*Attendance, error)
	CountPresentByEvent(ctx context.Context, eventID string) (int64, error)
}
