package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for student operations.
var (
	ErrDuplicateStudentCode = errors.New("student code already in use")
	ErrDuplicateEmail       = errors.New("email already in use")
)

// Student represents a student enrolled at a college.
// StudentCode is the external student identifier; it and Email are unique.
// swagger:model Student
type Student struct {
	ID          string    `json:"id"`
	StudentCode string    `json:"student_code"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Department  string    `json:"department"`
	YearOfStudy string    `json:"year_of_study"`
	CollegeID   string    `json:"college_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StudentRepository defines the interface for student storage.
type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetByID(ctx context.Context, id string) (*Student, error)
	GetByStudentCode(ctx context.Context, code string) (*Student, error)
	GetByEmail(ctx context.Context, email string) (*Student, error)
	List(ctx context.Context) ([]*Student, error)
	ListByCollegeID(ctx context.Context, collegeID string) ([]*Student, error)
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id string) error
}

// StudentService defines the business logic for student management.
type StudentService interface {
	CreateStudent(ctx context.Context, student *Student) error
	GetStudent(ctx context.Context, id string) (*Student, error)
	GetStudentByCode(ctx context.Context, code string) (*Student, error)
	ListStudents(ctx context.Context) ([]*Student, error)
	ListStudentsByCollege(ctx context.Context, collegeID string) ([]*Student, error)
	UpdateStudent(ctx context.Context, student *Student) error
	DeleteStudent(ctx context.Context, id string) error
}
