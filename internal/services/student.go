package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"campusevents/internal/domain"
)

var (
	studentEmailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp        = regexp.MustCompile(`^\d{10}$`)
	yearOfStudyRegexp  = regexp.MustCompile(`^(1st|2nd|3rd|4th|5th)$`)
)

type studentService struct {
	studentRepo domain.StudentRepository
	collegeRepo domain.CollegeRepository
}

// NewStudentService creates a StudentService with the given repositories.
func NewStudentService(studentRepo domain.StudentRepository, collegeRepo domain.CollegeRepository) domain.StudentService {
	return &studentService{
		studentRepo: studentRepo,
		collegeRepo: collegeRepo,
	}
}

func (s *studentService) CreateStudent(ctx context.Context, student *domain.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}
	if _, err := s.collegeRepo.GetByID(ctx, student.CollegeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: college %s", domain.ErrNotFound, student.CollegeID)
		}
		return fmt.Errorf("get college: %w", err)
	}

	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, domain.ErrDuplicateStudentCode) || errors.Is(err, domain.ErrDuplicateEmail) {
			return err
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func (s *studentService) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return student, nil
}

func (s *studentService) GetStudentByCode(ctx context.Context, code string) (*domain.Student, error) {
	student, err := s.studentRepo.GetByStudentCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get student by code: %w", err)
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (s *studentService) ListStudentsByCollege(ctx context.Context, collegeID string) ([]*domain.Student, error) {
	students, err := s.studentRepo.ListByCollegeID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("list students by college: %w", err)
	}
	return students, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, student *domain.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) ||
			errors.Is(err, domain.ErrDuplicateStudentCode) ||
			errors.Is(err, domain.ErrDuplicateEmail) {
			return err
		}
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return err
		}
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

func validateStudent(student *domain.Student) error {
	student.StudentCode = strings.TrimSpace(student.StudentCode)
	student.Email = strings.TrimSpace(strings.ToLower(student.Email))
	if len(student.StudentCode) < 3 || len(student.StudentCode) > 20 {
		return fmt.Errorf("%w: student code must be between 3 and 20 characters", domain.ErrInvalidInput)
	}
	if len(strings.TrimSpace(student.FirstName)) < 2 {
		return fmt.Errorf("%w: first name must be at least 2 characters", domain.ErrInvalidInput)
	}
	if len(strings.TrimSpace(student.LastName)) < 2 {
		return fmt.Errorf("%w: last name must be at least 2 characters", domain.ErrInvalidInput)
	}
	if !studentEmailRegexp.MatchString(student.Email) {
		return fmt.Errorf("%w: email is not valid", domain.ErrInvalidInput)
	}
	if !phoneRegexp.MatchString(student.PhoneNumber) {
		return fmt.Errorf("%w: phone number must be 10 digits", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(student.Department) == "" {
		return fmt.Errorf("%w: department is required", domain.ErrInvalidInput)
	}
	if !yearOfStudyRegexp.MatchString(student.YearOfStudy) {
		return fmt.Errorf("%w: year of study must be 1st, 2nd, 3rd, 4th, or 5th", domain.ErrInvalidInput)
	}
	if student.CollegeID == "" {
		return fmt.Errorf("%w: college id is required", domain.ErrInvalidInput)
	}
	return nil
}
