package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
)

type collegeService struct {
	collegeRepo domain.CollegeRepository
}

// NewCollegeService creates a CollegeService with the given repository.
func NewCollegeService(collegeRepo domain.CollegeRepository) domain.CollegeService {
	return &collegeService{collegeRepo: collegeRepo}
}

func (s *collegeService) CreateCollege(ctx context.Context, college *domain.College) error {
	if err := validateCollege(college); err != nil {
		return err
	}

	now := time.Now().UTC()
	college.CreatedAt = now
	college.UpdatedAt = now
	if err := s.collegeRepo.Create(ctx, college); err != nil {
		if errors.Is(err, domain.ErrDuplicateCollege) {
			return err
		}
		return fmt.Errorf("create college: %w", err)
	}
	return nil
}

func (s *collegeService) GetCollege(ctx context.Context, id string) (*domain.College, error) {
	college, err := s.collegeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get college: %w", err)
	}
	return college, nil
}

func (s *collegeService) GetCollegeByName(ctx context.Context, name string) (*domain.College, error) {
	college, err := s.collegeRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get college by name: %w", err)
	}
	return college, nil
}

func (s *collegeService) ListColleges(ctx context.Context) ([]*domain.College, error) {
	colleges, err := s.collegeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}
	return colleges, nil
}

func (s *collegeService) UpdateCollege(ctx context.Context, college *domain.College) error {
	if err := validateCollege(college); err != nil {
		return err
	}
	if err := s.collegeRepo.Update(ctx, college); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateCollege) {
			return err
		}
		return fmt.Errorf("update college: %w", err)
	}
	return nil
}

func (s *collegeService) DeleteCollege(ctx context.Context, id string) error {
	if err := s.collegeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete college: %w", err)
	}
	return nil
}

func validateCollege(college *domain.College) error {
	college.Name = strings.TrimSpace(college.Name)
	if len(college.Name) < 2 || len(college.Name) > 100 {
		return fmt.Errorf("%w: college name must be between 2 and 100 characters", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(college.Location) == "" {
		return fmt.Errorf("%w: college location is required", domain.ErrInvalidInput)
	}
	return nil
}
