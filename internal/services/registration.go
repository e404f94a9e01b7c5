package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"campusevents/internal/domain"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	studentRepo      domain.StudentRepository
	eventRepo        domain.EventRepository
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewRegistrationService creates a RegistrationService over the registration ledger.
func NewRegistrationService(
	registrationRepo domain.RegistrationRepository,
	studentRepo domain.StudentRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		studentRepo:      studentRepo,
		eventRepo:        eventRepo,
		emailService:     emailService,
		logger:           logger,
	}
}

// RegisterStudent books a seat through the ledger. All precondition checks and
// the counter increment happen inside the repository transaction; this layer
// passes business errors through untouched and wraps infrastructure failures.
func (s *registrationService) RegisterStudent(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	if studentID == "" || eventID == "" {
		return nil, fmt.Errorf("%w: student id and event id are required", domain.ErrInvalidInput)
	}

	reg, err := s.registrationRepo.Register(ctx, studentID, eventID)
	if err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("register student: %w", err)
	}

	s.sendConfirmationEmail(ctx, studentID, eventID)
	return reg, nil
}

func (s *registrationService) CancelRegistration(ctx context.Context, studentID, eventID string) error {
	if studentID == "" || eventID == "" {
		return fmt.Errorf("%w: student id and event id are required", domain.ErrInvalidInput)
	}
	if err := s.registrationRepo.Cancel(ctx, studentID, eventID); err != nil {
		if isBusinessError(err) {
			return err
		}
		return fmt.Errorf("cancel registration: %w", err)
	}
	return nil
}

func (s *registrationService) GetRegistration(ctx context.Context, studentID, eventID string) (*domain.Registration, error) {
	reg, err := s.registrationRepo.GetByStudentAndEvent(ctx, studentID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}

func (s *registrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by event: %w", err)
	}
	return regs, nil
}

func (s *registrationService) ListByStudent(ctx context.Context, studentID string) ([]*domain.Registration, error) {
	regs, err := s.registrationRepo.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by student: %w", err)
	}
	return regs, nil
}

func (s *registrationService) ListAll(ctx context.Context) ([]*domain.Registration, error) {
	regs, err := s.registrationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (s *registrationService) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	count, err := s.registrationRepo.CountConfirmedByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

// sendConfirmationEmail is best-effort: the registration is already committed,
// a mail failure must not surface as a registration failure.
func (s *registrationService) sendConfirmationEmail(ctx context.Context, studentID, eventID string) {
	if s.emailService == nil {
		return
	}
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		s.logger.WarnContext(ctx, "confirmation email skipped", "student_id", studentID, "err", err)
		return
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		s.logger.WarnContext(ctx, "confirmation email skipped", "event_id", eventID, "err", err)
		return
	}
	data := &domain.RegistrationConfirmedEmailData{
		Email:      student.Email,
		FirstName:  student.FirstName,
		EventName:  event.Name,
		EventDate:  event.EventDate.Format("Mon, 02 Jan 2006 15:04"),
		EventPlace: event.Location,
	}
	if err := s.emailService.SendRegistrationConfirmed(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "email", student.Email, "err", err)
	}
}

// isBusinessError reports whether err is one of the ledger's business-rule
// sentinels, as opposed to a transient store failure.
func isBusinessError(err error) bool {
	return errors.Is(err, domain.ErrStudentNotFound) ||
		errors.Is(err, domain.ErrEventNotFound) ||
		errors.Is(err, domain.ErrEventInactive) ||
		errors.Is(err, domain.ErrAlreadyRegistered) ||
		errors.Is(err, domain.ErrEventFull) ||
		errors.Is(err, domain.ErrRegistrationNotFound)
}
