package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
	"campusevents/internal/monitoring"
)

// RegistrationRequest is the request body for POST /registrations and the
// cancel endpoint.
type RegistrationRequest struct {
	StudentID string `json:"student_id"`
	EventID   string `json:"event_id"`
}

// Validate implements Validator.
func (r RegistrationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.StudentID) == "" {
		errs = append(errs, "student_id is required")
	}
	if strings.TrimSpace(r.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	return errs
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// registrationOutcome buckets a ledger error for the attempts counter.
func registrationOutcome(err error) string {
	switch {
	case err == nil:
		return "registered"
	case errors.Is(err, domain.ErrEventFull):
		return "event_full"
	case errors.Is(err, domain.ErrEventInactive):
		return "event_inactive"
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return "duplicate"
	case errors.Is(err, domain.ErrStudentNotFound), errors.Is(err, domain.ErrEventNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// trackSeats refreshes the seats gauge from the live registration count.
// Failures here never affect the response.
func (c *RegistrationController) trackSeats(r *http.Request, eventID string) {
	count, err := c.Service.CountByEvent(r.Context(), eventID)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "seat gauge refresh failed", "event_id", eventID, "err", err)
		return
	}
	monitoring.TrackSeatsTaken(eventID, int(count))
}

// Register godoc
// @Summary Register a student for an event
// @Description Takes one seat on the event if the student and event exist, the event is active, the student is not already registered, and capacity remains. The check and the counter update are atomic; racing requests for the last seat produce exactly one registration.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegistrationRequest true "Student and event IDs"
// @Success 201 {object} helpers.APIResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (student or event)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (full, inactive, or duplicate)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.RegisterStudent(r.Context(), req.StudentID, req.EventID)
	monitoring.TrackRegistration(registrationOutcome(err))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	c.trackSeats(r, req.EventID)
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// Cancel godoc
// @Summary Cancel a registration
// @Description Removes the registration and frees the seat. Cancelling a registration that does not exist is a 404 and leaves the counter untouched.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegistrationRequest true "Student and event IDs"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/cancel [post]
func (c *RegistrationController) Cancel(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.CancelRegistration(r.Context(), req.StudentID, req.EventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	monitoring.TrackRegistration("cancelled")
	c.trackSeats(r, req.EventID)
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "cancelled"})
}

// Get godoc
// @Summary Get a registration for a student and event
// @Tags registrations
// @Produce json
// @Param studentID path string true "Student ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the registration"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/student/{studentID}/event/{eventID} [get]
func (c *RegistrationController) Get(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathValue(w, r, "studentID")
	if !ok {
		return
	}
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	reg, err := c.Service.GetRegistration(r.Context(), studentID, eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// ListByEvent godoc
// @Summary List registrations for an event
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is an array of registrations"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [get]
func (c *RegistrationController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	regs, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// ListByStudent godoc
// @Summary List registrations of a student
// @Tags registrations
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {object} helpers.APIResponse "data is an array of registrations"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/{studentID}/registrations [get]
func (c *RegistrationController) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathValue(w, r, "studentID")
	if !ok {
		return
	}
	regs, err := c.Service.ListByStudent(r.Context(), studentID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// List godoc
// @Summary List all registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of registrations"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [get]
func (c *RegistrationController) List(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.ListAll(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}
