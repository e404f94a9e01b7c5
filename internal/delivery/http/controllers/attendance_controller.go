package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// AttendanceRequest is the request body for POST /attendances.
type AttendanceRequest struct {
	StudentID string `json:"student_id"`
	EventID   string `json:"event_id"`
	IsPresent bool   `json:"is_present"`
}

// Validate implements Validator.
func (a AttendanceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.StudentID) == "" {
		errs = append(errs, "student_id is required")
	}
	if strings.TrimSpace(a.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	return errs
}

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService) *AttendanceController {
	return &AttendanceController{
		Logger:  logger,
		Service: svc,
	}
}

// Mark godoc
// @Summary Mark attendance for a student at an event
// @Description Records presence or absence. Marking again for the same pair updates the existing record, so attendance is always revisable. Prior registration is not required; walk-ins are accepted. Marking present requires an active event.
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AttendanceRequest true "Attendance data"
// @Success 200 {object} helpers.APIResponse "data contains the attendance record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (student or event)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event inactive)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendances [post]
func (c *AttendanceController) Mark(w http.ResponseWriter, r *http.Request) {
	var req AttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	att, err := c.Service.MarkAttendance(r.Context(), req.StudentID, req.EventID, req.IsPresent)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, att)
}

// Get godoc
// @Summary Get an attendance record for a student and event
// @Tags attendances
// @Produce json
// @Param studentID path string true "Student ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the attendance record"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendances/student/{studentID}/event/{eventID} [get]
func (c *AttendanceController) Get(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathValue(w, r, "studentID")
	if !ok {
		return
	}
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	att, err := c.Service.GetAttendance(r.Context(), studentID, eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, att)
}

// ListByEvent godoc
// @Summary List attendance records for an event
// @Description All attendance records for the event. Pass ?present=true to return only students marked present.
// @Tags attendances
// @Produce json
// @Param eventID path string true "Event ID"
// @Param present query bool false "Only present records"
// @Success 200 {object} helpers.APIResponse "data is an array of attendance records"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendances [get]
func (c *AttendanceController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	var (
		atts []*domain.Attendance
		err  error
	)
	if r.URL.Query().Get("present") == "true" {
		atts, err = c.Service.ListPresentByEvent(r.Context(), eventID)
	} else {
		atts, err = c.Service.ListByEvent(r.Context(), eventID)
	}
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if atts == nil {
		atts = []*domain.Attendance{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, atts)
}

// ListByStudent godoc
// @Summary List attendance records of a student
// @Tags attendances
// @Produce json
// @Param studentID path string true "Student ID"
// @Param present query bool false "Only present records"
// @Success 200 {object} helpers.APIResponse "data is an array of attendance records"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/{studentID}/attendances [get]
func (c *AttendanceController) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathValue(w, r, "studentID")
	if !ok {
		return
	}
	var (
		atts []*domain.Attendance
		err  error
	)
	if r.URL.Query().Get("present") == "true" {
		atts, err = c.Service.ListPresentByStudent(r.Context(), studentID)
	} else {
		atts, err = c.Service.ListByStudent(r.Context(), studentID)
	}
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if atts == nil {
		atts = []*domain.Attendance{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, atts)
}

// CountPresent godoc
// @Summary Count students marked present at an event
// @Tags attendances
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the count"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendances/count [get]
func (c *AttendanceController) CountPresent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	count, err := c.Service.CountPresentByEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"present": count})
}
