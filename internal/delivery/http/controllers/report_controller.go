package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

type ReportController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

func NewReportController(logger *slog.Logger, svc domain.ReportService) *ReportController {
	return &ReportController{
		Logger:  logger,
		Service: svc,
	}
}

// Popularity godoc
// @Summary Event popularity report
// @Description Events ranked by popularity score, most popular first. The score and all counts are derived from stored registration, attendance, and feedback records, not from the event's cached counter.
// @Tags reports
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of popularity entries"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/popularity [get]
func (c *ReportController) Popularity(w http.ResponseWriter, r *http.Request) {
	report, err := c.Service.EventPopularityReport(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if report == nil {
		report = []*domain.EventPopularity{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}

// AttendanceByEvent godoc
// @Summary Attendance report for one event
// @Description Registration and attendance figures for the event. The percentage is present over registered and is 0 when the event has no registrations.
// @Tags reports
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the attendance report"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/attendance/{eventID} [get]
func (c *ReportController) AttendanceByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	report, err := c.Service.AttendanceReportByEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}

// Attendance godoc
// @Summary Attendance report for all events
// @Tags reports
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of attendance reports"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/attendance [get]
func (c *ReportController) Attendance(w http.ResponseWriter, r *http.Request) {
	reports, err := c.Service.AllEventsAttendanceReport(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if reports == nil {
		reports = []*domain.EventAttendanceReport{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reports)
}

// Statistics godoc
// @Summary Overall statistics
// @Description Totals across all events plus the average attendance rate.
// @Tags reports
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the statistics"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/statistics [get]
func (c *ReportController) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Statistics(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}
