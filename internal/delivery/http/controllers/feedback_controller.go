package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// FeedbackRequest is the request body for POST /feedbacks and PUT /feedbacks.
type FeedbackRequest struct {
	StudentID string `json:"student_id"`
	EventID   string `json:"event_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// Validate implements Validator.
func (f FeedbackRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.StudentID) == "" {
		errs = append(errs, "student_id is required")
	}
	if strings.TrimSpace(f.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	if f.Rating < domain.MinRating || f.Rating > domain.MaxRating {
		errs = append(errs, fmt.Sprintf("rating must be between %d and %d", domain.MinRating, domain.MaxRating))
	}
	if strings.TrimSpace(f.Comment) == "" {
		errs = append(errs, "comment is required")
	}
	return errs
}

type FeedbackController struct {
	Logger  *slog.Logger
	Service domain.FeedbackService
}

func NewFeedbackController(logger *slog.Logger, svc domain.FeedbackService) *FeedbackController {
	return &FeedbackController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit feedback for an event
// @Description One feedback per student per event. Submitting twice is rejected; use the update endpoint to change an existing feedback.
// @Tags feedbacks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body FeedbackRequest true "Feedback data"
// @Success 201 {object} helpers.APIResponse "data contains the feedback"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (student or event)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (feedback already submitted)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /feedbacks [post]
func (c *FeedbackController) Submit(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	fb, err := c.Service.SubmitFeedback(r.Context(), req.StudentID, req.EventID, req.Rating, req.Comment)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, fb)
}

// Update godoc
// @Summary Update previously submitted feedback
// @Description Replaces the rating and comment of an existing feedback. Fails if no feedback was submitted for the pair.
// @Tags feedbacks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body FeedbackRequest true "Feedback data"
// @Success 200 {object} helpers.APIResponse "data contains the feedback"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no feedback for the pair)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /feedbacks [put]
func (c *FeedbackController) Update(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	fb, err := c.Service.UpdateFeedback(r.Context(), req.StudentID, req.EventID, req.Rating, req.Comment)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, fb)
}

// Get godoc
// @Summary Get feedback for a student and event
// @Tags feedbacks
// @Produce json
// @Param studentID path string true "Student ID"
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the feedback"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /feedbacks/student/{studentID}/event/{eventID} [get]
func (c *FeedbackController) Get(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathValue(w, r, "studentID")
	if !ok {
		return
	}
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	fb, err := c.Service.GetFeedback(r.Context(), studentID, eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, fb)
}

// ListByEvent godoc
// @Summary List feedbacks for an event
// @Tags feedbacks
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is an array of feedbacks"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/feedbacks [get]
func (c *FeedbackController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	fbs, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if fbs == nil {
		fbs = []*domain.Feedback{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, fbs)
}

// ListByStudent godoc
// @Summary List feedbacks of a student
// @Tags feedbacks
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {object} helpers.APIResponse "data is an array of feedbacks"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/{studentID}/feedbacks [get]
func (c *FeedbackController) ListByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathValue(w, r, "studentID")
	if !ok {
		return
	}
	fbs, err := c.Service.ListByStudent(r.Context(), studentID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if fbs == nil {
		fbs = []*domain.Feedback{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, fbs)
}

// AverageRating godoc
// @Summary Average feedback rating for an event
// @Description Mean of all ratings submitted for the event, 0 when none exist.
// @Tags feedbacks
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the average rating"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/feedbacks/average [get]
func (c *FeedbackController) AverageRating(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	avg, err := c.Service.AverageRatingByEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]float64{"average_rating": avg})
}

// Delete godoc
// @Summary Delete a feedback by ID
// @Tags feedbacks
// @Produce json
// @Security BearerAuth
// @Param feedbackID path string true "Feedback ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /feedbacks/{feedbackID} [delete]
func (c *FeedbackController) Delete(w http.ResponseWriter, r *http.Request) {
	feedbackID, ok := pathValue(w, r, "feedbackID")
	if !ok {
		return
	}
	if err := c.Service.DeleteFeedback(r.Context(), feedbackID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
