package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// CollegeRequest is the request body for POST /colleges and PUT /colleges/{collegeID}.
type CollegeRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Validate implements Validator.
func (c CollegeRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, "location is required")
	}
	return errs
}

type CollegeController struct {
	Logger  *slog.Logger
	Service domain.CollegeService
}

func NewCollegeController(logger *slog.Logger, svc domain.CollegeService) *CollegeController {
	return &CollegeController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a college
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CollegeRequest true "College data"
// @Success 201 {object} helpers.APIResponse "data contains the created college"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (name in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /colleges [post]
func (c *CollegeController) Create(w http.ResponseWriter, r *http.Request) {
	var req CollegeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	college := &domain.College{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := c.Service.CreateCollege(r.Context(), college); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, college)
}

// Get godoc
// @Summary Get a college by ID
// @Tags colleges
// @Produce json
// @Param collegeID path string true "College ID"
// @Success 200 {object} helpers.APIResponse "data contains the college"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /colleges/{collegeID} [get]
func (c *CollegeController) Get(w http.ResponseWriter, r *http.Request) {
	collegeID, ok := pathValue(w, r, "collegeID")
	if !ok {
		return
	}
	college, err := c.Service.GetCollege(r.Context(), collegeID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, college)
}

// GetByName godoc
// @Summary Get a college by name
// @Tags colleges
// @Produce json
// @Param name path string true "College name"
// @Success 200 {object} helpers.APIResponse "data contains the college"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /colleges/by-name/{name} [get]
func (c *CollegeController) GetByName(w http.ResponseWriter, r *http.Request) {
	name, ok := pathValue(w, r, "name")
	if !ok {
		return
	}
	college, err := c.Service.GetCollegeByName(r.Context(), name)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, college)
}

// List godoc
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of colleges"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /colleges [get]
func (c *CollegeController) List(w http.ResponseWriter, r *http.Request) {
	colleges, err := c.Service.ListColleges(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if colleges == nil {
		colleges = []*domain.College{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, colleges)
}

// Update godoc
// @Summary Update a college
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param collegeID path string true "College ID"
// @Param body body CollegeRequest true "College data"
// @Success 200 {object} helpers.APIResponse "data contains the updated college"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /colleges/{collegeID} [put]
func (c *CollegeController) Update(w http.ResponseWriter, r *http.Request) {
	collegeID, ok := pathValue(w, r, "collegeID")
	if !ok {
		return
	}
	var req CollegeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	college := &domain.College{
		ID:          collegeID,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := c.Service.UpdateCollege(r.Context(), college); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, college)
}

// Delete godoc
// @Summary Delete a college
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param collegeID path string true "College ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /colleges/{collegeID} [delete]
func (c *CollegeController) Delete(w http.ResponseWriter, r *http.Request) {
	collegeID, ok := pathValue(w, r, "collegeID")
	if !ok {
		return
	}
	if err := c.Service.DeleteCollege(r.Context(), collegeID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
