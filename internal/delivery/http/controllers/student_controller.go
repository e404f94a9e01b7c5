package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// StudentRequest is the request body for POST /students and PUT /students/{studentID}.
type StudentRequest struct {
	StudentCode string `json:"student_code"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Department  string `json:"department"`
	YearOfStudy string `json:"year_of_study"`
	CollegeID   string `json:"college_id"`
}

// Validate implements Validator. Only presence is checked here; format rules
// (code length, phone digits, year of study) live in the service layer.
func (s StudentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.StudentCode) == "" {
		errs = append(errs, "student_code is required")
	}
	if strings.TrimSpace(s.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(s.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(s.CollegeID) == "" {
		errs = append(errs, "college_id is required")
	}
	return errs
}

func (s StudentRequest) toDomain(id string) *domain.Student {
	return &domain.Student{
		ID:          id,
		StudentCode: s.StudentCode,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Department:  s.Department,
		YearOfStudy: s.YearOfStudy,
		CollegeID:   s.CollegeID,
	}
}

type StudentController struct {
	Logger  *slog.Logger
	Service domain.StudentService
}

func NewStudentController(logger *slog.Logger, svc domain.StudentService) *StudentController {
	return &StudentController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StudentRequest true "Student data"
// @Success 201 {object} helpers.APIResponse "data contains the created student"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown college)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (code or email in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students [post]
func (c *StudentController) Create(w http.ResponseWriter, r *http.Request) {
	var req StudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	student := req.toDomain("")
	if err := c.Service.CreateStudent(r.Context(), student); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, student)
}

// Get godoc
// @Summary Get a student by ID
// @Tags students
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {object} helpers.APIResponse "data contains the student"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/{studentID} [get]
func (c *StudentController) Get(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathValue(w, r, "studentID")
	if !ok {
		return
	}
	student, err := c.Service.GetStudent(r.Context(), studentID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, student)
}

// GetByCode godoc
// @Summary Get a student by student code
// @Tags students
// @Produce json
// @Param code path string true "Student code"
// @Success 200 {object} helpers.APIResponse "data contains the student"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/code/{code} [get]
func (c *StudentController) GetByCode(w http.ResponseWriter, r *http.Request) {
	code, ok := pathValue(w, r, "code")
	if !ok {
		return
	}
	student, err := c.Service.GetStudentByCode(r.Context(), code)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, student)
}

// List godoc
// @Summary List students
// @Description Paginated list of all students, ordered by creation time.
// @Tags students
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and meta"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students [get]
func (c *StudentController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	students, err := c.Service.ListStudents(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, PagedResponse{
		Items: pageSlice(students, params),
		Meta:  helpers.NewPaginationMeta(params.Page, params.PageSize, len(students)),
	})
}

// ListByCollege godoc
// @Summary List students of a college
// @Tags students
// @Produce json
// @Param collegeID path string true "College ID"
// @Success 200 {object} helpers.APIResponse "data is an array of students"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /colleges/{collegeID}/students [get]
func (c *StudentController) ListByCollege(w http.ResponseWriter, r *http.Request) {
	collegeID, ok := pathValue(w, r, "collegeID")
	if !ok {
		return
	}
	students, err := c.Service.ListStudentsByCollege(r.Context(), collegeID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if students == nil {
		students = []*domain.Student{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, students)
}

// Update godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentID path string true "Student ID"
// @Param body body StudentRequest true "Student data"
// @Success 200 {object} helpers.APIResponse "data contains the updated student"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/{studentID} [put]
func (c *StudentController) Update(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathValue(w, r, "studentID")
	if !ok {
		return
	}
	var req StudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	student := req.toDomain(studentID)
	if err := c.Service.UpdateStudent(r.Context(), student); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, student)
}

// Delete godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentID path string true "Student ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /students/{studentID} [delete]
func (c *StudentController) Delete(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathValue(w, r, "studentID")
	if !ok {
		return
	}
	if err := c.Service.DeleteStudent(r.Context(), studentID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
