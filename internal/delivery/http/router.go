package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	College      *controllers.CollegeController
	Student      *controllers.StudentController
	Event        *controllers.EventController
	Registration *controllers.RegistrationController
	Attendance   *controllers.AttendanceController
	Feedback     *controllers.FeedbackController
	Report       *controllers.ReportController
}

// NewRouter initializes the HTTP router with all application routes.
// Reads are public; writes require a Bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /auth/me", auth(c.Auth.Me))

	// Colleges
	mux.HandleFunc("POST /colleges", auth(c.College.Create))
	mux.HandleFunc("GET /colleges", c.College.List)
	mux.HandleFunc("GET /colleges/by-name/{name}", c.College.GetByName)
	mux.HandleFunc("GET /colleges/{collegeID}", c.College.Get)
	mux.HandleFunc("PUT /colleges/{collegeID}", auth(c.College.Update))
	mux.HandleFunc("DELETE /colleges/{collegeID}", auth(c.College.Delete))
	mux.HandleFunc("GET /colleges/{collegeID}/students", c.Student.ListByCollege)
	mux.HandleFunc("GET /colleges/{collegeID}/events", c.Event.ListByCollege)

	// Students
	mux.HandleFunc("POST /students", auth(c.Student.Create))
	mux.HandleFunc("GET /students", c.Student.List)
	mux.HandleFunc("GET /students/code/{code}", c.Student.GetByCode)
	mux.HandleFunc("GET /students/{studentID}", c.Student.Get)
	mux.HandleFunc("PUT /students/{studentID}", auth(c.Student.Update))
	mux.HandleFunc("DELETE /students/{studentID}", auth(c.Student.Delete))
	mux.HandleFunc("GET /students/{studentID}/registrations", c.Registration.ListByStudent)
	mux.HandleFunc("GET /students/{studentID}/attendances", c.Attendance.ListByStudent)
	mux.HandleFunc("GET /students/{studentID}/feedbacks", c.Feedback.ListByStudent)

	// Events
	mux.HandleFunc("POST /events", auth(c.Event.Create))
	mux.HandleFunc("GET /events", c.Event.List)
	mux.HandleFunc("GET /events/search", c.Event.Search)
	mux.HandleFunc("GET /events/by-date", c.Event.ListByDateRange)
	mux.HandleFunc("GET /events/{eventID}", c.Event.Get)
	mux.HandleFunc("PUT /events/{eventID}", auth(c.Event.Update))
	mux.HandleFunc("DELETE /events/{eventID}", auth(c.Event.Delete))
	mux.HandleFunc("GET /events/{eventID}/registrations", c.Registration.ListByEvent)
	mux.HandleFunc("GET /events/{eventID}/attendances", c.Attendance.ListByEvent)
	mux.HandleFunc("GET /events/{eventID}/attendances/count", c.Attendance.CountPresent)
	mux.HandleFunc("GET /events/{eventID}/feedbacks", c.Feedback.ListByEvent)
	mux.HandleFunc("GET /events/{eventID}/feedbacks/average", c.Feedback.AverageRating)

	// Registrations
	mux.HandleFunc("POST /registrations", auth(c.Registration.Register))
	mux.HandleFunc("POST /registrations/cancel", auth(c.Registration.Cancel))
	mux.HandleFunc("GET /registrations", auth(c.Registration.List))
	mux.HandleFunc("GET /registrations/student/{studentID}/event/{eventID}", c.Registration.Get)

	// Attendances
	mux.HandleFunc("POST /attendances", auth(c.Attendance.Mark))
	mux.HandleFunc("GET /attendances/student/{studentID}/event/{eventID}", c.Attendance.Get)

	// Feedbacks
	mux.HandleFunc("POST /feedbacks", auth(c.Feedback.Submit))
	mux.HandleFunc("PUT /feedbacks", auth(c.Feedback.Update))
	mux.HandleFunc("GET /feedbacks/student/{studentID}/event/{eventID}", c.Feedback.Get)
	mux.HandleFunc("DELETE /feedbacks/{feedbackID}", auth(c.Feedback.Delete))

	// Reports
	mux.HandleFunc("GET /reports/popularity", c.Report.Popularity)
	mux.HandleFunc("GET /reports/attendance", c.Report.Attendance)
	mux.HandleFunc("GET /reports/attendance/{eventID}", c.Report.AttendanceByEvent)
	mux.HandleFunc("GET /reports/statistics", c.Report.Statistics)

	// Operational
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
