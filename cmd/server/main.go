package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusevents/config"
	_ "campusevents/docs"
	"campusevents/internal/adapters/auth"
	"campusevents/internal/adapters/email"
	deliveryhttp "campusevents/internal/delivery/http"
	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/repository/postgres"
	"campusevents/internal/services"
)

// @title Campus Events API
// @version 1.0
// @description Capacity-constrained event registration, attendance, and feedback for campus events.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("connect database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	mailer, err := email.NewMailer(cfg.Mailer, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	collegeRepo := postgres.NewCollegeRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)
	userRepo := postgres.NewUserRepository(db)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	collegeService := services.NewCollegeService(collegeRepo)
	studentService := services.NewStudentService(studentRepo, collegeRepo)
	eventService := services.NewEventService(eventRepo, collegeRepo)
	registrationService := services.NewRegistrationService(registrationRepo, studentRepo, eventRepo, emailService, logger)
	attendanceService := services.NewAttendanceService(attendanceRepo, studentRepo, eventRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, studentRepo, eventRepo)
	reportService := services.NewReportService(eventRepo, registrationRepo, attendanceRepo, feedbackRepo)
	authService := services.NewAuthService(userRepo, auth.NewBcryptHasher(cfg.BcryptCost), auth.NewJWTIssuer(cfg.JWTSecret), cfg.TokenExpiry)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		College:      controllers.NewCollegeController(logger, collegeService),
		Student:      controllers.NewStudentController(logger, studentService),
		Event:        controllers.NewEventController(logger, eventService),
		Registration: controllers.NewRegistrationController(logger, registrationService),
		Attendance:   controllers.NewAttendanceController(logger, attendanceService),
		Feedback:     controllers.NewFeedbackController(logger, feedbackService),
		Report:       controllers.NewReportController(logger, reportService),
	}, auth.NewJWTVerifier(cfg.JWTSecret), logger)

	var handler http.Handler = mux
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
