package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"

	"github.com/talentindo/hris-backend-go/internal/config"
	appHTTP "github.com/talentindo/hris-backend-go/internal/handler/http"
	"github.com/talentindo/hris-backend-go/internal/pkg/cron"
	"github.com/talentindo/hris-backend-go/internal/pkg/database"
	"github.com/talentindo/hris-backend-go/internal/pkg/jwt"
	"github.com/talentindo/hris-backend-go/internal/repository/postgresql"
	attendanceService "github.com/talentindo/hris-backend-go/internal/service/attendance"
	authService "github.com/talentindo/hris-backend-go/internal/service/auth"
	dashboardService "github.com/talentindo/hris-backend-go/internal/service/dashboard"
	employeeService "github.com/talentindo/hris-backend-go/internal/service/employee"
	leaveService "github.com/talentindo/hris-backend-go/internal/service/leave"
	notificationService "github.com/talentindo/hris-backend-go/internal/service/notification"
	performanceService "github.com/talentindo/hris-backend-go/internal/service/performance"
	salarySlipService "github.com/talentindo/hris-backend-go/internal/service/salaryslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "talentindo-hris"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salarySlipRepo := postgresql.NewSalarySlipRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	performanceRepo := postgresql.NewPerformanceReviewRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	notificationSvc := notificationService.NewService(notificationRepo)
	authSvc := authService.NewService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewService(employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo)
	calculator := salarySlipService.NewCalculator(cfg.Salary)
	salarySlipSvc := salarySlipService.NewService(
		salarySlipRepo,
		employeeRepo,
		attendanceRepo,
		calculator,
		notificationSvc,
		logger,
	)
	leaveSvc := leaveService.NewService(leaveRequestRepo, employeeRepo, notificationSvc, logger)
	performanceSvc := performanceService.NewService(performanceRepo, employeeRepo)
	dashboardSvc := dashboardService.NewService(dashboardRepo, employeeRepo, attendanceRepo)

	router := appHTTP.NewRouter(jwtService, logger, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		SalarySlip:   appHTTP.NewSalarySlipHandler(salarySlipSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Performance:  appHTTP.NewPerformanceHandler(performanceSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	})

	if cfg.App.AutoGenerateSlips {
		scheduler := cron.NewScheduler()
		cron.NewSalaryJobs(salarySlipSvc).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Server starting", slog.String("addr", port))
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
	}
}
