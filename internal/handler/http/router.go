package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/talentindo/hris-backend-go/internal/handler/http/middleware"
	"github.com/talentindo/hris-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	SalarySlip   SalarySlipHandler
	Leave        LeaveHandler
	Performance  PerformanceHandler
	Notification NotificationHandler
	Dashboard    DashboardHandler
}

func NewRouter(jwtService jwt.Service, logger *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMe)

				// Manager or admin HR
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
				})

				// Admin HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminHR)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/me", h.Attendance.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Attendance.List)
				})
			})

			r.Route("/salary-slips", func(r chi.Router) {
				r.Get("/me", h.SalarySlip.ListMine)
				r.Get("/{id}/download", h.SalarySlip.Download)

				// Admin HR only: the whole generation surface and the
				// manual CRUD.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminHR)
					r.Post("/generate", h.SalarySlip.Generate)
					r.Post("/generate-bulk", h.SalarySlip.GenerateBulk)
					r.Post("/preview", h.SalarySlip.Preview)
					r.Post("/", h.SalarySlip.Create)
					r.Get("/", h.SalarySlip.List)
					r.Get("/{id}", h.SalarySlip.Get)
					r.Put("/{id}", h.SalarySlip.Update)
					r.Delete("/{id}", h.SalarySlip.Delete)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/me", h.Leave.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", h.Leave.List)
					r.Get("/{id}", h.Leave.Get)
					r.Put("/{id}/review", h.Leave.Review)
				})
			})

			r.Route("/performance-reviews", func(r chi.Router) {
				r.Get("/me", h.Performance.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Performance.Create)
					r.Get("/", h.Performance.List)
					r.Get("/{id}", h.Performance.Get)
					r.Put("/{id}", h.Performance.Update)
					r.Delete("/{id}", h.Performance.Delete)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/me", h.Dashboard.EmployeeOverview)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminHR)
					r.Get("/admin", h.Dashboard.AdminOverview)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.ListMine)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Put("/{id}/read", h.Notification.MarkAsRead)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
				r.Delete("/{id}", h.Notification.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminHR)
					r.Post("/broadcast", h.Notification.Broadcast)
				})
			})
		})
	})

	return r
}
