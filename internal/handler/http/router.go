package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the ambient settings of the HTTP stack.
type RouterConfig struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Handlers groups every resource handler mounted under /api/v1.
type Handlers struct {
	Auth         AuthHandler
	Department   DepartmentHandler
	Employee     EmployeeHandler
	Leave        LeaveHandler
	Recruitment  RecruitmentHandler
	Attendance   AttendanceHandler
	Work         WorkHandler
	Remuneration RemunerationHandler
	Dashboard    DashboardHandler
}

// NewRouter builds the API. ctx bounds background work of the middleware
// stack such as rate limiter cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Link", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			response.Success(w, map[string]string{"message": "pong"})
		})

		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/refresh", h.Auth.RefreshToken)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/me", h.Auth.Me)
			r.With(middleware.AdminOnly).Post("/auth/users", h.Auth.CreateUser)

			r.Route("/departments", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/", h.Department.List)
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/{id}", h.Department.Get)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).Post("/", h.Department.Create)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeView))
					r.Get("/", h.Employee.List)
					r.Get("/export", h.Employee.Export)
					r.Get("/summary", h.Employee.Summary)
					r.Get("/{id}", h.Employee.Get)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveView))
					r.Get("/", h.Leave.ListRequests)
					r.Get("/export", h.Leave.ExportRequests)
					r.Get("/{id}", h.Leave.GetRequest)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/", h.Leave.CreateRequest)
					r.Post("/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/{id}/reject", h.Leave.RejectRequest)
				})
			})

			r.Route("/job-postings", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRecruitmentView))
					r.Get("/", h.Recruitment.ListPostings)
					r.Get("/export", h.Recruitment.ExportPostings)
					r.Get("/{id}", h.Recruitment.GetPosting)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRecruitmentManage))
					r.Post("/", h.Recruitment.CreatePosting)
					r.Post("/{id}/close", h.Recruitment.ClosePosting)
				})
			})

			r.Route("/job-applications", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRecruitmentView))
					r.Get("/", h.Recruitment.ListApplications)
					r.Get("/export", h.Recruitment.ExportApplications)
					r.Get("/{id}", h.Recruitment.GetApplication)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRecruitmentManage))
					r.Post("/", h.Recruitment.CreateApplication)
					r.Post("/{id}/shortlist", h.Recruitment.MoveApplication(recruitment.ApplicationShortlisted))
					r.Post("/{id}/interview", h.Recruitment.MoveApplication(recruitment.ApplicationInterview))
					r.Post("/{id}/reject", h.Recruitment.MoveApplication(recruitment.ApplicationRejected))
					r.Post("/{id}/hire", h.Recruitment.MoveApplication(recruitment.ApplicationHired))
					r.Put("/{id}/rating", h.Recruitment.RateApplication)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceView))
					r.Get("/", h.Attendance.List)
					r.Get("/export", h.Attendance.Export)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceRecord))
					r.Post("/", h.Attendance.CheckIn)
					r.Post("/check-out", h.Attendance.CheckOut)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionWorkView))
				r.Get("/projects", h.Work.ListProjects)
				r.Get("/projects/export", h.Work.ExportProjects)
				r.Get("/tasks", h.Work.ListTasks)
				r.Get("/tasks/export", h.Work.ExportTasks)
				r.Get("/milestones", h.Work.ListMilestones)
				r.Get("/milestones/export", h.Work.ExportMilestones)
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionWorkManage))
				r.Post("/projects", h.Work.CreateProject)
				r.Post("/tasks", h.Work.CreateTask)
				r.Put("/tasks/{id}/status", h.Work.UpdateTaskStatus)
				r.Post("/milestones", h.Work.CreateMilestone)
				r.Put("/milestones/{id}/status", h.Work.UpdateMilestoneStatus)
			})

			r.Route("/remuneration", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionRemunerationView))
				r.Get("/summary", h.Remuneration.Summary)
				r.Get("/export", h.Remuneration.Export)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", h.Dashboard.GetStats)
				r.With(middleware.RequirePermission(user.PermissionLeaveView)).Get("/leave-trend", h.Dashboard.GetLeaveTrend)
			})
		})
	})
	return r
}
