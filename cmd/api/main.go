package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/config"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/hr-admin-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/cache"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-admin-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hr-admin-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hr-admin-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hr-admin-go/internal/service/dashboard"
	departmentService "github.com/cmlabs-hris/hr-admin-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/hr-admin-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hr-admin-go/internal/service/leave"
	recruitmentService "github.com/cmlabs-hris/hr-admin-go/internal/service/recruitment"
	remunerationService "github.com/cmlabs-hris/hr-admin-go/internal/service/remuneration"
	workService "github.com/cmlabs-hris/hr-admin-go/internal/service/work"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
	"github.com/go-chi/httplog/v3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-admin"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
		slog.Info("database schema applied")
	}

	workDay, err := attendance.ParseWorkDay(cfg.Attendance.WorkStart, cfg.Attendance.WorkEnd, cfg.Attendance.GracePeriod, cfg.Attendance.Timezone)
	if err != nil {
		return fmt.Errorf("attendance schedule: %w", err)
	}

	views, err := view.Builtin()
	if err != nil {
		return fmt.Errorf("load views: %w", err)
	}

	var statsCache cache.Cache
	if cfg.Redis.Addr != "" {
		statsCache, err = cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: "hr-admin:",
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
	} else {
		slog.Info("REDIS_ADDR not set, dashboard cache kept in memory")
		statsCache = cache.NewMemoryCache()
	}
	defer statsCache.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	jobPostingRepo := postgresql.NewJobPostingRepository(db)
	jobApplicationRepo := postgresql.NewJobApplicationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	milestoneRepo := postgresql.NewMilestoneRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.JWT.SecureCookie)

	authSvc := serviceAuth.NewAuthService(db, userRepo, refreshTokenRepo, JWTService)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, views.MustGet(view.Employees))
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, views.MustGet(view.Leave))
	recruitmentSvc := recruitmentService.NewRecruitmentService(db, jobPostingRepo, jobApplicationRepo, departmentRepo, views.MustGet(view.Jobs), views.MustGet(view.Candidates))
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, workDay, views.MustGet(view.Attendance))
	workSvc := workService.NewWorkService(projectRepo, taskRepo, milestoneRepo, employeeRepo, workService.Views{
		Projects:   views.MustGet(view.Projects),
		Tasks:      views.MustGet(view.Tasks),
		Milestones: views.MustGet(view.Milestones),
	})
	remunerationSvc := remunerationService.NewRemunerationService(employeeRepo, views.MustGet(view.Remuneration))
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, leaveRequestRepo, statsCache, cfg.Redis.StatsTTL)

	router := appHTTP.NewRouter(ctx, appHTTP.RouterConfig{
		Logger:         logger,
		LogLevel:       cfg.LogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
		RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst: cfg.RateLimit.Burst,
	}, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authSvc),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Recruitment:  appHTTP.NewRecruitmentHandler(recruitmentSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Work:         appHTTP.NewWorkHandler(workSvc),
		Remuneration: appHTTP.NewRemunerationHandler(remunerationSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	})

	// Cron jobs
	scheduler := cron.NewScheduler(ctx)
	if cfg.Cron.Enabled {
		cron.NewDashboardJobs(dashboardSvc).RegisterJobs(scheduler, cfg.Cron.StatsRefresh)
		cron.NewAttendanceJobs(attendanceRepo, workDay).RegisterJobs(scheduler, cfg.Cron.MaintenanceInterval)
		if marker, ok := workSvc.(cron.OverdueMarker); ok {
			cron.NewWorkJobs(marker).RegisterJobs(scheduler, cfg.Cron.MaintenanceInterval)
		}
		scheduler.Start()
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
