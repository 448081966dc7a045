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

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/attendance-backend-go/internal/service/employee"
	holidayService "github.com/cmlabs-hris/attendance-backend-go/internal/service/holiday"
	leaveService "github.com/cmlabs-hris/attendance-backend-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/attendance-backend-go/internal/service/report"
	scheduleService "github.com/cmlabs-hris/attendance-backend-go/internal/service/schedule"
	userService "github.com/cmlabs-hris/attendance-backend-go/internal/service/user"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	runInTx := postgresql.NewTxRunner(db)
	userRepo := postgresql.NewUserRepository(db)
	refreshRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	assignmentRepo := postgresql.NewEmployeeScheduleAssignmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	absenceRepo := postgresql.NewLongAbsenceRepository(db)
	recordRepo := postgresql.NewAttendanceRecordRepository(db)
	exitRepo := postgresql.NewTemporaryExitRepository(db)
	dailyStatusRepo := postgresql.NewDailyStatusRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	loc := cfg.Location()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.JWT.SecureCookie)
	evaluator := attendanceService.NewEvaluator(loc, time.Now)

	authSvc := serviceAuth.NewAuthService(runInTx, userRepo, refreshRepo, JWTService)
	userSvc := userService.NewUserService(runInTx, userRepo, refreshRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(runInTx, workScheduleRepo, assignmentRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	leaveSvc := leaveService.NewLeaveService(runInTx, absenceRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		recordRepo,
		exitRepo,
		employeeRepo,
		workScheduleRepo,
		assignmentRepo,
		holidayRepo,
		absenceRepo,
		evaluator,
		cfg.Evaluation.MaxParallel,
	)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, attendanceSvc, evaluator.Today, cfg.Evaluation.MaxParallel)
	reportSvc := reportService.NewReportService(attendanceSvc, time.Now)

	if cfg.Admin.Email != "" {
		created, err := userSvc.EnsureAdmin(ctx, user.CreateUserRequest{
			Email:    cfg.Admin.Email,
			FullName: cfg.Admin.FullName,
			Password: cfg.Admin.Password,
		})
		if err != nil {
			return fmt.Errorf("error bootstrapping admin: %w", err)
		}
		if created {
			slog.Info("admin account created", "email", cfg.Admin.Email)
		}
	}

	router := appHTTP.NewRouter(
		logger,
		appHTTP.RouterOptions{AllowedOrigins: cfg.App.AllowedOrigins, LogLevel: cfg.SlogLevel()},
		JWTService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
			User:       appHTTP.NewUserHandler(userSvc),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Schedule:   appHTTP.NewScheduleHandler(scheduleSvc, evaluator.Today),
			Holiday:    appHTTP.NewHolidayHandler(holidaySvc, evaluator.Today),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
			Report:     appHTTP.NewReportHandler(reportSvc),
		},
	)

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		cron.NewAttendanceJobs(attendanceSvc, dailyStatusRepo, loc, time.Now).RegisterJobs(scheduler, cfg.Cron.SnapshotInterval)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		slog.Info("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
