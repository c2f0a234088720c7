package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/worktime-backend-go/internal/config"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/worktime-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/worktime-backend-go/internal/repository/postgresql"
	holidayService "github.com/cmlabs-hris/worktime-backend-go/internal/service/holiday"
	leaveService "github.com/cmlabs-hris/worktime-backend-go/internal/service/leave"
	overtimeService "github.com/cmlabs-hris/worktime-backend-go/internal/service/overtime"
	scheduleService "github.com/cmlabs-hris/worktime-backend-go/internal/service/schedule"
	sessionService "github.com/cmlabs-hris/worktime-backend-go/internal/service/session"
	settingsService "github.com/cmlabs-hris/worktime-backend-go/internal/service/settings"
	specialdayService "github.com/cmlabs-hris/worktime-backend-go/internal/service/specialday"
	summaryService "github.com/cmlabs-hris/worktime-backend-go/internal/service/summary"
	"github.com/go-chi/httplog/v3"
)

const (
	appName    = "worktime"
	appVersion = "v1.0.0"

	// employees aggregated concurrently by one monthly summary request
	monthlyWorkers = 8
)

type repositories struct {
	employees   employee.EmployeeRepository
	schedules   schedule.EmployeeScheduleRepository
	rules       overtime.OvertimeRuleRepository
	holidays    holiday.HolidayRepository
	specialDays specialday.SpecialDayTypeRepository
	settings    settings.SettingsRepository
	sessions    session.SessionRepository
	leaves      leave.LeaveRepository
	summaries   summary.DailySummaryRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStorage, err := newRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStorage()

	loc := cfg.App.Location
	settingsSvc := settingsService.NewSettingsService(repos.settings, cfg.Defaults)
	resolver := scheduleService.NewResolver(repos.schedules, cfg.Defaults)
	classifier := holidayService.NewClassifier(repos.holidays)
	evaluator := overtimeService.NewEvaluator(repos.rules, repos.sessions, settingsSvc, cfg.Defaults)
	specialDaySvc := specialdayService.NewSpecialDayService(repos.specialDays, repos.employees)
	dailySvc := summaryService.NewDailyService(
		repos.summaries,
		repos.sessions,
		repos.employees,
		repos.leaves,
		repos.specialDays,
		resolver,
		classifier,
		specialDaySvc,
		settingsSvc,
		loc,
	)
	sessionSvc := sessionService.NewSessionService(
		repos.sessions,
		repos.employees,
		resolver,
		classifier,
		evaluator,
		dailySvc,
		loc,
	)
	monthlySvc := summaryService.NewMonthlyService(
		repos.employees,
		repos.summaries,
		repos.leaves,
		repos.specialDays,
		resolver,
		classifier,
		settingsSvc,
		monthlyWorkers,
	)
	sweepSvc := summaryService.NewSweepService(repos.sessions, repos.summaries, sessionSvc, dailySvc)
	leaveSvc := leaveService.NewLeaveService(repos.leaves, repos.employees, dailySvc)

	scheduler := cron.NewScheduler()
	cron.NewWorktimeJobs(sweepSvc, cfg.Sweep.Interval, cfg.Sweep.LookbackDays, loc).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		appHTTP.Handlers{
			Session:       appHTTP.NewSessionHandler(sessionSvc),
			DailySummary:  appHTTP.NewDailySummaryHandler(dailySvc),
			Company:       appHTTP.NewCompanyHandler(monthlySvc, specialDaySvc, settingsSvc),
			Leave:         appHTTP.NewLeaveHandler(leaveSvc),
			Recalculation: appHTTP.NewRecalculationHandler(sweepSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "storage", cfg.Storage.Driver, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("version", appVersion),
		slog.String("env", cfg.App.Env),
	)
}

func newRepositories(ctx context.Context, cfg *config.Config) (repositories, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		store := memory.NewStore()
		seeded := fixtures.SeedMemoryCompany(store, cfg.Defaults, []string{"Alice", "Bob"}, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
		slog.Info("Seeded in-memory company",
			"company_id", seeded.CompanyID,
			"employees", joinIDs(seeded.EmployeeIDs),
			"boss_call_id", seeded.SpecialDayTypeIDs["boss_call"],
		)
		return repositories{
			employees:   memory.NewEmployeeRepository(store),
			schedules:   memory.NewEmployeeScheduleRepository(store),
			rules:       memory.NewOvertimeRuleRepository(store),
			holidays:    memory.NewHolidayRepository(store),
			specialDays: memory.NewSpecialDayTypeRepository(store),
			settings:    memory.NewSettingsRepository(store),
			sessions:    memory.NewSessionRepository(store),
			leaves:      memory.NewLeaveRepository(store),
			summaries:   memory.NewDailySummaryRepository(store),
		}, func() {}, nil
	}

	dsn := cfg.DatabaseURL()
	if cfg.Storage.MigrateOnStart {
		if err := database.RunMigrations(dsn); err != nil {
			return repositories{}, nil, err
		}
		slog.Info("Database migrations applied")
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return repositories{}, nil, err
	}

	return repositories{
		employees:   postgresql.NewEmployeeRepository(db),
		schedules:   postgresql.NewEmployeeScheduleRepository(db),
		rules:       postgresql.NewOvertimeRuleRepository(db),
		holidays:    postgresql.NewHolidayRepository(db),
		specialDays: postgresql.NewSpecialDayTypeRepository(db),
		settings:    postgresql.NewSettingsRepository(db),
		sessions:    postgresql.NewSessionRepository(db),
		leaves:      postgresql.NewLeaveRepository(db),
		summaries:   postgresql.NewDailySummaryRepository(db),
	}, db.Close, nil
}

func joinIDs(ids map[string]string) string {
	parts := make([]string, 0, len(ids))
	for name, id := range ids {
		parts = append(parts, name+"="+id)
	}
	return strings.Join(parts, ",")
}
