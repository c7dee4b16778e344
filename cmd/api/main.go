package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncl-services/ncl-backend-go/internal/config"
	"github.com/ncl-services/ncl-backend-go/internal/domain/attendance"
	"github.com/ncl-services/ncl-backend-go/internal/domain/session"
	"github.com/ncl-services/ncl-backend-go/internal/fixtures"
	appHTTP "github.com/ncl-services/ncl-backend-go/internal/handler/http"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/cron"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/database"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/jwt"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/sse"
	"github.com/ncl-services/ncl-backend-go/internal/repository/memory"
	"github.com/ncl-services/ncl-backend-go/internal/repository/postgresql"
	redisRepo "github.com/ncl-services/ncl-backend-go/internal/repository/redis"
	attendanceService "github.com/ncl-services/ncl-backend-go/internal/service/attendance"
	serviceAuth "github.com/ncl-services/ncl-backend-go/internal/service/auth"
	notificationService "github.com/ncl-services/ncl-backend-go/internal/service/notification"
	scheduleService "github.com/ncl-services/ncl-backend-go/internal/service/schedule"
)

const version = "v1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("app", "ncl-timekeeping")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := cfg.Location()

	seed, err := fixtures.Load(cfg.Timekeeping.FixturesPath, loc)
	if err != nil {
		return fmt.Errorf("error loading fixtures: %w", err)
	}
	slog.Info("Fixtures loaded",
		"jobs", len(seed.Jobs),
		"temp_cards", len(seed.TempCards),
		"staff", len(seed.Credentials),
		"shifts", len(seed.Shifts),
	)

	// Session store
	var store session.Store
	switch cfg.Session.Driver {
	case config.SessionDriverRedis:
		client, err := database.NewRedisClient(ctx, database.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("error connecting to redis: %w", err)
		}
		defer client.Close()
		store = redisRepo.NewSessionStore(client, cfg.Session.KeyPrefix)
	default:
		store = memory.NewSessionStore()
	}

	// Time record ledger
	var ledger attendance.Ledger
	switch cfg.Ledger.Driver {
	case config.LedgerDriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{MaxConns: cfg.Database.MaxConns})
		if err != nil {
			return fmt.Errorf("error connecting to database: %w", err)
		}
		defer db.Close()
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			return fmt.Errorf("error preparing schema: %w", err)
		}
		ledger = postgresql.NewLedgerRepository(db)
	default:
		ledger = memory.NewLedger()
	}

	catalog := memory.NewCatalog(seed.Jobs, seed.Checklists)
	cards := memory.NewCardRegistry(seed.TempCards)
	credentialRepo := memory.NewCredentialRepository(seed.Credentials)
	shiftRepo := memory.NewShiftRepository(seed.Shifts, seed.PastShifts)

	hub := sse.NewHub()
	defer hub.Close()
	notifier := notificationService.NewNotificationService(hub, notificationService.Config{})
	defer notifier.Stop()

	tracker, err := attendanceService.NewTrackerService(ctx, store, ledger, catalog, cards, notifier,
		attendanceService.WithLocation(loc),
	)
	if err != nil {
		return fmt.Errorf("error restoring attendance state: %w", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(credentialRepo, JWTService, store)
	scheduleSvc := scheduleService.NewScheduleService(shiftRepo)

	scheduler := cron.NewScheduler()
	if err := cron.NewClockJobs(notifier, loc).RegisterJobs(scheduler, cfg.Timekeeping.ClockInterval); err != nil {
		return fmt.Errorf("error registering clock job: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Env:         cfg.App.Env,
		Version:     version,
		FrontendURL: cfg.App.FrontendURL,
		LogLevel:    cfg.SlogLevel(),
	}, JWTService, hub, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authService),
		Job:          appHTTP.NewJobHandler(catalog),
		Timekeeping:  appHTTP.NewTimekeepingHandler(tracker, loc),
		Schedule:     appHTTP.NewScheduleHandler(scheduleSvc, loc),
		Notification: appHTTP.NewNotificationHandler(notifier, JWTService),
	})

	// Streams watch the request context, so it is cancelled on shutdown
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "session", cfg.Session.Driver, "ledger", cfg.Ledger.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	cancelBase()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
