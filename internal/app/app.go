package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	goredis "github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/config"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/handler"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/middleware"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/notification"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/repository"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/repository/memory"
	redisstore "github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/repository/redis"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/router"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/scheduler"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service"
	"github.com/CMPUT301F25zenith0/zenith0-connect-sub000/internal/service/ports"
)

const migrationsDir = "migrations"

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	redis       *goredis.Client
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
	dispatcher  *notification.Dispatcher
	coordinator *service.ReplacementCoordinator
}

type stores struct {
	events   ports.EventRepo
	entrants ports.EntrantRepo
	inbox    ports.NotificationInbox
	entries  ports.EntryStore
	rounds   ports.RoundStore
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Waitlist",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.Storage.UsesPostgres() {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	st, err := app.initStores()
	if err != nil {
		return nil, fmt.Errorf("init stores: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initStores() (stores, error) {
	if a.cfg.Storage.Entries == config.StorageMemory {
		a.log.Warn("running on in-memory storage, data is lost on restart")
		entries := memory.NewEntryStore()
		return stores{
			events:   memory.NewEventRepo(),
			entrants: memory.NewEntrantRepo(),
			inbox:    memory.NewInbox(),
			entries:  entries,
			rounds:   entries,
		}, nil
	}

	st := stores{
		events:   repository.NewEventRepo(a.db),
		entrants: repository.NewEntrantRepo(a.db),
		inbox:    repository.NewNotificationRepo(a.db),
		entries:  repository.NewEntryRepo(a.db),
		rounds:   repository.NewRoundRepo(a.db),
	}

	if a.cfg.Storage.Entries == config.StorageRedis {
		a.redis = goredis.NewClient(&goredis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})

		rs := redisstore.New(a.redis)
		if err := rs.Ping(context.Background()); err != nil {
			return stores{}, fmt.Errorf("pinging redis: %w", err)
		}
		st.entries, st.rounds = rs, rs

		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.Int("db", a.cfg.Redis.DB),
		)
	}

	return st, nil
}

func (a *App) initServices(st stores) error {
	tg, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		st.entrants,
		a.cfg.Notification.RatePerSecond,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.dispatcher = notification.NewDispatcher(
		notification.Fanout{st.inbox, tg},
		a.cfg.Notification.Workers,
		a.cfg.Notification.QueueSize,
		a.cfg.Notification.SendTimeout,
		a.log,
	)

	clock := service.SystemClock()
	seeds := service.CryptoSeeds()

	tm := service.NewTransitionManager(st.entries, st.events, a.dispatcher, clock, a.log)
	lottery := service.NewLotteryEngine(
		st.events,
		st.entries,
		st.rounds,
		tm,
		clock,
		a.log,
		a.cfg.Lottery.MaxExtraAttempts,
	)
	a.coordinator = service.NewReplacementCoordinator(lottery, seeds, a.cfg.Lottery.ReplacementTimeout, a.log)
	tm.SetVacancyObserver(a.coordinator)

	waitlistService := service.NewWaitlistService(
		st.events,
		st.entries,
		tm,
		lottery,
		seeds,
		clock,
		a.cfg.Lottery.DrawTimeout,
		a.log,
	)
	eventService := service.NewEventService(st.events, st.entries, clock)
	entrantService := service.NewEntrantService(st.entrants, st.inbox, clock)

	a.scheduler = scheduler.New(
		waitlistService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, waitlistService, entrantService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Entries),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	// замены должны успеть отправить уведомления до закрытия очереди
	a.coordinator.Wait()

	if err := a.dispatcher.Close(shutdownCtx); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "notification queue not drained",
			logger.String("error", err.Error()),
		)
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
