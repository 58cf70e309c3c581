package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/23302610sole/clear-path-png/internal/api"
	"github.com/23302610sole/clear-path-png/internal/clients/notifier"
	"github.com/23302610sole/clear-path-png/internal/repository"
	"github.com/23302610sole/clear-path-png/internal/service"
	"github.com/23302610sole/clear-path-png/pkg/broker"
	"github.com/23302610sole/clear-path-png/pkg/config"
	"github.com/23302610sole/clear-path-png/pkg/job"
	"github.com/23302610sole/clear-path-png/pkg/logger"
	"github.com/23302610sole/clear-path-png/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	var s *service.Service

	if cfg.Configured() {
		err = postgres.UpMigrations(cfg.PostgresDSN)
		panicOnErr("up migrations", err)

		pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
		panicOnErr("connect to postgres", err)
		defer pool.Close()

		var hints service.HintRepository = repository.NoopHintRepository{}

		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
			defer rdb.Close()

			hints = repository.NewHintRepository(rdb, cfg.Session.HintTTL)
		}

		var reminders service.Notifier = notifier.LogOnly{}

		switch {
		case len(cfg.KafkaBrokers) > 0:
			producer := broker.NewProducer(l, cfg.KafkaBrokers, cfg.KafkaTopic)
			defer producer.Close()

			reminders = producer
		case cfg.NotifierURL != "":
			reminders = notifier.NewFireAndForget(notifier.NewClient(cfg.NotifierURL, cfg.NotifierAPIKey))
		}

		s = service.NewService(
			cfg,
			repository.NewAccountRepository(pool),
			repository.NewSessionRepository(pool),
			repository.NewStudentRepository(pool),
			repository.NewOfficerRepository(pool),
			repository.NewAdminRepository(pool),
			repository.NewClearanceRepository(pool),
			repository.NewDepartmentRepository(pool),
			hints,
			reminders,
		)

		jobs := job.NewService()
		jobs.RegisterJob("session_cleanup", cfg.JanitorInterval, s.CleanExpiredSessions)
		jobs.Start(ctx)
	} else {
		slog.Warn("backend credentials missing, starting unconfigured")

		s = service.NewService(cfg, nil, nil, nil, nil, nil, nil, nil,
			repository.NoopHintRepository{}, notifier.LogOnly{})
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
