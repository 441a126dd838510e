package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/wb_inventory/config"
	cachemem "github.com/Gunvolt24/wb_inventory/internal/cache/memory"
	"github.com/Gunvolt24/wb_inventory/internal/kafka"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/Gunvolt24/wb_inventory/internal/reconciler"
	"github.com/Gunvolt24/wb_inventory/internal/repo/postgres"
	rest "github.com/Gunvolt24/wb_inventory/internal/transport/http"
	"github.com/Gunvolt24/wb_inventory/internal/usecase"
	"github.com/Gunvolt24/wb_inventory/pkg/logger"
	"github.com/Gunvolt24/wb_inventory/pkg/metrics"
	"github.com/Gunvolt24/wb_inventory/pkg/telemetry"
	"github.com/Gunvolt24/wb_inventory/pkg/validate"
)

// App — собранное приложение: HTTP, метрики и фоновый цикл сверки.
type App struct {
	Logger        ports.Logger
	HTTPServer    *http.Server
	MetricsServer *http.Server           // отдельный сервер /metrics; nil — только на основном роутере
	Worker        ports.BackgroundWorker // супервизор цикла сверки
	Queue         io.Closer              // закрывается после остановки цикла

	gracefulTimeout time.Duration // ожидание завершения HTTP-серверов
	stopTimeout     time.Duration // ожидание остановки цикла
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newMetricsServer — nil, если адрес пуст или совпадает с основным HTTP.
func newMetricsServer(cfg *config.Config) *http.Server {
	addr := strings.TrimSpace(cfg.Metrics.Addr)
	if addr == "" || addr == cfg.HTTP.Addr {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	fail := func(err error) (*App, Cleanup, error) {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Миграции схемы (goose, встроенные файлы).
	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(cfg.Postgres.DSN); err != nil {
			return fail(fmt.Errorf("migrate: %w", err))
		}
		logg.Infof(ctx, "database migrations applied")
	}

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		return fail(err)
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	} else {
		telemetry.SetPropagator()
	}

	// Доменный слой.
	productCache := cachemem.NewProductLRU(cfg.Cache.Capacity, cfg.Cache.TTL)
	productRepo := postgres.NewProductRepository(pool)
	itemRepo := postgres.NewProductItemRepository(pool)
	productService := usecase.NewProductService(productRepo, productCache, logg)
	itemService := usecase.NewItemService(productService, itemRepo, logg, cfg.Items.MaxImport)

	// Прогрев кэша
	if n := cfg.Cache.WarmUpN; n > 0 {
		if err := productService.WarmUpCache(ctx, n); err != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", err)
		}
	}

	// Режим Gin, роутер и HTTP-сервер.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)
	httpHandler := rest.NewHandler(productService, itemService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, "")

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Очередь изменений и цикл сверки под супервизором.
	queue := kafka.NewQueue(&kafka.QueueConfig{
		Brokers:     cfg.Kafka.Brokers,
		Topic:       cfg.Kafka.Topic,
		GroupID:     cfg.Kafka.GroupID,
		StartOffset: cfg.Kafka.StartOffset,
	})
	loop := reconciler.New(queue, validate.NewProductDecoder(), productService, logg, reconciler.Config{
		Topic:          cfg.Kafka.Topic,
		ReceiveTimeout: cfg.Kafka.ReceiveTimeout,
		PollInterval:   cfg.Kafka.PollInterval,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	})
	supervisor := reconciler.NewSupervisor(loop, logg, reconciler.SupervisorConfig{
		MaxRestarts:  cfg.Supervisor.MaxRestarts,
		RestartDelay: cfg.Supervisor.RestartDelay,
	})

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   newMetricsServer(cfg),
		Worker:          supervisor,
		Queue:           queue,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
		stopTimeout:     cfg.Supervisor.StopTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := queue.Close(); err != nil {
			logg.Warnf(ctx, "kafka queue close error: %v", err)
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает цикл сверки и HTTP; ждёт отмены контекста или фоновой ошибки и останавливает всё.
// Возвращает фатальную ошибку фонового компонента (nil при штатной остановке).
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	a.Logger.Infof(ctx, "reconciliation loop starting")
	workerErr := a.Worker.Start(ctx)

	a.serve(ctx, a.HTTPServer, "http", errCh)
	if a.MetricsServer != nil {
		a.serve(ctx, a.MetricsServer, "metrics", errCh)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err, ok := <-workerErr:
		if ok && err != nil {
			a.Logger.Errorf(ctx, "reconciliation loop failed: %v", err)
			runErr = fmt.Errorf("reconciliation loop: %w", err)
		}
	case err := <-errCh:
		a.Logger.Errorf(ctx, "server error: %v", err)
		runErr = err
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	// HTTP перестаёт принимать запросы первым.
	a.shutdown(ctx, shutdownCtx, a.HTTPServer, "http")
	if a.MetricsServer != nil {
		a.shutdown(ctx, shutdownCtx, a.MetricsServer, "metrics")
	}

	st := a.stopTimeout
	if st <= 0 {
		st = 10 * time.Second
	}
	if err := a.Worker.Stop(st); err != nil {
		a.Logger.Warnf(ctx, "reconciliation loop stop: %v", err)
	} else {
		a.Logger.Infof(ctx, "reconciliation loop stopped")
	}

	if a.Queue != nil {
		if err := a.Queue.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka queue close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}

func (a *App) serve(ctx context.Context, srv *http.Server, name string, errCh chan<- error) {
	go func() {
		a.Logger.Infof(ctx, "%s server starting (addr=%s)", name, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}()
}

func (a *App) shutdown(ctx, shutdownCtx context.Context, srv *http.Server, name string) {
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "%s server shutdown failed: %v", name, err)
		return
	}
	a.Logger.Infof(ctx, "%s server stopped gracefully", name)
}
