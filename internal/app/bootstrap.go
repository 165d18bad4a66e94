package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/dayplan/config"
	cachemem "github.com/Gunvolt24/dayplan/internal/cache/memory"
	genollama "github.com/Gunvolt24/dayplan/internal/generate/ollama"
	"github.com/Gunvolt24/dayplan/internal/ports"
	"github.com/Gunvolt24/dayplan/internal/ratelimit"
	"github.com/Gunvolt24/dayplan/internal/search/kakao"
	rest "github.com/Gunvolt24/dayplan/internal/transport/http"
	"github.com/Gunvolt24/dayplan/internal/usecase"
	"github.com/Gunvolt24/dayplan/pkg/logger"
	"github.com/Gunvolt24/dayplan/pkg/metrics"
	"github.com/Gunvolt24/dayplan/pkg/telemetry"
	"github.com/Gunvolt24/dayplan/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // HTTP-сервер
	Cache           Cleaner       // кэш результатов для фоновой чистки
	CleanupEvery    time.Duration // период фоновой чистки кэша
	gracefulTimeout time.Duration
}

// Cleaner — компонент с периодической фоновой чисткой.
type Cleaner interface {
	Cleanup()
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

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

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
	}

	// Внешние коллабораторы: поиск мест и текстовая генерация.
	kakaoClient, err := kakao.NewClient(cfg.Kakao.APIKey, cfg.Kakao.BaseURL, cfg.Kakao.Timeout, logg)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	generator, err := genollama.NewGenerator(
		cfg.Generator.BaseURL, cfg.Generator.RouteModel, cfg.Generator.NarrativeModel, cfg.Generator.Timeout, logg)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Сборка конвейера сбора кандидатов.
	placeCache := cachemem.NewResultCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	governor := ratelimit.NewSlidingWindow(cfg.RateLimit.MaxCalls, cfg.RateLimit.Window)
	aggregator := usecase.NewSearchAggregator(kakaoClient, placeCache, governor, logg, usecase.AggregatorConfig{
		RadiusMeters:     cfg.Search.RadiusMeters,
		BatchSize:        cfg.Search.BatchSize,
		BatchPause:       cfg.Search.BatchPause,
		PerCategoryLimit: cfg.Search.PerCategoryLimit,
		PoolSize:         cfg.Search.PoolSize,
	})
	planner := usecase.NewPlanner(aggregator, kakaoClient, generator, placeCache, governor, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(planner, validate.NewPlanValidator(), logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Cache:           placeCache,
		CleanupEvery:    cfg.Cache.TTL / 2,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и фоновую чистку кэша;
// ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Фоновая чистка кэша: корректность обеспечивает чтение,
	// чистка лишь ограничивает память между обращениями.
	go a.runCacheJanitor(ctx)

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}

// runCacheJanitor — периодический вызов Cleanup до отмены контекста.
func (a *App) runCacheJanitor(ctx context.Context) {
	every := a.CleanupEvery
	if every <= 0 {
		every = 30 * time.Minute
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Cache.Cleanup()
		}
	}
}
