package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/dayplan/config"
	cachemem "github.com/Gunvolt24/dayplan/internal/cache/memory"
	"github.com/Gunvolt24/dayplan/internal/domain"
	genollama "github.com/Gunvolt24/dayplan/internal/generate/ollama"
	"github.com/Gunvolt24/dayplan/internal/ratelimit"
	"github.com/Gunvolt24/dayplan/internal/search/kakao"
	"github.com/Gunvolt24/dayplan/internal/usecase"
	"github.com/Gunvolt24/dayplan/pkg/logger"
	"github.com/Gunvolt24/dayplan/pkg/validate"
)

// CLI-приложение: один прогон конвейера планирования, результат — JSON в stdout.
func main() {
	location := flag.String("location", "", "area name to search around (default: 홍대입구)")
	companion := flag.String("companion", "solo", "who you go with: solo|couple|friends|family")
	budget := flag.String("budget", "medium", "budget level: low|medium|high")
	startHour := flag.Int("start", domain.DefaultStartHour, "start hour of the outing (0-23)")
	categories := flag.String("categories", "",
		"comma-separated place categories, e.g. "+strings.Join(domain.UserSelectableCategories, ", ")+" (optional)")
	placesOnly := flag.Bool("places-only", false, "collect candidate places, skip route/narrative generation")
	flag.Parse()

	if err := run(*location, *companion, *budget, *startHour, *categories, *placesOnly); err != nil {
		fmt.Fprintf(os.Stderr, "planner: %v\n", err)
		os.Exit(1)
	}
}

func run(location, companion, budget string, startHour int, categories string, placesOnly bool) error {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = cleanup() }()

	kakaoClient, err := kakao.NewClient(cfg.Kakao.APIKey, cfg.Kakao.BaseURL, cfg.Kakao.Timeout, logg)
	if err != nil {
		return fmt.Errorf("kakao client: %w", err)
	}
	generator, err := genollama.NewGenerator(
		cfg.Generator.BaseURL, cfg.Generator.RouteModel, cfg.Generator.NarrativeModel, cfg.Generator.Timeout, logg)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	cache := cachemem.NewResultCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	governor := ratelimit.NewSlidingWindow(cfg.RateLimit.MaxCalls, cfg.RateLimit.Window)
	aggregator := usecase.NewSearchAggregator(kakaoClient, cache, governor, logg, usecase.AggregatorConfig{
		RadiusMeters:     cfg.Search.RadiusMeters,
		BatchSize:        cfg.Search.BatchSize,
		BatchPause:       cfg.Search.BatchPause,
		PerCategoryLimit: cfg.Search.PerCategoryLimit,
		PoolSize:         cfg.Search.PoolSize,
	})
	planner := usecase.NewPlanner(aggregator, kakaoClient, generator, cache, governor, logg)

	req := domain.PlanRequest{
		LocationName: strings.TrimSpace(location),
		Companion:    companion,
		Budget:       budget,
		StartHour:    startHour,
		Categories:   splitCategories(categories),
	}
	if err := validate.NewPlanValidator().Validate(ctx, &req); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if placesOnly {
		pool, err := planner.AcquirePlaces(ctx, req)
		if err != nil {
			return err
		}
		return enc.Encode(map[string]any{"total": pool.Total(), "places": pool})
	}

	plan, err := planner.PlanOuting(ctx, req)
	if err != nil {
		return err
	}
	return enc.Encode(plan)
}

// splitCategories — разбор списка категорий из флага, пустые элементы отбрасываются.
func splitCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
