package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
	"github.com/Gunvolt24/dayplan/pkg/metrics"
)

// Проверка, что Planner удовлетворяет порту PlannerService.
var _ ports.PlannerService = (*Planner)(nil)

// Planner — прикладная логика планирования прогулки (без знаний о транспорте).
type Planner struct {
	aggregator *SearchAggregator
	geocoder   ports.Geocoder
	generator  ports.PlanGenerator
	cache      ports.PlaceCache
	governor   ports.RateGovernor
	log        ports.Logger
}

// NewPlanner — DI-конструктор.
func NewPlanner(
	aggregator *SearchAggregator,
	geocoder ports.Geocoder,
	generator ports.PlanGenerator,
	cache ports.PlaceCache,
	governor ports.RateGovernor,
	log ports.Logger,
) *Planner {
	return &Planner{
		aggregator: aggregator,
		geocoder:   geocoder,
		generator:  generator,
		cache:      cache,
		governor:   governor,
		log:        log,
	}
}

// PlanOuting — полный цикл планирования:
//  1. нормализация запроса и разрешение точки старта;
//  2. сбор пула кандидатов через агрегатор;
//  3. генерация маршрута по кандидатам;
//  4. генерация рассказа по маршруту.
func (p *Planner) PlanOuting(ctx context.Context, req domain.PlanRequest) (*domain.Plan, error) {
	req = p.normalize(ctx, req)

	pool, err := p.aggregator.AcquirePlaces(ctx, req)
	if err != nil {
		if errors.Is(err, ErrNoPlacesFound) {
			metrics.PlanRequests.WithLabelValues("no_places").Inc()
		} else {
			metrics.PlanRequests.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	route, err := p.generator.GenerateRoute(ctx, req, pool.Flatten())
	if err != nil {
		metrics.PlanRequests.WithLabelValues("error").Inc()
		p.log.Errorf(ctx, "route generation failed err=%v", err)
		return nil, fmt.Errorf("generate route: %w", err)
	}

	narrative, err := p.generator.GenerateNarrative(ctx, req, route)
	if err != nil {
		metrics.PlanRequests.WithLabelValues("error").Inc()
		p.log.Errorf(ctx, "narrative generation failed err=%v", err)
		return nil, fmt.Errorf("generate narrative: %w", err)
	}

	metrics.PlanRequests.WithLabelValues("ok").Inc()
	return &domain.Plan{
		Origin:     *req.Origin,
		Categories: SelectCategories(req.Companion, req.Categories),
		Pool:       pool,
		Route:      route,
		Narrative:  narrative,
	}, nil
}

// AcquirePlaces — только конвейер сбора кандидатов, без генерации.
func (p *Planner) AcquirePlaces(ctx context.Context, req domain.PlanRequest) (domain.CandidatePool, error) {
	req = p.normalize(ctx, req)
	return p.aggregator.AcquirePlaces(ctx, req)
}

// SuggestLocations — подсказки по названию точки старта.
func (p *Planner) SuggestLocations(ctx context.Context, query string) ([]domain.LocationSuggestion, error) {
	return p.geocoder.Suggest(ctx, query)
}

// Stats — сводка состояния кэша и ограничителя.
func (p *Planner) Stats() domain.SystemStats {
	return domain.SystemStats{
		Cache: p.cache.Stats(),
		Rate:  p.governor.Status(),
	}
}

// normalize — значения по умолчанию и разрешение координат точки старта.
// Неудачное геокодирование не провал: откатываемся на точку по умолчанию.
func (p *Planner) normalize(ctx context.Context, req domain.PlanRequest) domain.PlanRequest {
	if req.Companion == "" {
		req.Companion = domain.CompanionSolo
	}
	if req.Budget == "" {
		req.Budget = "medium"
	}
	if req.StartHour <= 0 {
		req.StartHour = domain.DefaultStartHour
	}

	if req.Origin == nil {
		origin := domain.DefaultOrigin
		if req.LocationName != "" && req.LocationName != domain.DefaultOriginName {
			resolved, err := p.geocoder.ResolveLocation(ctx, req.LocationName)
			if err != nil {
				p.log.Warnf(ctx, "geocoding failed location=%q err=%v, falling back to default origin", req.LocationName, err)
			} else {
				origin = resolved
			}
		}
		req.Origin = &origin
	}
	return req
}
