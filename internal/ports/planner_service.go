package ports

import (
	"context"

	"github.com/Gunvolt24/dayplan/internal/domain"
)

// PlannerService — прикладной сервис планирования для транспортного слоя.
type PlannerService interface {
	// PlanOuting — полный цикл: категории → кандидаты → маршрут → рассказ.
	PlanOuting(ctx context.Context, req domain.PlanRequest) (*domain.Plan, error)

	// AcquirePlaces — только конвейер сбора кандидатов (без генерации).
	AcquirePlaces(ctx context.Context, req domain.PlanRequest) (domain.CandidatePool, error)

	// SuggestLocations — подсказки по названию точки старта.
	SuggestLocations(ctx context.Context, query string) ([]domain.LocationSuggestion, error)

	// Stats — сводка состояния кэша и ограничителя.
	Stats() domain.SystemStats
}
