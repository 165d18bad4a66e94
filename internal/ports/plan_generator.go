package ports

import (
	"context"

	"github.com/Gunvolt24/dayplan/internal/domain"
)

// PlanGenerator — текстовый генератор маршрута и рассказа.
// Ядро не знает, как именно порождается текст (локальная модель,
// удалённый сервис и т.п.).
type PlanGenerator interface {
	// GenerateRoute — выбрать из кандидатов 4-5 мест и вернуть маршрут (JSON).
	GenerateRoute(ctx context.Context, req domain.PlanRequest, candidates []domain.Place) (string, error)

	// GenerateNarrative — составить связный рассказ по готовому маршруту.
	GenerateNarrative(ctx context.Context, req domain.PlanRequest, route string) (string, error)
}
