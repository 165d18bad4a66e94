package ports

import (
	"context"

	"github.com/Gunvolt24/dayplan/internal/domain"
)

// PlanValidator — проверка корректности запроса планирования
// до запуска конвейера.
type PlanValidator interface {
	Validate(ctx context.Context, req *domain.PlanRequest) error
}
