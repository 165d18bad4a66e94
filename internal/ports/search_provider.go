package ports

import (
	"context"

	"github.com/Gunvolt24/dayplan/internal/domain"
)

// SearchProvider — внешний поисковый сервис мест.
// Один вызов SearchBatch покрывает сразу несколько категорий,
// чтобы минимизировать число обращений.
type SearchProvider interface {
	// SearchBatch — найти места для каждой категории пакета вокруг origin.
	// Результаты отсортированы по удалению, не более perCategoryLimit на
	// категорию. Ошибка означает провал всего пакета.
	SearchBatch(ctx context.Context, categories []string, origin domain.LatLng, radiusMeters, perCategoryLimit int) (map[string][]domain.Place, error)
}
