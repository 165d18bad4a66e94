package ports

import (
	"context"

	"github.com/Gunvolt24/dayplan/internal/domain"
)

// Geocoder — разрешение названий мест в координаты.
type Geocoder interface {
	// ResolveLocation — координаты первого результата поиска по названию.
	ResolveLocation(ctx context.Context, name string) (domain.LatLng, error)

	// Suggest — подсказки автодополнения по частичному запросу.
	Suggest(ctx context.Context, query string) ([]domain.LocationSuggestion, error)
}
