package kakao

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
)

// Проверка, что Client удовлетворяет порту Geocoder.
var _ ports.Geocoder = (*Client)(nil)

// ErrLocationNotFound — по названию не нашлось ни одного места.
var ErrLocationNotFound = errors.New("kakao: location not found")

const suggestLimit = 5

// ResolveLocation — координаты первого результата keyword-поиска.
func (c *Client) ResolveLocation(ctx context.Context, name string) (domain.LatLng, error) {
	docs, err := c.searchKeyword(ctx, name, nil, 0, 1)
	if err != nil {
		return domain.LatLng{}, fmt.Errorf("resolve %q: %w", name, err)
	}
	if len(docs) == 0 {
		return domain.LatLng{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	lng, errX := strconv.ParseFloat(docs[0].X, 64)
	lat, errY := strconv.ParseFloat(docs[0].Y, 64)
	if errX != nil || errY != nil {
		return domain.LatLng{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	return domain.LatLng{Lat: lat, Lng: lng}, nil
}

// Suggest — подсказки автодополнения по частичному названию.
func (c *Client) Suggest(ctx context.Context, query string) ([]domain.LocationSuggestion, error) {
	docs, err := c.searchKeyword(ctx, query, nil, 0, suggestLimit)
	if err != nil {
		return nil, fmt.Errorf("suggest %q: %w", query, err)
	}

	out := make([]domain.LocationSuggestion, 0, len(docs))
	for _, d := range docs {
		lng, errX := strconv.ParseFloat(d.X, 64)
		lat, errY := strconv.ParseFloat(d.Y, 64)
		if errX != nil || errY != nil {
			continue
		}
		addr := d.RoadAddressName
		if addr == "" {
			addr = d.AddressName
		}
		out = append(out, domain.LocationSuggestion{
			Name:     d.PlaceName,
			Address:  addr,
			Location: domain.LatLng{Lat: lat, Lng: lng},
		})
	}
	return out, nil
}
