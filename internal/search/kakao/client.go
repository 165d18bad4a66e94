package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
	"github.com/Gunvolt24/dayplan/pkg/metrics"
)

// Проверка, что Client удовлетворяет порту SearchProvider.
var _ ports.SearchProvider = (*Client)(nil)

// DefaultBaseURL — адрес Kakao Local API по умолчанию.
const DefaultBaseURL = "https://dapi.kakao.com"

const keywordSearchPath = "/v2/local/search/keyword.json"

var (
	// ErrMissingAPIKey — клиент создан без ключа.
	ErrMissingAPIKey = errors.New("kakao: api key is empty")
	// ErrUnexpectedStatus — провайдер вернул не 200.
	ErrUnexpectedStatus = errors.New("kakao: unexpected status")
)

// Client — клиент поиска мест Kakao Local (поиск по ключевому слову).
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	log        ports.Logger
}

// NewClient — конструктор. Пустой baseURL заменяется на DefaultBaseURL.
func NewClient(apiKey, baseURL string, timeout time.Duration, log ports.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    baseURL,
		log:        log,
	}, nil
}

// document — элемент ответа keyword-поиска Kakao.
// Числовые поля приходят строками.
type document struct {
	PlaceName       string `json:"place_name"`
	RoadAddressName string `json:"road_address_name"`
	AddressName     string `json:"address_name"`
	Distance        string `json:"distance"`
	PlaceURL        string `json:"place_url"`
	X               string `json:"x"` // долгота
	Y               string `json:"y"` // широта
}

type keywordResponse struct {
	Documents []document `json:"documents"`
}

// SearchBatch — поиск мест для каждой категории пакета вокруг origin.
// Ошибка любой категории проваливает весь пакет: вызывающая сторона
// решает, пропустить пакет или прервать агрегацию.
func (c *Client) SearchBatch(ctx context.Context, categories []string, origin domain.LatLng, radiusMeters, perCategoryLimit int) (map[string][]domain.Place, error) {
	out := make(map[string][]domain.Place, len(categories))
	for _, category := range categories {
		docs, err := c.searchKeyword(ctx, category, &origin, radiusMeters, perCategoryLimit)
		if err != nil {
			return nil, fmt.Errorf("search category %q: %w", category, err)
		}
		out[category] = toPlaces(docs, category, origin)
	}
	return out, nil
}

// searchKeyword — один GET к keyword-поиску. origin == nil означает
// поиск без привязки к точке (геокодирование по названию).
func (c *Client) searchKeyword(ctx context.Context, query string, origin *domain.LatLng, radiusMeters, size int) ([]document, error) {
	params := url.Values{}
	params.Set("query", query)
	if origin != nil {
		params.Set("x", strconv.FormatFloat(origin.Lng, 'f', -1, 64))
		params.Set("y", strconv.FormatFloat(origin.Lat, 'f', -1, 64))
		params.Set("radius", strconv.Itoa(radiusMeters))
		params.Set("sort", "distance")
	}
	if size > 0 {
		params.Set("size", strconv.Itoa(size))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+keywordSearchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		c.log.Warnf(ctx, "kakao: keyword search %q returned status %d", query, resp.StatusCode)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body keywordResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}

	metrics.SearchRequests.WithLabelValues("ok").Inc()
	return body.Documents, nil
}

// toPlaces — конвертация документов Kakao в доменные места.
// Category проставляется по запрошенной категории поиска.
func toPlaces(docs []document, category string, origin domain.LatLng) []domain.Place {
	places := make([]domain.Place, 0, len(docs))
	for _, d := range docs {
		lng, errX := strconv.ParseFloat(d.X, 64)
		lat, errY := strconv.ParseFloat(d.Y, 64)
		if errX != nil || errY != nil {
			continue
		}

		dist, err := strconv.Atoi(d.Distance)
		if err != nil {
			// без поля distance считаем геодезическое расстояние сами
			dist = int(geo.Distance(
				orb.Point{origin.Lng, origin.Lat},
				orb.Point{lng, lat},
			))
		}

		addr := d.RoadAddressName
		if addr == "" {
			addr = d.AddressName
		}

		places = append(places, domain.Place{
			Name:           d.PlaceName,
			Address:        addr,
			Category:       category,
			DistanceMeters: dist,
			URL:            d.PlaceURL,
			Lat:            lat,
			Lng:            lng,
		})
	}
	return places
}
