package kakao_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/search/kakao"
	"github.com/Gunvolt24/dayplan/internal/testutil"
)

type doc map[string]string

func respond(t *testing.T, w http.ResponseWriter, docs []doc) {
	t.Helper()
	err := json.NewEncoder(w).Encode(map[string]any{"documents": docs})
	require.NoError(t, err)
}

func newClient(t *testing.T, baseURL string) *kakao.Client {
	t.Helper()
	c, err := kakao.NewClient("test-key", baseURL, time.Second, testutil.NopLogger{})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := kakao.NewClient("", "", time.Second, testutil.NopLogger{})
	require.ErrorIs(t, err, kakao.ErrMissingAPIKey)
}

func TestSearchBatch_QueryAndConversion(t *testing.T) {
	var gotAuth string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		respond(t, w, []doc{
			{
				"place_name":        "연남동 카페",
				"road_address_name": "서울 마포구 동교로 253",
				"distance":          "120",
				"place_url":         "https://place.map.kakao.com/1",
				"x":                 "126.9250",
				"y":                 "37.5600",
			},
		})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	origin := domain.LatLng{Lat: 37.5563, Lng: 126.9237}

	got, err := c.SearchBatch(context.Background(), []string{"Cafe"}, origin, 2000, 15)
	require.NoError(t, err)

	assert.Equal(t, "KakaoAK test-key", gotAuth)
	assert.Equal(t, "Cafe", gotQuery["query"][0])
	assert.Equal(t, "126.9237", gotQuery["x"][0])
	assert.Equal(t, "37.5563", gotQuery["y"][0])
	assert.Equal(t, "2000", gotQuery["radius"][0])
	assert.Equal(t, "15", gotQuery["size"][0])
	assert.Equal(t, "distance", gotQuery["sort"][0])

	require.Len(t, got["Cafe"], 1)
	p := got["Cafe"][0]
	assert.Equal(t, "연남동 카페", p.Name)
	assert.Equal(t, "서울 마포구 동교로 253", p.Address)
	assert.Equal(t, "Cafe", p.Category)
	assert.Equal(t, 120, p.DistanceMeters)
	assert.Equal(t, "https://place.map.kakao.com/1", p.URL)
	assert.InDelta(t, 37.56, p.Lat, 0.001)
	assert.InDelta(t, 126.925, p.Lng, 0.001)
}

func TestSearchBatch_DistanceFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, []doc{
			{
				"place_name":   "공원",
				"address_name": "서울 마포구",
				"distance":     "", // провайдер не вернул — считаем сами
				"x":            "126.9337",
				"y":            "37.5563",
			},
		})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	origin := domain.LatLng{Lat: 37.5563, Lng: 126.9237}

	got, err := c.SearchBatch(context.Background(), []string{"Park"}, origin, 2000, 15)
	require.NoError(t, err)
	require.Len(t, got["Park"], 1)

	// ~0.01 градуса долготы на этой широте — порядка 900 метров
	d := got["Park"][0].DistanceMeters
	assert.Greater(t, d, 500)
	assert.Less(t, d, 1500)

	// подставляется address_name, если дорожного адреса нет
	assert.Equal(t, "서울 마포구", got["Park"][0].Address)
}

func TestSearchBatch_FailsWholeBatch(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	log := &testutil.RecordingLogger{}
	c, err := kakao.NewClient("test-key", srv.URL, time.Second, log)
	require.NoError(t, err)

	_, err = c.SearchBatch(context.Background(), []string{"Cafe", "Park"}, domain.LatLng{}, 2000, 15)
	require.ErrorIs(t, err, kakao.ErrUnexpectedStatus)
	assert.Equal(t, 1, calls, "batch must fail on the first category error")
	require.NotEmpty(t, log.Messages, "non-200 response must be logged")
	assert.Contains(t, log.Messages[0], "warn")
}

func TestResolveLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "홍대입구", q.Get("query"))
		assert.Equal(t, "1", q.Get("size"))
		assert.Empty(t, q.Get("x"), "geocoding must not pin coordinates")
		respond(t, w, []doc{
			{"place_name": "홍대입구역", "x": "126.9237", "y": "37.5563"},
			{"place_name": "홍대입구 거리", "x": "126.9200", "y": "37.5550"},
		})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	got, err := c.ResolveLocation(context.Background(), "홍대입구")
	require.NoError(t, err)
	assert.InDelta(t, 37.5563, got.Lat, 1e-9)
	assert.InDelta(t, 126.9237, got.Lng, 1e-9)
}

func TestResolveLocation_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, nil)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	_, err := c.ResolveLocation(context.Background(), "없는곳")
	require.ErrorIs(t, err, kakao.ErrLocationNotFound)
}

func TestSuggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("size"))
		respond(t, w, []doc{
			{"place_name": "홍대입구역 2호선", "road_address_name": "서울 마포구 양화로 160", "x": "126.9237", "y": "37.5563"},
			{"place_name": "홍대거리", "address_name": "서울 마포구 서교동", "x": "126.9220", "y": "37.5550"},
		})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	got, err := c.Suggest(context.Background(), "홍대")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "홍대입구역 2호선", got[0].Name)
	assert.Equal(t, "서울 마포구 양화로 160", got[0].Address)
	assert.Equal(t, "서울 마포구 서교동", got[1].Address)
}
