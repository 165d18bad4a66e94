package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports/mocks"
	rest "github.com/Gunvolt24/dayplan/internal/transport/http"
	"github.com/Gunvolt24/dayplan/internal/usecase"
	"github.com/Gunvolt24/dayplan/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newTestRouter(t *testing.T) (*mocks.MockPlannerService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockPlannerService(ctrl)

	h := rest.NewHandler(svc, validate.NewPlanValidator(), noopLogger{}, 0)
	return svc, rest.NewRouter(h, "", "test")
}

func TestCreatePlan_OK(t *testing.T) {
	svc, r := newTestRouter(t)

	want := &domain.Plan{
		Origin:    domain.DefaultOrigin,
		Pool:      domain.CandidatePool{"Cafe": {{Name: "카페", Category: "Cafe"}}},
		Route:     "1. 카페 - cozy",
		Narrative: "a nice day",
	}
	svc.EXPECT().PlanOuting(gomock.Any(), gomock.Any()).Return(want, nil)

	body := strings.NewReader(`{"location":"홍대입구","companion":"couple","budget":"medium","start_hour":12}`)
	req := httptest.NewRequest(http.MethodPost, "/plan", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Plan
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Route != want.Route || got.Narrative != want.Narrative {
		t.Fatalf("unexpected plan: %+v", got)
	}
}

func TestCreatePlan_InvalidBody(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreatePlan_InvalidCompanion_400(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(`{"companion":"aliens"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreatePlan_NoPlaces_404(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().PlanOuting(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrNoPlacesFound)

	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(`{"companion":"solo"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreatePlan_UpstreamFailure_502(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().PlanOuting(gomock.Any(), gomock.Any()).Return(nil, errors.New("model unavailable"))

	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(`{"companion":"solo"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("want 502, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestSearchPlaces_OK(t *testing.T) {
	svc, r := newTestRouter(t)

	pool := domain.CandidatePool{
		"Cafe": {{Name: "카페 A", Category: "Cafe"}, {Name: "카페 B", Category: "Cafe"}},
	}
	svc.EXPECT().AcquirePlaces(gomock.Any(), gomock.Any()).Return(pool, nil)

	req := httptest.NewRequest(http.MethodPost, "/places/search", strings.NewReader(`{"companion":"friends","categories":["Cafe"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Total  int                  `json:"total"`
		Places domain.CandidatePool `json:"places"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Total != 2 || len(got.Places["Cafe"]) != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestSuggestLocations_OK(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().SuggestLocations(gomock.Any(), "홍대").Return([]domain.LocationSuggestion{
		{Name: "홍대입구역", Address: "서울 마포구", Location: domain.DefaultOrigin},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/locations/suggest?q=홍대", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestSuggestLocations_Limit(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().SuggestLocations(gomock.Any(), "홍대").Return([]domain.LocationSuggestion{
		{Name: "홍대입구역"}, {Name: "홍대거리"}, {Name: "홍대놀이터"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/locations/suggest?q=홍대&limit=2", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Suggestions []domain.LocationSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.Suggestions) != 2 {
		t.Fatalf("want 2 suggestions, got %d", len(got.Suggestions))
	}
}

func TestSuggestLocations_EmptyQuery(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/locations/suggest", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestOptions_OK(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/options", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Categories []string `json:"categories"`
		Companions []string `json:"companions"`
		Budgets    []string `json:"budgets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.Categories) != len(domain.UserSelectableCategories) {
		t.Fatalf("want %d categories, got %d", len(domain.UserSelectableCategories), len(got.Categories))
	}
	if len(got.Companions) != len(domain.CompanionTypes) || len(got.Budgets) != len(domain.BudgetLevels) {
		t.Fatalf("unexpected options payload: %+v", got)
	}
}

func TestStats_OK(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().Stats().Return(domain.SystemStats{
		Cache: domain.CacheStats{TotalEntries: 2, Capacity: 50},
		Rate:  domain.RateStatus{CurrentCalls: 10, MaxCalls: 100},
	})

	req := httptest.NewRequest(http.MethodGet, "/stats", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.SystemStats
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Cache.TotalEntries != 2 || got.Rate.CurrentCalls != 10 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestNoRoute_404(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/plan", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
	if allow := w.Header().Get("Allow"); allow != "POST" {
		t.Fatalf("want Allow: POST, got %q", allow)
	}
}

func TestPing_200(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}

func TestMetrics_200(t *testing.T) {
	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
