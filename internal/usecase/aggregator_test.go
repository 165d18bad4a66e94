package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports/mocks"
	"github.com/Gunvolt24/dayplan/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func makePlaces(category string, n int) []domain.Place {
	out := make([]domain.Place, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Place{
			Name:           fmt.Sprintf("%s-%d", category, i),
			Category:       category,
			DistanceMeters: (i + 1) * 50,
		})
	}
	return out
}

func TestSelectCategories_UserChoiceFirst(t *testing.T) {
	got := usecase.SelectCategories(domain.CompanionCouple, []string{"Cafe", "Park"})

	if len(got) < 2 || got[0] != "Cafe" || got[1] != "Park" {
		t.Fatalf("user categories must come first: %v", got)
	}

	// до трёх категорий под тип компании сразу после пользовательских
	couple := domain.CompanionCategories[domain.CompanionCouple]
	for i := 0; i < 3; i++ {
		if got[2+i] != couple[i] {
			t.Fatalf("expected companion category %q at %d, got %v", couple[i], 2+i, got)
		}
	}
}

func TestSelectCategories_Bounds(t *testing.T) {
	cases := []struct {
		companion string
		user      []string
	}{
		{domain.CompanionSolo, nil},
		{domain.CompanionCouple, []string{"Cafe"}},
		{domain.CompanionFriends, []string{"Cafe", "Restaurant", "Park", "Cinema", "Mall", "Cultural Spot"}},
		{"unknown", nil},
		{domain.CompanionFamily, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}},
	}

	for _, tc := range cases {
		got := usecase.SelectCategories(tc.companion, tc.user)

		if len(got) < 1 {
			t.Fatalf("companion=%q: selection must not be empty", tc.companion)
		}
		if len(got) > 10 && len(tc.user) <= 10 {
			t.Fatalf("companion=%q: selection exceeds cap: %d", tc.companion, len(got))
		}

		// все пользовательские категории сохранены
		present := make(map[string]bool, len(got))
		for _, c := range got {
			present[c] = true
		}
		for _, u := range tc.user {
			if !present[u] {
				t.Fatalf("companion=%q: user category %q dropped: %v", tc.companion, u, got)
			}
		}
	}
}

func TestSelectCategories_PadsToSix(t *testing.T) {
	// неизвестный тип компании: только разнообразие и запасной добор
	got := usecase.SelectCategories("unknown", nil)
	if len(got) < 6 {
		t.Fatalf("selection must be padded to 6, got %d: %v", len(got), got)
	}
}

func TestAcquirePlaces_ReducesToPoolSize(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockSearchProvider(ctrl)
	cache := mocks.NewMockPlaceCache(ctrl)
	governor := mocks.NewMockRateGovernor(ctrl)

	results := map[string][]domain.Place{
		"Cafe":       makePlaces("Cafe", 15),
		"Restaurant": makePlaces("Restaurant", 15),
	}

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	governor.EXPECT().Acquire(gomock.Any()).Return(nil)
	provider.EXPECT().
		SearchBatch(gomock.Any(), gomock.Any(), domain.LatLng{Lat: 37.5563, Lng: 126.9237}, 2000, 15).
		Return(results, nil)
	cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	agg := usecase.NewSearchAggregator(provider, cache, governor, noopLogger{}, usecase.AggregatorConfig{
		BatchSize: 10, // все категории одним пакетом
	})

	origin := domain.LatLng{Lat: 37.5563, Lng: 126.9237}
	pool, err := agg.AcquirePlaces(context.Background(), domain.PlanRequest{
		Companion:  domain.CompanionCouple,
		Origin:     &origin,
		Categories: []string{"Cafe", "Restaurant"},
	})
	if err != nil {
		t.Fatalf("AcquirePlaces: %v", err)
	}

	if pool.Total() != 20 {
		t.Fatalf("pool size: want 20, got %d", pool.Total())
	}
	for category, places := range pool {
		if category != "Cafe" && category != "Restaurant" {
			t.Fatalf("unexpected category %q in pool", category)
		}
		for _, p := range places {
			if p.Category != category {
				t.Fatalf("place %q grouped under %q but tagged %q", p.Name, category, p.Category)
			}
		}
	}
}

func TestAcquirePlaces_AllBatchesFail(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockSearchProvider(ctrl)
	cache := mocks.NewMockPlaceCache(ctrl)
	governor := mocks.NewMockRateGovernor(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	governor.EXPECT().Acquire(gomock.Any()).Return(nil).AnyTimes()
	provider.EXPECT().
		SearchBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider down")).
		AnyTimes()
	// cache.Put не ожидается: при пустом результате записи в кэш нет

	agg := usecase.NewSearchAggregator(provider, cache, governor, noopLogger{}, usecase.AggregatorConfig{
		BatchPause: time.Millisecond,
	})

	_, err := agg.AcquirePlaces(context.Background(), domain.PlanRequest{Companion: domain.CompanionSolo})
	if !errors.Is(err, usecase.ErrNoPlacesFound) {
		t.Fatalf("want ErrNoPlacesFound, got %v", err)
	}
}

func TestAcquirePlaces_SkipsFailedBatch(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockSearchProvider(ctrl)
	cache := mocks.NewMockPlaceCache(ctrl)
	governor := mocks.NewMockRateGovernor(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	governor.EXPECT().Acquire(gomock.Any()).Return(nil).Times(2)

	// первый пакет падает, второй возвращает места
	gomock.InOrder(
		provider.EXPECT().
			SearchBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout")),
		provider.EXPECT().
			SearchBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string][]domain.Place{"공원": makePlaces("공원", 3)}, nil),
	)
	cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	agg := usecase.NewSearchAggregator(provider, cache, governor, noopLogger{}, usecase.AggregatorConfig{
		BatchSize:  3,
		BatchPause: time.Millisecond,
	})

	// solo без пользовательских категорий: 3 + 2 + 1 добор = 6 категорий, два пакета
	pool, err := agg.AcquirePlaces(context.Background(), domain.PlanRequest{Companion: domain.CompanionSolo})
	if err != nil {
		t.Fatalf("AcquirePlaces: %v", err)
	}
	if pool.Total() != 3 {
		t.Fatalf("pool must keep the places of the surviving batch, got %d", pool.Total())
	}
}

func TestAcquirePlaces_WarmCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := mocks.NewMockSearchProvider(ctrl)
	cache := mocks.NewMockPlaceCache(ctrl)
	governor := mocks.NewMockRateGovernor(ctrl)

	cached := domain.CandidatePool{"Cafe": makePlaces("Cafe", 5)}
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, true)
	// провайдер и ограничитель не трогаются вовсе

	agg := usecase.NewSearchAggregator(provider, cache, governor, noopLogger{}, usecase.AggregatorConfig{})

	pool, err := agg.AcquirePlaces(context.Background(), domain.PlanRequest{Companion: domain.CompanionSolo})
	if err != nil {
		t.Fatalf("AcquirePlaces: %v", err)
	}
	if !reflect.DeepEqual(pool, cached) {
		t.Fatalf("warm cache must return the cached pool exactly")
	}
}

func TestAcquirePlaces_SeededRandIsDeterministic(t *testing.T) {
	run := func(seed int64) domain.CandidatePool {
		ctrl := gomock.NewController(t)

		provider := mocks.NewMockSearchProvider(ctrl)
		cache := mocks.NewMockPlaceCache(ctrl)
		governor := mocks.NewMockRateGovernor(ctrl)

		results := map[string][]domain.Place{
			"Cafe":       makePlaces("Cafe", 15),
			"Restaurant": makePlaces("Restaurant", 15),
		}

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
		governor.EXPECT().Acquire(gomock.Any()).Return(nil)
		provider.EXPECT().
			SearchBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(results, nil)
		cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		agg := usecase.NewSearchAggregator(provider, cache, governor, noopLogger{}, usecase.AggregatorConfig{
			BatchSize: 10,
			Rand:      rand.New(rand.NewSource(seed)),
		})

		pool, err := agg.AcquirePlaces(context.Background(), domain.PlanRequest{
			Companion:  domain.CompanionCouple,
			Categories: []string{"Cafe", "Restaurant"},
		})
		if err != nil {
			t.Fatalf("AcquirePlaces: %v", err)
		}
		return pool
	}

	first := run(42)
	second := run(42)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed must produce identical pools")
	}
}
