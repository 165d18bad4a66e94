package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
	"github.com/Gunvolt24/dayplan/pkg/metrics"
)

// ErrNoPlacesFound — все пакеты провалились или не вернули ни одного места.
// Единственная ошибка агрегации, которая уходит наружу как жёсткий отказ.
var ErrNoPlacesFound = errors.New("no places found")

// AggregatorConfig — параметры конвейера сбора кандидатов.
type AggregatorConfig struct {
	RadiusMeters     int           // радиус поиска вокруг точки старта
	BatchSize        int           // категорий в одном обращении к провайдеру
	BatchPause       time.Duration // пауза между пакетами (не после последнего)
	PerCategoryLimit int           // мест на категорию от провайдера
	PoolSize         int           // итоговый размер пула кандидатов
	Rand             *rand.Rand    // источник случайности; в тестах — с фиксированным зерном
}

func (c *AggregatorConfig) applyDefaults() {
	if c.RadiusMeters <= 0 {
		c.RadiusMeters = 2000
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 3
	}
	if c.BatchPause <= 0 {
		c.BatchPause = 200 * time.Millisecond
	}
	if c.PerCategoryLimit <= 0 {
		c.PerCategoryLimit = 15
	}
	if c.PoolSize <= 0 {
		c.PoolSize = 20
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// SearchAggregator — конвейер сбора кандидатов: выбор категорий,
// пакетный поиск через провайдера под ограничителем, случайная редукция,
// чтение/запись кэша.
type SearchAggregator struct {
	provider ports.SearchProvider
	cache    ports.PlaceCache
	governor ports.RateGovernor
	log      ports.Logger
	cfg      AggregatorConfig

	rndMu sync.Mutex // rand.Rand не потокобезопасен
}

// NewSearchAggregator — DI-конструктор.
func NewSearchAggregator(
	provider ports.SearchProvider,
	cache ports.PlaceCache,
	governor ports.RateGovernor,
	log ports.Logger,
	cfg AggregatorConfig,
) *SearchAggregator {
	cfg.applyDefaults()
	return &SearchAggregator{
		provider: provider,
		cache:    cache,
		governor: governor,
		log:      log,
		cfg:      cfg,
	}
}

// SelectCategories — чистая функция выбора категорий поиска.
// Пользовательские категории идут первыми и никогда не отбрасываются;
// затем детерминированно добираются категории под тип компании,
// разнообразие и запасной минимум. Итог: от 1 до 10 категорий.
func SelectCategories(companion string, userChosen []string) []string {
	selected := make([]string, 0, 10)
	seen := make(map[string]struct{})

	add := func(categories []string, limit int) {
		added := 0
		for _, c := range categories {
			if limit >= 0 && added >= limit {
				return
			}
			if c == "" {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			selected = append(selected, c)
			added++
		}
	}

	// 1. пользовательский выбор — дословно и первым
	add(userChosen, -1)
	userCount := len(selected)

	// 2. до трёх категорий под тип компании (префикс списка, без случайности)
	add(domain.CompanionCategories[companion], 3)

	// 3. до двух категорий для разнообразия
	add(domain.VarietyCategories, 2)

	// 4. добор из запасного списка до шести
	if len(selected) < 6 {
		add(domain.DefaultCategories, 6-len(selected))
	}

	// 5. верхняя граница: десять, пользовательские не срезаются
	if len(selected) > 10 {
		keep := 10
		if userCount > keep {
			keep = userCount // пользователь выбрал больше десяти — оставляем весь его выбор
		}
		selected = selected[:keep]
	}

	return selected
}

// AcquirePlaces — собрать пул кандидатов для запроса.
// Порядок: отпечаток → кэш → пакетный поиск → слияние → случайная
// редукция → запись в кэш.
func (a *SearchAggregator) AcquirePlaces(ctx context.Context, req domain.PlanRequest) (domain.CandidatePool, error) {
	categories := SelectCategories(req.Companion, req.Categories)
	if len(categories) == 0 {
		// защитный минимум: без категорий искать нечего
		categories = domain.DefaultCategories[:1]
	}

	origin := domain.DefaultOrigin
	if req.Origin != nil {
		origin = *req.Origin
	}
	radius := req.RadiusMeters
	if radius <= 0 {
		radius = a.cfg.RadiusMeters
	}
	label := req.LocationName
	if label == "" {
		label = domain.DefaultOriginName
	}

	fp := domain.Fingerprint(label, categories, origin, radius)
	if pool, ok := a.cache.Get(ctx, fp); ok {
		a.log.Infof(ctx, "cache hit fingerprint=%s places=%d", fp, pool.Total())
		return pool, nil
	}
	a.log.Infof(ctx, "cache miss fingerprint=%s categories=%d", fp, len(categories))

	merged := a.searchAll(ctx, categories, origin, radius)
	if len(merged) == 0 {
		return nil, ErrNoPlacesFound
	}

	pool := a.reduce(merged)

	if err := a.cache.Put(ctx, fp, pool); err != nil {
		a.log.Warnf(ctx, "cache.Put failed fingerprint=%s err=%v", fp, err)
	}
	a.log.Infof(ctx, "pool assembled fingerprint=%s places=%d categories=%d", fp, pool.Total(), len(pool))
	return pool, nil
}

// searchAll — последовательный обход пакетов категорий. Провал пакета
// пропускается с предупреждением и не прерывает остальные.
func (a *SearchAggregator) searchAll(ctx context.Context, categories []string, origin domain.LatLng, radius int) []domain.Place {
	var merged []domain.Place

	for i := 0; i < len(categories); i += a.cfg.BatchSize {
		if i > 0 {
			if err := a.pause(ctx); err != nil {
				a.log.Warnf(ctx, "aggregation interrupted between batches: %v", err)
				return merged
			}
		}

		end := i + a.cfg.BatchSize
		if end > len(categories) {
			end = len(categories)
		}
		batch := categories[i:end]

		if err := a.governor.Acquire(ctx); err != nil {
			a.log.Warnf(ctx, "aggregation interrupted by rate governor: %v", err)
			return merged
		}

		results, err := a.provider.SearchBatch(ctx, batch, origin, radius, a.cfg.PerCategoryLimit)
		if err != nil {
			metrics.SearchBatchesSkipped.Inc()
			a.log.Warnf(ctx, "batch skipped categories=%v err=%v", batch, err)
			continue
		}

		for category, places := range results {
			for _, p := range places {
				// страхуемся: каждое место помечено своей категорией поиска
				if p.Category == "" {
					p.Category = category
				}
				merged = append(merged, p)
			}
		}
	}

	return merged
}

// reduce — случайная редукция: равномерная перестановка, первые PoolSize
// мест, обратная группировка по категориям. Случайность намеренная —
// повторные запросы при холодном кэше дают разные наборы.
func (a *SearchAggregator) reduce(merged []domain.Place) domain.CandidatePool {
	a.rndMu.Lock()
	a.cfg.Rand.Shuffle(len(merged), func(i, j int) {
		merged[i], merged[j] = merged[j], merged[i]
	})
	a.rndMu.Unlock()

	n := a.cfg.PoolSize
	if n > len(merged) {
		n = len(merged)
	}

	pool := make(domain.CandidatePool)
	for _, p := range merged[:n] {
		pool[p.Category] = append(pool[p.Category], p)
	}
	return pool
}

// pause — пауза между пакетами с учётом отмены контекста.
func (a *SearchAggregator) pause(ctx context.Context) error {
	timer := time.NewTimer(a.cfg.BatchPause)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
