package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
	"github.com/Gunvolt24/dayplan/pkg/metrics"
)

// Проверка, что ResultCache удовлетворяет порту PlaceCache.
var _ ports.PlaceCache = (*ResultCache)(nil)

type entry struct {
	key        string
	pool       domain.CandidatePool
	insertedAt time.Time
}

// ResultCache — кэш результатов агрегации с TTL и ограничением размера.
// Список упорядочен по времени вставки: front — новые, back — старые.
// Вытеснение — строго от самых старых по вставке (не по доступу);
// чтение запись «свежей» не делает.
type ResultCache struct {
	maxEntries int
	ttl        time.Duration

	ll    *list.List
	index map[string]*list.Element

	now func() time.Time

	mu sync.Mutex
}

// NewResultCache — конструктор. maxEntries <= 0 трактуется как 1.
func NewResultCache(maxEntries int, ttl time.Duration) *ResultCache {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &ResultCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		ll:         list.New(),
		index:      make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Get — вернуть пул по отпечатку. Протухшая запись удаляется на чтении,
// фонового чистильщика для корректности не требуется.
func (c *ResultCache) Get(_ context.Context, fingerprint string) (domain.CandidatePool, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[fingerprint]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent, ok := elem.Value.(*entry)
	if !ok {
		// повреждённая запись — деградируем до промаха
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("miss").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.pool.Clone(), true
}

// Put — вставить/перезаписать пул. После возврата размер кэша
// не превышает maxEntries.
func (c *ResultCache) Put(_ context.Context, fingerprint string, pool domain.CandidatePool) error {
	if fingerprint == "" || pool == nil {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Перезапись обновляет и данные, и время вставки.
	if elem, ok := c.index[fingerprint]; ok {
		c.removeElement(elem)
	}

	elem := c.ll.PushFront(&entry{
		key:        fingerprint,
		pool:       pool.Clone(),
		insertedAt: now,
	})
	c.index[fingerprint] = elem

	if len(c.index) > c.maxEntries {
		c.cleanupLocked(now)
	}
	metrics.CacheSize.Set(float64(len(c.index)))
	return nil
}

// Stats — статистика кэша; считается по текущему состоянию.
func (c *ResultCache) Stats() domain.CacheStats {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	expired := 0
	for e := c.ll.Front(); e != nil; e = e.Next() {
		if ent, ok := e.Value.(*entry); ok && c.isExpired(ent, now) {
			expired++
		}
	}

	total := len(c.index)
	return domain.CacheStats{
		TotalEntries:       total,
		Capacity:           c.maxEntries,
		UtilizationPercent: float64(total) / float64(c.maxEntries) * 100,
		ExpiredEntries:     expired,
		ActiveEntries:      total - expired,
	}
}

// Cleanup — принудительная чистка: протухшие записи, затем старейшие
// по вставке до ёмкости.
func (c *ResultCache) Cleanup() {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupLocked(now)
	metrics.CacheSize.Set(float64(len(c.index)))
}
