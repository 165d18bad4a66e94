package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/dayplan/pkg/metrics"
)

// cleanupLocked — сначала убирает все протухшие записи, затем вытесняет
// старейшие по времени вставки, пока размер не опустится до ёмкости.
// Записи в списке упорядочены по вставке, поэтому хвост — кандидаты
// и на истечение, и на вытеснение. Вызывается под мьютексом.
func (c *ResultCache) cleanupLocked(now time.Time) {
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if !ok {
			c.removeElement(back)
			continue
		}
		switch {
		case c.isExpired(ent, now):
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
		case len(c.index) > c.maxEntries:
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("evicted").Inc()
		default:
			return
		}
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *ResultCache) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL; ttl <= 0 означает «без истечения».
func (c *ResultCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.Sub(ent.insertedAt) >= c.ttl
}
