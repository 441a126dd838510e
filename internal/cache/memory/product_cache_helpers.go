package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/wb_inventory/pkg/metrics"
)

// remove — удаляет элемент из списка и индекса. Вызывается под mu.
func (c *ProductLRU) remove(elem *list.Element) {
	if elem == nil {
		return
	}
	delete(c.items, elem.Value.(*entry).code)
	c.ll.Remove(elem)
	metrics.CacheSize.Set(float64(c.ll.Len()))
}

func (c *ProductLRU) expired(ent *entry, now time.Time) bool {
	return c.ttl > 0 && now.After(ent.expiresAt)
}

func (c *ProductLRU) deadline(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneTail — срезает просроченные элементы с хвоста до первого живого.
func (c *ProductLRU) pruneTail(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for back := c.ll.Back(); back != nil; back = c.ll.Back() {
		if !c.expired(back.Value.(*entry), now) {
			return
		}
		c.remove(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
	}
}
