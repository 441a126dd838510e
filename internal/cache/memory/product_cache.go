package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/Gunvolt24/wb_inventory/pkg/metrics"
)

var _ ports.ProductCache = (*ProductLRU)(nil)

type entry struct {
	code      string
	def       domain.ProductDefinition
	expiresAt time.Time
}

// ProductLRU — LRU-кэш определений продуктов по коду с скользящим TTL.
// Хранит и отдаёт копии, внешние изменения не затрагивают содержимое.
type ProductLRU struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
}

// NewProductLRU — capacity <= 0 трактуется как 1; ttl <= 0 отключает истечение.
func NewProductLRU(capacity int, ttl time.Duration) *ProductLRU {
	if capacity <= 0 {
		capacity = 1
	}
	return &ProductLRU{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

func (c *ProductLRU) Get(_ context.Context, code string) (*domain.ProductDefinition, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[code]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}

	ent := elem.Value.(*entry)
	if c.expired(ent, now) {
		c.remove(elem)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		return nil, false
	}

	c.ll.MoveToFront(elem)
	ent.expiresAt = c.deadline(now)
	metrics.CacheOps.WithLabelValues("hit").Inc()

	def := ent.def
	return &def, true
}

func (c *ProductLRU) Set(_ context.Context, def *domain.ProductDefinition) error {
	if def == nil || def.Code == "" {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[def.Code]; ok {
		ent := elem.Value.(*entry)
		ent.def = *def
		ent.expiresAt = c.deadline(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneTail(now)

	c.items[def.Code] = c.ll.PushFront(&entry{
		code:      def.Code,
		def:       *def,
		expiresAt: c.deadline(now),
	})
	for c.ll.Len() > c.capacity {
		c.remove(c.ll.Back())
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
	metrics.CacheSize.Set(float64(c.ll.Len()))
	return nil
}

func (c *ProductLRU) Delete(_ context.Context, code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[code]; ok {
		c.remove(elem)
		metrics.CacheOps.WithLabelValues("deleted").Inc()
	}
}

// WarmUp — загружает определения по порядку; прерывается при отмене контекста.
// Последние элементы входа считаются самыми свежими по LRU.
func (c *ProductLRU) WarmUp(ctx context.Context, defs []*domain.ProductDefinition) error {
	for _, def := range defs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, def); err != nil {
			return err
		}
	}
	return nil
}

// Len — текущее число элементов (включая ещё не вычищенные просроченные).
func (c *ProductLRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
