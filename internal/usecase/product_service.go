package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/Gunvolt24/wb_inventory/pkg/metrics"
)

var (
	_ ports.ChangeApplier      = (*ProductService)(nil)
	_ ports.ProductReadService = (*ProductService)(nil)
)

// ProductService — прикладная логика определений продуктов (без знаний о транспорте и очереди).
type ProductService struct {
	store ports.ProductStore
	cache ports.ProductCache
	log   ports.Logger

	// writes — счётчик применённых мутаций; чтение с промахом не кладёт в кэш строку,
	// если за время чтения хранилище успело измениться
	writes atomic.Uint64
}

// NewProductService — DI-конструктор.
func NewProductService(store ports.ProductStore, cache ports.ProductCache, log ports.Logger) *ProductService {
	return &ProductService{store: store, cache: cache, log: log}
}

// ApplyChange — применяет запись изменения к хранилищу.
//   - status 0: вставка новой строки (без проверки уникальности кода);
//   - status 1: code и status первой строки с этим кодом, цена не меняется;
//     кода нет — OutcomeNotFound без ошибки;
//   - любой другой статус: OutcomeNoop.
//
// Ошибка возвращается только при сбое хранилища.
func (s *ProductService) ApplyChange(ctx context.Context, rec *domain.ProductChangeRecord) (domain.ApplyOutcome, error) {
	if rec == nil {
		return domain.OutcomeNoop, nil
	}

	outcome, err := s.apply(ctx, rec)
	if err != nil {
		return "", err
	}
	metrics.ReconcileApplied.WithLabelValues(string(outcome)).Inc()
	return outcome, nil
}

func (s *ProductService) apply(ctx context.Context, rec *domain.ProductChangeRecord) (domain.ApplyOutcome, error) {
	switch rec.Status {
	case domain.ProductStatusNew:
		def := rec.Definition()
		id, err := s.store.Insert(ctx, def)
		if err != nil {
			return "", fmt.Errorf("insert product code=%s: %w", rec.Code, err)
		}
		// у кода мог уже быть определение: в кэше должна остаться первая строка, а не новая
		s.writes.Add(1)
		s.cache.Delete(ctx, rec.Code)
		s.log.Infof(ctx, "product inserted code=%s id=%s price=%d", rec.Code, id, rec.Price)
		return domain.OutcomeInserted, nil

	case domain.ProductStatusUpdate:
		err := s.store.UpdateByCode(ctx, rec.Code, rec.Status)
		if errors.Is(err, domain.ErrProductNotFound) {
			s.log.Infof(ctx, "product update skipped: code=%s not found", rec.Code)
			return domain.OutcomeNotFound, nil
		}
		if err != nil {
			return "", fmt.Errorf("update product code=%s: %w", rec.Code, err)
		}
		s.writes.Add(1)
		s.cache.Delete(ctx, rec.Code)
		s.log.Infof(ctx, "product updated code=%s status=%d", rec.Code, rec.Status)
		return domain.OutcomeUpdated, nil

	default:
		s.log.Warnf(ctx, "unknown product status=%d code=%s (ignored)", rec.Status, rec.Code)
		return domain.OutcomeNoop, nil
	}
}

// GetProduct — определение по коду: сначала кэш, при промахе — хранилище с записью в кэш.
// Возвращает (nil, nil), если кода нет.
func (s *ProductService) GetProduct(ctx context.Context, code string) (*domain.ProductDefinition, error) {
	if def, found := s.cache.Get(ctx, code); found {
		return def, nil
	}

	start := time.Now()
	gen := s.writes.Load()
	def, err := s.store.GetByCode(ctx, code)
	if err != nil {
		s.log.Errorf(ctx, "store.GetByCode failed code=%s err=%v", code, err)
		return nil, err
	}
	switch {
	case def == nil:
	case s.writes.Load() != gen:
		s.log.Infof(ctx, "cache fill skipped code=%s: store changed during read", code)
	default:
		if setErr := s.cache.Set(ctx, def); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed code=%s err=%v", code, setErr)
		}
		// мутация между проверкой и Set: её Delete мог пройти раньше нашего Set
		if s.writes.Load() != gen {
			s.cache.Delete(ctx, code)
		}
	}

	s.log.Infof(ctx, "db fetch product code=%s found=%t took=%s", code, def != nil, time.Since(start))
	return def, nil
}

// WarmUpCache — прогрев кэша последними N определениями.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *ProductService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	defs, err := s.store.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "store.LastN failed n=%d err=%v", n, err)
		return err
	}

	// LastN отдаёт от новых к старым; при повторе кода побеждает более старая строка,
	// как и в GetByCode
	if err := s.cache.WarmUp(ctx, defs); err != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", err)
	}
	s.log.Infof(ctx, "cache warmed with %d products in %s", len(defs), time.Since(start))
	return nil
}
