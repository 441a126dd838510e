package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/Gunvolt24/wb_inventory/pkg/metrics"
	"github.com/Gunvolt24/wb_inventory/pkg/validate"
)

var _ ports.ItemService = (*ItemService)(nil)

// ItemService — импорт, выдача и просмотр единиц товара.
type ItemService struct {
	products  ports.ProductReadService
	items     ports.ProductItemStore
	log       ports.Logger
	maxImport int
}

// NewItemService — maxImport <= 0 снимает ограничение на размер импорта.
func NewItemService(
	products ports.ProductReadService,
	items ports.ProductItemStore,
	log ports.Logger,
	maxImport int,
) *ItemService {
	return &ItemService{products: products, items: items, log: log, maxImport: maxImport}
}

// ListItems — единицы продукта; несуществующий продукт даёт пустой список.
func (s *ItemService) ListItems(ctx context.Context, productCode string, limit, offset int) ([]*domain.ProductItem, error) {
	items, err := s.items.ListByProduct(ctx, productCode, limit, offset)
	if err != nil {
		s.log.Errorf(ctx, "items.ListByProduct failed product=%s err=%v", productCode, err)
		return nil, err
	}
	if items == nil {
		items = []*domain.ProductItem{}
	}
	return items, nil
}

// ImportItems — добавляет единицы со статусом "доступна".
// Ошибки: validate.ErrInvalidItemCodes (плохой список), domain.ErrProductNotFound.
func (s *ItemService) ImportItems(ctx context.Context, productCode string, codes []string) (int64, error) {
	clean, err := validate.ItemCodes(codes, s.maxImport)
	if err != nil {
		return 0, err
	}
	if err := s.ensureProduct(ctx, productCode); err != nil {
		return 0, err
	}

	n, err := s.items.Import(ctx, productCode, clean)
	if err != nil {
		s.log.Errorf(ctx, "items.Import failed product=%s count=%d err=%v", productCode, len(clean), err)
		return 0, fmt.Errorf("import items: %w", err)
	}

	metrics.ItemsImported.Add(float64(n))
	s.log.Infof(ctx, "items imported product=%s count=%d", productCode, n)
	return n, nil
}

// ExportItem — резервирует одну доступную единицу продукта.
// Ошибки: domain.ErrProductNotFound, domain.ErrItemNotAvailable.
func (s *ItemService) ExportItem(ctx context.Context, productCode string) (*domain.ProductItem, error) {
	if err := s.ensureProduct(ctx, productCode); err != nil {
		return nil, err
	}

	item, err := s.items.ReserveOne(ctx, productCode)
	if errors.Is(err, domain.ErrItemNotAvailable) {
		metrics.ItemsExported.WithLabelValues("not_available").Inc()
		return nil, err
	}
	if err != nil {
		s.log.Errorf(ctx, "items.ReserveOne failed product=%s err=%v", productCode, err)
		return nil, fmt.Errorf("reserve item: %w", err)
	}

	metrics.ItemsExported.WithLabelValues("ok").Inc()
	s.log.Infof(ctx, "item exported product=%s item=%s", productCode, item.Code)
	return item, nil
}

func (s *ItemService) ensureProduct(ctx context.Context, productCode string) error {
	def, err := s.products.GetProduct(ctx, productCode)
	if err != nil {
		return err
	}
	if def == nil {
		return domain.ErrProductNotFound
	}
	return nil
}
