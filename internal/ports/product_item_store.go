package ports

import (
	"context"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
)

type ProductItemStore interface {
	ListByProduct(ctx context.Context, productCode string, limit, offset int) ([]*domain.ProductItem, error)
	Import(ctx context.Context, productCode string, codes []string) (int64, error)
	// ReserveOne — атомарно перевести одну доступную единицу в статус 1.
	// domain.ErrItemNotAvailable, если доступных нет.
	ReserveOne(ctx context.Context, productCode string) (*domain.ProductItem, error)
}
