package ports

import (
	"context"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
)

// ProductStore — хранилище определений продуктов.
// Все операции долговечны к моменту возврата.
type ProductStore interface {
	// Insert — добавить новое определение с новым ID; уникальность кода не проверяется.
	Insert(ctx context.Context, def *domain.ProductDefinition) (string, error)
	// UpdateByCode — обновить code и status первой строки с этим кодом.
	// Если строки нет — domain.ErrProductNotFound.
	UpdateByCode(ctx context.Context, code string, status domain.ProductStatus) error
	// GetByCode — определение по коду; (nil, nil), если не найдено.
	GetByCode(ctx context.Context, code string) (*domain.ProductDefinition, error)
	// LastN — последние N определений (для прогрева кэша).
	LastN(ctx context.Context, n int) ([]*domain.ProductDefinition, error)
}
