package ports

import (
	"context"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
)

// ProductCache — интерфейс кэша определений продуктов по коду.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type ProductCache interface {
	// Get — вернуть определение по коду; (def, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, code string) (*domain.ProductDefinition, bool)

	// Set — сохранить/обновить определение в кэше.
	Set(ctx context.Context, def *domain.ProductDefinition) error

	// Delete — убрать определение из кэша (после обновления в хранилище).
	Delete(ctx context.Context, code string)

	// WarmUp — массовая загрузка кэша (например, при старте).
	// Реализация должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, defs []*domain.ProductDefinition) error
}
