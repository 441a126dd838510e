package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
)

// ProductReadService — чтение определений продуктов.
type ProductReadService interface {
	GetProduct(ctx context.Context, code string) (*domain.ProductDefinition, error)
}

// ChangeApplier — применяет декодированную запись изменения к хранилищу продуктов.
// Ошибка означает сбой хранилища: сообщение не подтверждается.
type ChangeApplier interface {
	ApplyChange(ctx context.Context, rec *domain.ProductChangeRecord) (domain.ApplyOutcome, error)
}

// ItemService — операции над единицами товара (импорт/выдача/список).
type ItemService interface {
	ListItems(ctx context.Context, productCode string, limit, offset int) ([]*domain.ProductItem, error)
	ImportItems(ctx context.Context, productCode string, codes []string) (int64, error)
	ExportItem(ctx context.Context, productCode string) (*domain.ProductItem, error)
}

// BackgroundWorker — фоновый компонент с управляемым жизненным циклом.
type BackgroundWorker interface {
	// Start — запускает работу в отдельной горутине и сразу возвращает управление.
	// Канал получает итоговую ошибку (если работа завершилась аварийно) и закрывается.
	Start(ctx context.Context) <-chan error
	// Stop — сигнал отмены и ожидание завершения не дольше grace.
	Stop(grace time.Duration) error
}
