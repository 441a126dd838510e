package ports

import "github.com/Gunvolt24/wb_inventory/internal/domain"

// ChangeDecoder — разбор тела сообщения в запись изменения продукта.
type ChangeDecoder interface {
	Decode(raw []byte) (*domain.ProductChangeRecord, error)
}
