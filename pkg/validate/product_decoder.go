package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
)

// Проверка, что ProductDecoder удовлетворяет интерфейсу ChangeDecoder.
var _ ports.ChangeDecoder = (*ProductDecoder)(nil)

// ErrInvalidProduct — базовая (sentinel error) ошибка разбора сообщения об изменении продукта.
var ErrInvalidProduct = errors.New("product change decode failed")

// wireRecord — форма тела сообщения на проводе; указатели отличают "нет поля" от нулевого значения.
type wireRecord struct {
	Code   *string               `json:"code"`
	Status *domain.ProductStatus `json:"status"`
	Price  *int64                `json:"price"`
}

// ProductDecoder — декодер тела сообщения в ProductChangeRecord.
// Только структурная проверка: неизвестные поля игнорируются, обязательные поля должны присутствовать.
type ProductDecoder struct{}

// NewProductDecoder — конструктор ProductDecoder.
func NewProductDecoder() *ProductDecoder { return &ProductDecoder{} }

// Decode — разбирает JSON-объект {"code","status","price"}.
// При любой проблеме возвращает ErrInvalidProduct с обёрнутой причиной; не паникует.
func (d *ProductDecoder) Decode(raw []byte) (*domain.ProductChangeRecord, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: пустое тело сообщения", ErrInvalidProduct)
	}

	var wire wireRecord
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidProduct, err)
	}
	// после объекта не должно быть лишних данных
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidProduct)
	}

	if wire.Code == nil {
		return nil, fmt.Errorf("%w: code обязателен", ErrInvalidProduct)
	}
	if wire.Status == nil {
		return nil, fmt.Errorf("%w: status обязателен", ErrInvalidProduct)
	}
	if wire.Price == nil {
		return nil, fmt.Errorf("%w: price обязателен", ErrInvalidProduct)
	}

	return &domain.ProductChangeRecord{
		Code:   *wire.Code,
		Status: *wire.Status,
		Price:  *wire.Price,
	}, nil
}
