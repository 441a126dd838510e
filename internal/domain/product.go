package domain

import (
	"errors"
	"time"
)

// ProductStatus — статус определения продукта в сообщении очереди.
// 0 — создать новое определение, 1 — обновить существующее по коду.
type ProductStatus int

const (
	ProductStatusNew    ProductStatus = 0
	ProductStatusUpdate ProductStatus = 1
)

// ItemStatus — статус единицы товара.
type ItemStatus int

const (
	ItemStatusAvailable ItemStatus = 0 // доступна для выдачи
	ItemStatusExported  ItemStatus = 1 // зарезервирована (выдана)
)

var (
	// ErrProductNotFound — определение продукта с таким кодом отсутствует.
	ErrProductNotFound = errors.New("product code not found")
	// ErrItemNotAvailable — у продукта нет доступных единиц.
	ErrItemNotAvailable = errors.New("product item not available")
	// ErrRejected — хранилище отвергает запись по содержимому; повтор не поможет.
	ErrRejected = errors.New("record rejected by store")
)

// ProductDefinition — карточка продукта в каталоге.
// ID назначается хранилищем при создании; Code — бизнес-ключ (уникальность не гарантируется схемой).
type ProductDefinition struct {
	ID        string        `json:"id"`
	Code      string        `json:"code"`
	Status    ProductStatus `json:"status"`
	Price     int64         `json:"price"`
	CreatedAt time.Time     `json:"created_at"`
}

// ProductChangeRecord — декодированное тело сообщения очереди.
// Живёт ровно один шаг сверки и никогда не сохраняется сам по себе.
type ProductChangeRecord struct {
	Code   string        `json:"code"`
	Status ProductStatus `json:"status"`
	Price  int64         `json:"price"`
}

// Definition — новое определение продукта из записи (ID назначит хранилище).
func (r *ProductChangeRecord) Definition() *ProductDefinition {
	return &ProductDefinition{
		Code:   r.Code,
		Status: r.Status,
		Price:  r.Price,
	}
}

// ProductItem — серийная единица товара, принадлежащая продукту.
type ProductItem struct {
	ID          string     `json:"id"`
	ProductCode string     `json:"product_code"`
	Code        string     `json:"code"`
	Status      ItemStatus `json:"status"`
}

// QueueMessage — сообщение очереди: тело и дескриптор доставки для подтверждения.
type QueueMessage struct {
	Body []byte
	// Handle — непрозрачный дескриптор, понятный только клиенту очереди.
	Handle any
	// ID — человекочитаемый идентификатор доставки для логов (например, "topic/partition/offset").
	ID string
	// Headers — заголовки транспорта (используются для распространения trace-контекста).
	Headers map[string]string
}

// ApplyOutcome — результат применения записи изменения к хранилищу.
type ApplyOutcome string

const (
	OutcomeInserted ApplyOutcome = "insert"
	OutcomeUpdated  ApplyOutcome = "update"
	// OutcomeNotFound — обновление кода, которого нет в хранилище; это не ошибка.
	OutcomeNotFound ApplyOutcome = "not_found"
	// OutcomeNoop — статус вне протокола (не 0 и не 1), хранилище не трогаем.
	OutcomeNoop ApplyOutcome = "noop"
)
