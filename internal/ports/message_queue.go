package ports

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
)

// ErrQueueClosed — клиент очереди закрыт, дальнейшее получение невозможно.
var ErrQueueClosed = errors.New("message queue closed")

// MessageQueue — клиент внешней очереди: не более одного сообщения за вызов.
type MessageQueue interface {
	// ReceiveOne — ждёт не дольше timeout; (nil, nil), если очередь пуста.
	ReceiveOne(ctx context.Context, timeout time.Duration) (*domain.QueueMessage, error)
	// Acknowledge — отметить сообщение обработанным (повторной доставки не будет).
	Acknowledge(ctx context.Context, msg *domain.QueueMessage) error
	Close() error
}
