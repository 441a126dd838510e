package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/Gunvolt24/wb_inventory/pkg/metrics"
)

var _ ports.MessageQueue = (*Queue)(nil)

// reader — минимальный контракт над kafka.Reader, чтобы подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// Queue — клиент очереди поверх consumer group kafka-go.
// ReceiveOne = FetchMessage с ограниченным ожиданием, Acknowledge = CommitMessages.
// Без коммита сообщение будет доставлено повторно после ребалансировки/рестарта (at-least-once).
type Queue struct {
	reader    reader
	topic     string
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewQueue — конструктор; reader настроен на ручной коммит.
func NewQueue(cfg *QueueConfig) *Queue {
	return newQueue(kafka.NewReader(cfg.ReaderConfig()))
}

func newQueue(r reader) *Queue {
	return &Queue{reader: r, topic: r.Config().Topic}
}

// Topic — имя топика (метка метрик).
func (q *Queue) Topic() string { return q.topic }

// ReceiveOne — ждёт сообщение не дольше timeout (timeout <= 0 — до отмены ctx).
// Пустая очередь — (nil, nil); закрытый reader — ports.ErrQueueClosed.
func (q *Queue) ReceiveOne(ctx context.Context, timeout time.Duration) (*domain.QueueMessage, error) {
	if q.closed.Load() {
		return nil, ports.ErrQueueClosed
	}

	fetchCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		fetchCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	msg, err := q.reader.FetchMessage(fetchCtx)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return nil, ports.ErrQueueClosed
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case errors.Is(err, context.DeadlineExceeded):
		return nil, nil
	default:
		return nil, fmt.Errorf("fetch message: %w", err)
	}

	metrics.QueueMessagesReceived.WithLabelValues(q.topic).Inc()
	return toQueueMessage(msg), nil
}

// Acknowledge — коммитит оффсет сообщения, полученного через ReceiveOne.
func (q *Queue) Acknowledge(ctx context.Context, msg *domain.QueueMessage) error {
	if msg == nil {
		return errors.New("acknowledge: nil message")
	}
	km, ok := msg.Handle.(kafka.Message)
	if !ok {
		return fmt.Errorf("acknowledge %s: foreign delivery handle %T", msg.ID, msg.Handle)
	}
	if err := q.reader.CommitMessages(ctx, km); err != nil {
		return fmt.Errorf("commit %s: %w", msg.ID, err)
	}
	metrics.QueueMessagesAcked.WithLabelValues(q.topic).Inc()
	return nil
}

// Close — закрывает reader; повторные вызовы безопасны.
func (q *Queue) Close() (retErr error) {
	q.closeOnce.Do(func() {
		q.closed.Store(true)
		retErr = q.reader.Close()
	})
	return retErr
}

func toQueueMessage(m kafka.Message) *domain.QueueMessage {
	var headers map[string]string
	if len(m.Headers) > 0 {
		headers = make(map[string]string, len(m.Headers))
		for _, h := range m.Headers {
			headers[h.Key] = string(h.Value)
		}
	}
	return &domain.QueueMessage{
		Body:    m.Value,
		Handle:  m,
		ID:      fmt.Sprintf("%s/%d/%d", m.Topic, m.Partition, m.Offset),
		Headers: headers,
	}
}
