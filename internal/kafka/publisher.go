package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/pkg/telemetry"
)

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — продюсер изменений продуктов в топик очереди.
// Ключ сообщения — код продукта: изменения одного кода попадают в одну партицию и сохраняют порядок.
type Publisher struct {
	writer    writer
	closeOnce sync.Once
}

func NewPublisher(cfg *PublisherConfig) *Publisher {
	return &Publisher{writer: cfg.writer()}
}

// Publish — сериализует записи в JSON и пишет одним батчем; trace-контекст уходит в заголовках.
func (p *Publisher) Publish(ctx context.Context, recs ...*domain.ProductChangeRecord) error {
	if len(recs) == 0 {
		return nil
	}

	headers := traceHeaders(ctx)
	msgs := make([]kafka.Message, 0, len(recs))
	for _, rec := range recs {
		body, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", rec.Code, err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(rec.Code), Value: body, Headers: headers})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write messages: %w", err)
	}
	return nil
}

func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

func traceHeaders(ctx context.Context) []kafka.Header {
	carrier := telemetry.InjectHeaders(ctx)
	if len(carrier) == 0 {
		return nil
	}
	headers := make([]kafka.Header, 0, len(carrier))
	for k, v := range carrier {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return headers
}
