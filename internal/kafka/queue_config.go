package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// QueueConfig — параметры consumer group для очереди изменений продуктов.
type QueueConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last, регистр и пробелы не важны
	// MaxWait — сколько брокер держит пустой fetch; должно быть меньше ожидания ReceiveOne.
	MaxWait time.Duration
}

// ReaderConfig — конфиг kafka.Reader с ручным коммитом оффсетов (CommitInterval = 0).
func (c *QueueConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
		MaxWait:        c.MaxWait,
		StartOffset:    kafka.LastOffset,
	}
	if rc.MaxWait <= 0 {
		rc.MaxWait = 500 * time.Millisecond
	}
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	}
	return rc
}

// PublisherConfig — параметры продюсера изменений продуктов.
type PublisherConfig struct {
	Brokers []string
	Topic   string
}

func (c *PublisherConfig) writer() *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        c.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
}
