package kafka_test

import (
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	mykafka "github.com/Gunvolt24/wb_inventory/internal/kafka"
)

func TestQueueConfig_ReaderConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startOffset string
		wantOffset  int64
	}{
		{"first lower", "first", kafkago.FirstOffset},
		{"first upper", "FIRST", kafkago.FirstOffset},
		{"first spaced", " FiRsT \n", kafkago.FirstOffset},
		{"empty -> last", "", kafkago.LastOffset},
		{"explicit last", "last", kafkago.LastOffset},
		{"unknown -> last", "earliest", kafkago.LastOffset},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := mykafka.QueueConfig{
				Brokers:     []string{"k1:9092", "k2:9092"},
				Topic:       "product-info",
				GroupID:     "service-inventory",
				StartOffset: tt.startOffset,
			}
			rc := cfg.ReaderConfig()

			assert.Equal(t, tt.wantOffset, rc.StartOffset)
			assert.Equal(t, cfg.Brokers, rc.Brokers)
			assert.Equal(t, "product-info", rc.Topic)
			assert.Equal(t, "service-inventory", rc.GroupID)
			assert.Zero(t, rc.CommitInterval, "manual commit")
			assert.Equal(t, 500*time.Millisecond, rc.MaxWait)
		})
	}
}

func TestQueueConfig_MaxWaitOverride(t *testing.T) {
	cfg := mykafka.QueueConfig{Topic: "t", MaxWait: 100 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, cfg.ReaderConfig().MaxWait)
}
