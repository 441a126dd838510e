//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	ikafka "github.com/Gunvolt24/wb_inventory/internal/kafka"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/Gunvolt24/wb_inventory/internal/testutil"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// Publisher → Queue: получение по одному, коммит, отсутствие повторной доставки после коммита.
func TestQueue_PublishReceiveAck_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup("products-itc-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	pub := ikafka.NewPublisher(&ikafka.PublisherConfig{Brokers: kf.Brokers, Topic: topic})
	t.Cleanup(func() { _ = pub.Close() })

	recs := []*domain.ProductChangeRecord{
		{Code: "SKU1", Status: domain.ProductStatusNew, Price: 100},
		{Code: "SKU1", Status: domain.ProductStatusUpdate, Price: 999},
	}
	require.NoError(t, pub.Publish(ctx, recs...))

	cfg := &ikafka.QueueConfig{Brokers: kf.Brokers, Topic: topic, GroupID: group, StartOffset: "first"}
	q := ikafka.NewQueue(cfg)

	for i, want := range recs {
		msg := receiveEventually(ctx, t, q)
		var got domain.ProductChangeRecord
		require.NoError(t, json.Unmarshal(msg.Body, &got))
		require.Equal(t, *want, got, "message %d in delivery order", i)
		require.NoError(t, q.Acknowledge(ctx, msg))
	}

	empty, err := q.ReceiveOne(ctx, 500*time.Millisecond)
	require.NoError(t, err)
	require.Nil(t, empty)

	require.NoError(t, q.Close())

	// новый consumer той же группы не получает закоммиченные сообщения
	q2 := ikafka.NewQueue(cfg)
	t.Cleanup(func() { _ = q2.Close() })
	again, err := q2.ReceiveOne(ctx, 3*time.Second)
	require.NoError(t, err)
	require.Nil(t, again)

	_, err = q.ReceiveOne(ctx, time.Second)
	require.ErrorIs(t, err, ports.ErrQueueClosed)
}

// Без коммита сообщение доставляется повторно новому consumer'у группы.
func TestQueue_NoAck_Redelivered_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup("products-itc-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))
	require.NoError(t, testutil.Produce(ctx, kf.Brokers, topic, testutil.ChangeJSON("SKU9", 0, 10)))

	cfg := &ikafka.QueueConfig{Brokers: kf.Brokers, Topic: topic, GroupID: group, StartOffset: "first"}

	q := ikafka.NewQueue(cfg)
	first := receiveEventually(ctx, t, q)
	require.NoError(t, q.Close())

	q2 := ikafka.NewQueue(cfg)
	t.Cleanup(func() { _ = q2.Close() })
	second := receiveEventually(ctx, t, q2)

	require.Equal(t, first.Body, second.Body)
	require.Equal(t, first.ID, second.ID)
}

func receiveEventually(ctx context.Context, t *testing.T, q *ikafka.Queue) *domain.QueueMessage {
	t.Helper()
	for {
		msg, err := q.ReceiveOne(ctx, 2*time.Second)
		require.NoError(t, err)
		if msg != nil {
			return msg
		}
		require.NoError(t, ctx.Err(), "no message before deadline")
	}
}
