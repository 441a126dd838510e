//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// UniqueTopicAndGroup — уникальные topic/group для изоляции тестов.
func UniqueTopicAndGroup(base string) (topic, group string) {
	s := strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
	return base + "-" + s, base + "-group-" + s
}

// EnsureTopic — создаёт однопартиционный топик через контроллер и ждёт метаданных.
func EnsureTopic(ctx context.Context, broker, topic string) error {
	addr := strings.TrimPrefix(strings.TrimSpace(strings.Split(broker, ",")[0]), "PLAINTEXT://")

	conn, err := kafka.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctrl, err := conn.Controller()
	if err != nil {
		return err
	}
	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return err
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		parts, perr := admin.ReadPartitions(topic)
		if perr == nil && len(parts) > 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("topic %q not ready: %v", topic, perr)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// Produce — синхронно пишет сообщения в топик.
func Produce(ctx context.Context, brokers []string, topic string, bodies ...[]byte) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	defer w.Close()

	msgs := make([]kafka.Message, 0, len(bodies))
	for _, b := range bodies {
		msgs = append(msgs, kafka.Message{Value: b})
	}
	return w.WriteMessages(ctx, msgs...)
}
