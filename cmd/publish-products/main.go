package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/wb_inventory/config"
	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/kafka"
	"github.com/Gunvolt24/wb_inventory/pkg/validate"
)

// CLI: публикует изменения продуктов (JSONL) в топик очереди сверки.
// Брокеры и топик по умолчанию берутся из INVENTORY_KAFKA_*.
func main() {
	_ = godotenv.Load(".env.local")

	inputPath := flag.String("in", "", "path to .jsonl input. If empty, reads from stdin.")
	brokersFlag := flag.String("brokers", "", "comma-separated brokers (overrides config)")
	topicFlag := flag.String("topic", "", "topic (overrides config)")
	timeout := flag.Duration("timeout", 30*time.Second, "publish timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	brokers, topic := cfg.Kafka.Brokers, cfg.Kafka.Topic
	if *brokersFlag != "" {
		brokers = strings.Split(*brokersFlag, ",")
	}
	if *topicFlag != "" {
		topic = *topicFlag
	}

	var in io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	recs, err := readRecords(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	if len(recs) == 0 {
		fmt.Fprintln(os.Stderr, "nothing to publish")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	pub := kafka.NewPublisher(&kafka.PublisherConfig{Brokers: brokers, Topic: topic})
	defer func() { _ = pub.Close() }()

	if err := pub.Publish(ctx, recs...); err != nil {
		fmt.Fprintf(os.Stderr, "publish: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "published %d records to %s\n", len(recs), topic)
}

// readRecords — строки JSONL через декодер; пустые строки пропускаются, первая ошибка прерывает чтение.
func readRecords(r io.Reader) ([]*domain.ProductChangeRecord, error) {
	decoder := validate.NewProductDecoder()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var out []*domain.ProductChangeRecord
	for line := 1; sc.Scan(); line++ {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		rec, err := decoder.Decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	return out, sc.Err()
}
