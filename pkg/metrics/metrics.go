package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Очередь: получение/подтверждение сообщений.
var (
	QueueMessagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_received_total",
			Help: "Number of messages received from the product queue",
		},
		[]string{"topic"},
	)
	QueueMessagesAcked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_acked_total",
			Help: "Number of messages acknowledged",
		},
		[]string{"topic"},
	)
	QueueMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic", "reason"}, // decode|rejected|store|ack
	)
	QueueEmptyPolls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_empty_polls_total",
			Help: "Number of receive attempts that returned no message",
		},
		[]string{"topic"},
	)
)

// Цикл сверки.
var (
	ReconcileApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconcile_applied_total",
			Help: "Product store mutations by outcome",
		},
		[]string{"op"}, // insert|update|not_found|noop
	)
	ReconcileIterationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reconcile_iteration_seconds",
			Help:    "Duration of one receive/apply/ack iteration (without pacing)",
			Buckets: prometheus.DefBuckets,
		},
	)
	ReconcileLoopRestarts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reconcile_loop_restarts_total",
			Help: "Number of reconciliation loop restarts by the supervisor",
		},
	)
)

// Кэш определений продуктов.
var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|deleted
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

// Единицы товара.
var (
	ItemsImported = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "product_items_imported_total",
			Help: "Number of product items imported",
		},
	)
	ItemsExported = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_items_exported_total",
			Help: "Export (reservation) attempts by result",
		},
		[]string{"result"}, // ok|not_available
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			QueueMessagesReceived, QueueMessagesAcked, QueueMessagesFailed, QueueEmptyPolls,
			ReconcileApplied, ReconcileIterationSeconds, ReconcileLoopRestarts,
			CacheOps, CacheSize,
			ItemsImported, ItemsExported,
		)
	})
}
