package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/wb_inventory/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestQueueCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	const topic = "product-info"
	beforeReceived := testutil.ToFloat64(metrics.QueueMessagesReceived.WithLabelValues(topic))
	beforeAcked := testutil.ToFloat64(metrics.QueueMessagesAcked.WithLabelValues(topic))
	beforeFailed := testutil.ToFloat64(metrics.QueueMessagesFailed.WithLabelValues(topic, "decode"))

	metrics.QueueMessagesReceived.WithLabelValues(topic).Inc()
	metrics.QueueMessagesAcked.WithLabelValues(topic).Inc()
	metrics.QueueMessagesFailed.WithLabelValues(topic, "decode").Inc()

	if got := testutil.ToFloat64(metrics.QueueMessagesReceived.WithLabelValues(topic)); got != beforeReceived+1 {
		t.Fatalf("QueueMessagesReceived: got=%v want=%v", got, beforeReceived+1)
	}
	if got := testutil.ToFloat64(metrics.QueueMessagesAcked.WithLabelValues(topic)); got != beforeAcked+1 {
		t.Fatalf("QueueMessagesAcked: got=%v want=%v", got, beforeAcked+1)
	}
	if got := testutil.ToFloat64(metrics.QueueMessagesFailed.WithLabelValues(topic, "decode")); got != beforeFailed+1 {
		t.Fatalf("QueueMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestReconcileApplied_ByOp(t *testing.T) {
	metrics.MustRegister()

	insertBefore := testutil.ToFloat64(metrics.ReconcileApplied.WithLabelValues("insert"))
	updateBefore := testutil.ToFloat64(metrics.ReconcileApplied.WithLabelValues("update"))

	metrics.ReconcileApplied.WithLabelValues("insert").Inc()
	metrics.ReconcileApplied.WithLabelValues("insert").Inc()

	if got := testutil.ToFloat64(metrics.ReconcileApplied.WithLabelValues("insert")); got != insertBefore+2 {
		t.Fatalf("ReconcileApplied(insert): got=%v want=%v", got, insertBefore+2)
	}
	if got := testutil.ToFloat64(metrics.ReconcileApplied.WithLabelValues("update")); got != updateBefore {
		t.Fatalf("ReconcileApplied(update): got=%v want=%v", got, updateBefore)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}
