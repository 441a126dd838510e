// Пакет reconciler — фоновый цикл сверки: очередь изменений продуктов → хранилище.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/Gunvolt24/wb_inventory/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_inventory/pkg/metrics"
	"github.com/Gunvolt24/wb_inventory/pkg/telemetry"
)

var (
	// ErrQueueClosed — очередь закрыта; цикл завершается.
	ErrQueueClosed = ports.ErrQueueClosed
	// ErrIterationPanic — паника внутри одной итерации, перехваченная циклом.
	ErrIterationPanic = errors.New("reconciliation iteration panicked")
)

// Config — параметры цикла. Нулевые длительности заменяются значениями по умолчанию.
type Config struct {
	Topic          string        // метка метрик
	ReceiveTimeout time.Duration // ограниченное ожидание ReceiveOne
	PollInterval   time.Duration // пауза между итерациями
	ProcessTimeout time.Duration // таймаут применения одного сообщения
	RetryInitial   time.Duration // backoff при ошибках получения
	RetryMax       time.Duration
}

// Loop — цикл сверки: получить одно сообщение, декодировать, применить, подтвердить, подождать.
// Отмена проверяется на границе итерации: начатое сообщение доводится до подтверждения.
type Loop struct {
	queue   ports.MessageQueue
	decoder ports.ChangeDecoder
	applier ports.ChangeApplier
	log     ports.Logger

	topic          string
	receiveTimeout time.Duration
	pollInterval   time.Duration
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand

	// pending — сообщение, не доведённое до подтверждения (сбой хранилища или паника).
	// Повторяется до успеха раньше любого нового получения, иначе коммит следующего
	// оффсета молча подтвердил бы и его.
	pending *domain.QueueMessage
	state   atomic.Int32
}

func New(
	queue ports.MessageQueue,
	decoder ports.ChangeDecoder,
	applier ports.ChangeApplier,
	log ports.Logger,
	cfg Config,
) *Loop {
	l := &Loop{
		queue:          queue,
		decoder:        decoder,
		applier:        applier,
		log:            log,
		topic:          cfg.Topic,
		receiveTimeout: orDefault(cfg.ReceiveTimeout, time.Second),
		pollInterval:   orDefault(cfg.PollInterval, time.Second),
		processTimeout: orDefault(cfg.ProcessTimeout, 5*time.Second),
		retryInitial:   orDefault(cfg.RetryInitial, time.Second),
		retryMax:       orDefault(cfg.RetryMax, 30*time.Second),
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if l.retryMax < l.retryInitial {
		l.retryMax = l.retryInitial
	}
	return l
}

// State — текущее состояние (для наблюдения и тестов).
func (l *Loop) State() State { return State(l.state.Load()) }

func (l *Loop) setState(s State) { l.state.Store(int32(s)) }

// Run — крутит итерации до отмены ctx, закрытия очереди или паники.
// При отмене возвращает ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	l.setState(StateIdle)
	defer l.setState(StateStopped)

	l.log.Infof(ctx, "reconciliation loop started topic=%s poll_interval=%s receive_timeout=%s",
		l.topic, l.pollInterval, l.receiveTimeout)

	retry := l.retryInitial
	for {
		if err := ctx.Err(); err != nil {
			l.log.Infof(ctx, "reconciliation loop stopped: %v", err)
			return err
		}

		pause := l.pollInterval
		err := l.safeStep(ctx)
		switch {
		case err == nil:
			retry = l.retryInitial
		case ctx.Err() != nil:
			continue
		case errors.Is(err, ErrQueueClosed), errors.Is(err, ErrIterationPanic):
			l.log.Errorf(ctx, "reconciliation loop aborted: %v", err)
			return err
		default:
			// сбой транспорта при получении: пауза по backoff вместо обычной
			pause = l.withJitterEqual(retry)
			l.log.Warnf(ctx, "receive failed: %v (will retry in %s)", err, pause)
			retry = l.nextBackoff(retry)
		}

		sleepCtx(ctx, pause)
	}
}

// safeStep — одна итерация с перехватом паники.
func (l *Loop) safeStep(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrIterationPanic, r)
		}
	}()
	return l.step(ctx)
}

// step — receive → decode → apply → ack. Ошибка возвращается только при сбое получения.
func (l *Loop) step(ctx context.Context) error {
	l.setState(StateIdle)

	msg := l.pending
	if msg == nil {
		var err error
		msg, err = l.queue.ReceiveOne(ctx, l.receiveTimeout)
		if err != nil {
			return err
		}
		if msg == nil {
			metrics.QueueEmptyPolls.WithLabelValues(l.topic).Inc()
			l.log.Infof(ctx, "queue empty, next poll in %s", l.pollInterval)
			return nil
		}
	}
	l.setState(StateReceived)

	start := time.Now()
	defer func() { metrics.ReconcileIterationSeconds.Observe(time.Since(start).Seconds()) }()

	// без отмены: полученное сообщение доводится до подтверждения даже во время остановки
	mctx := telemetry.ExtractHeaders(context.WithoutCancel(ctx), msg.Headers)
	mctx = ctxmeta.WithMessageID(mctx, msg.ID)
	mctx, span := telemetry.Tracer().Start(mctx, "reconcile.message",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(attribute.String("messaging.message.id", msg.ID)),
	)
	defer span.End()

	if l.pending != nil {
		l.log.Infof(mctx, "retrying message id=%s", msg.ID)
	} else {
		l.log.Infof(mctx, "message received id=%s size=%d", msg.ID, len(msg.Body))
	}

	// сбрасывается только после успеха или пропуска: паника в process оставляет сообщение
	// ожидающим, и перезапущенный цикл начнёт с него
	l.pending = msg
	if !l.process(mctx, span, msg) {
		return nil
	}
	l.pending = nil

	l.setState(StateAcknowledging)
	if err := l.queue.Acknowledge(mctx, msg); err != nil {
		metrics.QueueMessagesFailed.WithLabelValues(l.topic, "ack").Inc()
		l.log.Warnf(mctx, "ack failed id=%s: %v (message may be redelivered)", msg.ID, err)
	}
	return nil
}

// process — декодирует и применяет сообщение. false — временный сбой хранилища, подтверждать нельзя.
// Запись, которую хранилище отвергает всегда (domain.ErrRejected), пропускается как нечитаемая.
func (l *Loop) process(ctx context.Context, span trace.Span, msg *domain.QueueMessage) bool {
	l.setState(StateDecoding)
	rec, err := l.decoder.Decode(msg.Body)
	if err == nil && rec == nil {
		err = errors.New("empty record")
	}
	if err != nil {
		l.setState(StateSkipping)
		metrics.QueueMessagesFailed.WithLabelValues(l.topic, "decode").Inc()
		span.SetAttributes(attribute.String("reconcile.outcome", "skipped"))
		l.log.Warnf(ctx, "decode failed id=%s: %v (skipped)", msg.ID, err)
		return true
	}

	l.setState(StateApplying)
	applyCtx, cancel := context.WithTimeout(ctx, l.processTimeout)
	outcome, err := l.applier.ApplyChange(applyCtx, rec)
	cancel()

	span.SetAttributes(
		attribute.String("product.code", rec.Code),
		attribute.Int("product.status", int(rec.Status)),
	)
	if errors.Is(err, domain.ErrRejected) {
		l.setState(StateSkipping)
		metrics.QueueMessagesFailed.WithLabelValues(l.topic, "rejected").Inc()
		span.RecordError(err)
		span.SetAttributes(attribute.String("reconcile.outcome", "rejected"))
		l.log.Warnf(ctx, "record rejected by store id=%s code=%q status=%d: %v (skipped)",
			msg.ID, rec.Code, rec.Status, err)
		return true
	}
	if err != nil {
		metrics.QueueMessagesFailed.WithLabelValues(l.topic, "store").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "apply failed")
		l.log.Errorf(ctx, "apply failed id=%s code=%s status=%d: %v (not acknowledged, will retry)",
			msg.ID, rec.Code, rec.Status, err)
		return false
	}

	span.SetAttributes(attribute.String("reconcile.outcome", string(outcome)))
	return true
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
