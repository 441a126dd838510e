package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/Gunvolt24/wb_inventory/pkg/metrics"
)

var (
	// ErrStopTimeout — цикл не остановился за отведённое время.
	ErrStopTimeout = errors.New("reconciliation loop did not stop in time")
	// ErrAlreadyStarted — повторный Start одного и того же супервизора.
	ErrAlreadyStarted = errors.New("supervisor already started")
)

var _ ports.BackgroundWorker = (*Supervisor)(nil)

// Runner — то, что супервизор запускает и перезапускает (Loop).
type Runner interface {
	Run(ctx context.Context) error
}

// SupervisorConfig — политика перезапусков.
type SupervisorConfig struct {
	MaxRestarts  int
	RestartDelay time.Duration
}

// Supervisor — запускает цикл в фоне, перезапускает при сбоях (не более MaxRestarts раз)
// и останавливает его с ожиданием завершения.
type Supervisor struct {
	runner       Runner
	log          ports.Logger
	maxRestarts  int
	restartDelay time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSupervisor(runner Runner, log ports.Logger, cfg SupervisorConfig) *Supervisor {
	if cfg.MaxRestarts < 0 {
		cfg.MaxRestarts = 0
	}
	return &Supervisor{
		runner:       runner,
		log:          log,
		maxRestarts:  cfg.MaxRestarts,
		restartDelay: cfg.RestartDelay,
	}
}

// Start — запускает цикл и сразу возвращает управление.
// Канал получает ошибку, если цикл упал окончательно, и закрывается по завершении.
func (s *Supervisor) Start(ctx context.Context) <-chan error {
	errCh := make(chan error, 1)

	s.mu.Lock()
	if s.done != nil {
		s.mu.Unlock()
		errCh <- ErrAlreadyStarted
		close(errCh)
		return errCh
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	go func() {
		defer close(done)
		defer close(errCh)
		defer cancel()

		if err := s.supervise(runCtx); err != nil {
			s.log.Errorf(runCtx, "reconciliation loop gave up: %v", err)
			errCh <- err
		}
	}()
	return errCh
}

func (s *Supervisor) supervise(ctx context.Context) error {
	for restarts := 0; ; restarts++ {
		err := s.runner.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			err = errors.New("loop returned without error")
		}
		if errors.Is(err, ErrQueueClosed) {
			return err
		}
		if restarts >= s.maxRestarts {
			return fmt.Errorf("after %d restarts: %w", restarts, err)
		}

		metrics.ReconcileLoopRestarts.Inc()
		s.log.Warnf(ctx, "reconciliation loop failed: %v (restart %d/%d in %s)",
			err, restarts+1, s.maxRestarts, s.restartDelay)
		if !sleepCtx(ctx, s.restartDelay) {
			return nil
		}
	}
}

// Stop — отменяет цикл и ждёт его завершения не дольше grace.
// Незапущенный супервизор останавливается мгновенно.
func (s *Supervisor) Stop(grace time.Duration) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}
	cancel()

	t := time.NewTimer(grace)
	defer t.Stop()
	select {
	case <-done:
		return nil
	case <-t.C:
		return ErrStopTimeout
	}
}
