package reconciler

import (
	"context"
	"time"
)

// sleepCtx ждёт d или отмену контекста; false — контекст отменён.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff — удвоение с потолком retryMax.
func (l *Loop) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > l.retryMax {
		return l.retryMax
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (l *Loop) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(l.jitterRand.Int63n(int64(d-half)+1))
}
