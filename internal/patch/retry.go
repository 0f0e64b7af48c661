package patch

import (
	"context"
	"errors"
	"time"
)

// DefaultBudget bounds a full retry loop when no override is given.
const DefaultBudget = 60 * time.Second

// Retry re-runs an operation while it keeps reporting conflicts, until
// it succeeds or the wall-clock budget is exhausted. There is no
// attempt cap; the bound is purely temporal, so each attempt must be
// cheap and idempotent outside its own snapshot.
type Retry struct {
	// Budget is the total wall-clock time allowed. Zero means
	// DefaultBudget.
	Budget time.Duration

	// now and sleep are test seams; nil means the real clock.
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// Do runs op until it returns nil, fails with a non-conflict error, or
// the budget runs out. Exhaustion returns a *TimeoutError carrying the
// last conflict.
func (r Retry) Do(ctx context.Context, op func(context.Context) error) error {
	budget := r.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	now := r.now
	if now == nil {
		now = time.Now
	}
	sleep := r.sleep
	if sleep == nil {
		sleep = realSleep
	}

	deadline := now().Add(budget)

	var last *ConflictError
	for {
		err := op(ctx)
		if err == nil {
			return nil
		}

		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			return err
		}
		last = conflict

		if !now().Before(deadline) {
			return &TimeoutError{Budget: budget.String(), Last: last}
		}
		if err := sleep(ctx, retryDelay); err != nil {
			return err
		}
	}
}

// retryDelay spaces attempts out just enough to let a concurrent
// writer finish without burning the budget on hot spinning.
const retryDelay = 10 * time.Millisecond

func realSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
