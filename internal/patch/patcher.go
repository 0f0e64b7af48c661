package patch

import (
	"context"
	"time"
)

// Store is the document store a Patcher commits through. Read captures
// a full content snapshot; CompareAndSwap writes newContent only while
// the stored content still equals expected, reporting false when the
// document moved in between.
type Store interface {
	Read(ctx context.Context, path string) (string, error)
	CompareAndSwap(ctx context.Context, path string, expected, newContent string) (bool, error)
}

// ComputeFunc produces the changes for one attempt, anchored against
// the snapshot it is given. It may block (interactive flows, external
// lookups) and is re-invoked with a fresh snapshot on every retry.
type ComputeFunc func(ctx context.Context, snapshot string) ([]Change, error)

// Patcher applies batches of anchored changes to documents in a Store
// with optimistic concurrency. The zero budget means DefaultBudget.
type Patcher struct {
	store  Store
	budget time.Duration
}

// NewPatcher creates a patcher committing through store.
func NewPatcher(store Store) *Patcher {
	return &Patcher{store: store}
}

// WithBudget returns a copy of the patcher using the given retry
// budget for subsequent Apply calls.
func (p *Patcher) WithBudget(budget time.Duration) *Patcher {
	return &Patcher{store: p.store, budget: budget}
}

// Apply runs the read-compute-verify-merge-write cycle for path until
// the merged content commits or the retry budget is exhausted.
//
// Each attempt reads a private snapshot, asks compute for changes
// anchored to it, merges them (all-or-nothing), and commits with a
// compare-and-swap against the snapshot. A verification mismatch,
// overlap, or rejected swap is a conflict that restarts the cycle; the
// document is never left partially patched. Exhaustion surfaces as a
// *TimeoutError carrying the last conflict.
func (p *Patcher) Apply(ctx context.Context, path string, compute ComputeFunc) error {
	return Retry{Budget: p.budget}.Do(ctx, func(ctx context.Context) error {
		return p.attempt(ctx, path, compute)
	})
}

func (p *Patcher) attempt(ctx context.Context, path string, compute ComputeFunc) error {
	snapshot, err := p.store.Read(ctx, path)
	if err != nil {
		return err
	}

	changes, err := compute(ctx, snapshot)
	if err != nil {
		return err
	}

	merged, err := NewPatchSet(changes).Merge(snapshot)
	if err != nil {
		return err
	}
	if merged == snapshot {
		return nil
	}

	swapped, err := p.store.CompareAndSwap(ctx, path, snapshot, merged)
	if err != nil {
		return err
	}
	if !swapped {
		return conflictf("document %s changed since snapshot", path)
	}
	return nil
}
