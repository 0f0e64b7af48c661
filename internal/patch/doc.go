// Package patch merges batches of offset-anchored text changes into a
// shared document under optimistic concurrency.
//
// Each attempt runs Read → Compute → Verify → Merge → Write against a
// private content snapshot. No lock is held across Compute, which may
// block on interactive flows; instead the snapshot's assumptions are
// re-checked at Verify and the store rejects stale writes at Write.
// A Conflict at either point restarts the cycle from Read, bounded by
// a wall-clock retry budget.
package patch
