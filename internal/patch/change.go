package patch

import (
	"sort"
	"strings"
)

// Change is one proposed replacement anchored to a content snapshot.
// Offsets are half-open [Start, End) over that snapshot's text, and
// OldText is the text the snapshot is expected to hold there.
type Change struct {
	Start   int
	End     int
	OldText string
	NewText string
}

// PatchSet is the ordered batch of changes for one patch attempt. It
// is built against a single snapshot and discarded after the attempt.
type PatchSet struct {
	changes []Change
}

// NewPatchSet wraps changes without validating them; call Merge to run
// the verify/dedupe/sort/overlap pipeline against a snapshot.
func NewPatchSet(changes []Change) *PatchSet {
	return &PatchSet{changes: changes}
}

// Len returns the number of changes in the set.
func (ps *PatchSet) Len() int {
	return len(ps.changes)
}

// Merge applies the set to snapshot and returns the merged content.
//
// The pipeline is: verify each change's expected text against the
// snapshot, drop exact duplicates, sort ascending by start offset,
// reject overlapping neighbors, then splice. Any verification or
// overlap failure returns a *ConflictError and leaves nothing applied;
// the batch is all-or-nothing.
func (ps *PatchSet) Merge(snapshot string) (string, error) {
	for _, c := range ps.changes {
		if c.Start < 0 || c.End < c.Start || c.End > len(snapshot) {
			return "", conflictf("change [%d,%d) out of range for content of length %d", c.Start, c.End, len(snapshot))
		}
		if got := snapshot[c.Start:c.End]; got != c.OldText {
			return "", conflictf("content changed at [%d,%d): expected %q, found %q", c.Start, c.End, c.OldText, got)
		}
	}

	changes := dedupe(ps.changes)

	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].Start < changes[j].Start
	})

	for i := 1; i < len(changes); i++ {
		if changes[i-1].End > changes[i].Start {
			return "", conflictf("overlapping changes at [%d,%d) and [%d,%d)",
				changes[i-1].Start, changes[i-1].End, changes[i].Start, changes[i].End)
		}
	}

	var b strings.Builder
	last := 0
	for _, c := range changes {
		b.WriteString(snapshot[last:c.Start])
		b.WriteString(c.NewText)
		last = c.End
	}
	b.WriteString(snapshot[last:])

	return b.String(), nil
}

// dedupe removes exact-duplicate changes beyond their first occurrence.
// Duplicates commonly arise from redundant references enumerated
// upstream and are not overlap conflicts.
func dedupe(changes []Change) []Change {
	seen := make(map[Change]struct{}, len(changes))
	out := make([]Change, 0, len(changes))
	for _, c := range changes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
