package animlist

// Diff is the key-level difference between two snapshots.
type Diff[T any] struct {
	// Added holds entries of the next snapshot whose key was not displayed.
	Added Snapshot[T]
	// Removed holds displayed entries whose key is gone from the next snapshot.
	Removed Snapshot[T]
	// Merged is the display snapshot: the next snapshot with removed entries
	// left where they were so they can animate out.
	Merged Snapshot[T]
}

// Empty reports whether nothing was added or removed.
func (d Diff[T]) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// ComputeDiff compares the displayed snapshot with the next one by key.
//
// Item values of keys present on both sides are taken from next. Changes to
// those values are not reported. With duplicate keys only the first
// occurrence on each side is considered.
func ComputeDiff[T any](prev, next Snapshot[T]) Diff[T] {
	prevIdx := prev.index()
	nextIdx := next.index()

	var d Diff[T]
	for i, e := range prev {
		if prevIdx[e.Key] != i {
			continue
		}
		if _, ok := nextIdx[e.Key]; !ok {
			d.Removed = append(d.Removed, e)
		}
	}
	for i, e := range next {
		if nextIdx[e.Key] != i {
			continue
		}
		if _, ok := prevIdx[e.Key]; !ok {
			d.Added = append(d.Added, e)
		}
	}
	d.Merged = merge(prev, next, nextIdx, len(d.Removed))
	return d
}

// merge walks prev in order. A key that survives into next flushes next up to
// and including that key; a key that does not survive is emitted in place.
// Whatever remains of next is appended at the end.
func merge[T any](prev, next Snapshot[T], nextIdx map[string]int, removed int) Snapshot[T] {
	merged := make(Snapshot[T], 0, len(nextIdx)+removed)
	emitted := make(KeySet, len(nextIdx)+removed)

	cursor := 0
	flush := func(upto int) {
		for ; cursor <= upto && cursor < len(next); cursor++ {
			e := next[cursor]
			if emitted.Has(e.Key) {
				continue
			}
			emitted[e.Key] = struct{}{}
			merged = append(merged, e)
		}
	}

	for _, e := range prev {
		if emitted.Has(e.Key) {
			continue
		}
		if j, ok := nextIdx[e.Key]; ok {
			flush(j)
			continue
		}
		emitted[e.Key] = struct{}{}
		merged = append(merged, e)
	}
	flush(len(next) - 1)
	return merged
}
