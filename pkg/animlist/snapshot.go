package animlist

// KeyFunc derives the identity of an item. Keys must be unique within one
// collection; duplicates are not detected and the first occurrence wins.
type KeyFunc[T any] func(item T, index int) string

// RenderFunc renders one item as a (possibly multi-line) row.
type RenderFunc[T any] func(item T, index int) string

// Entry pairs an item with its key.
type Entry[T any] struct {
	Key  string
	Item T
}

// Snapshot is a keyed, ordered view of a collection at one point in time.
// Snapshots are rebuilt from scratch and never edited in place.
type Snapshot[T any] []Entry[T]

// BuildSnapshot keys every element of items in source order.
func BuildSnapshot[T any](items []T, key KeyFunc[T]) Snapshot[T] {
	snap := make(Snapshot[T], 0, len(items))
	for i, item := range items {
		snap = append(snap, Entry[T]{Key: key(item, i), Item: item})
	}
	return snap
}

// Items returns the raw items in snapshot order.
func (s Snapshot[T]) Items() []T {
	items := make([]T, len(s))
	for i, e := range s {
		items[i] = e.Item
	}
	return items
}

// Keys returns the set of keys in the snapshot.
func (s Snapshot[T]) Keys() KeySet {
	keys := make(KeySet, len(s))
	for _, e := range s {
		keys[e.Key] = struct{}{}
	}
	return keys
}

// index maps each key to the position of its first occurrence.
func (s Snapshot[T]) index() map[string]int {
	idx := make(map[string]int, len(s))
	for i, e := range s {
		if _, dup := idx[e.Key]; !dup {
			idx[e.Key] = i
		}
	}
	return idx
}

// KeySet is a set of row keys.
type KeySet map[string]struct{}

// Has reports whether key is in the set.
func (k KeySet) Has(key string) bool {
	_, ok := k[key]
	return ok
}

// Len returns the number of keys.
func (k KeySet) Len() int { return len(k) }
