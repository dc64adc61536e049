package animlist

// State is the authoritative display state of a list. A State is replaced
// as a whole by Reduce and must be treated as read-only.
type State[T any] struct {
	// Data is what is rendered: the logical collection plus rows that are
	// still animating out.
	Data Snapshot[T]
	// Exact mirrors Data item by item and feeds the row renderer.
	Exact []T
	// Added holds keys in their enter transition.
	Added KeySet
	// Deleted holds keys in their exit transition. They are still in Data.
	Deleted KeySet
}

// InitialState builds the mount-time state: every row is entering.
func InitialState[T any](snap Snapshot[T]) State[T] {
	return State[T]{
		Data:    snap,
		Exact:   snap.Items(),
		Added:   snap.Keys(),
		Deleted: KeySet{},
	}
}

// Len returns the number of rendered rows.
func (s State[T]) Len() int { return len(s.Data) }

// Event is an input to the state machine.
type Event[T any] interface {
	apply(State[T]) State[T]
}

// Updated applies a non-empty diff of a debounced input.
type Updated[T any] struct {
	Diff Diff[T]
}

func (e Updated[T]) apply(State[T]) State[T] {
	return State[T]{
		Data:    e.Diff.Merged,
		Exact:   e.Diff.Merged.Items(),
		Added:   e.Diff.Added.Keys(),
		Deleted: e.Diff.Removed.Keys(),
	}
}

// DisappearCommitted drops rows that finished their exit transition by
// rebuilding the display from the latest input.
type DisappearCommitted[T any] struct {
	Input Snapshot[T]
}

func (e DisappearCommitted[T]) apply(s State[T]) State[T] {
	keys := e.Input.Keys()
	added := make(KeySet, len(s.Added))
	for k := range s.Added {
		if keys.Has(k) {
			added[k] = struct{}{}
		}
	}
	return State[T]{
		Data:    e.Input,
		Exact:   e.Input.Items(),
		Added:   added,
		Deleted: KeySet{},
	}
}

// AppearCompleted ends the enter transition.
type AppearCompleted[T any] struct{}

func (AppearCompleted[T]) apply(s State[T]) State[T] {
	return State[T]{
		Data:    s.Data,
		Exact:   s.Exact,
		Added:   KeySet{},
		Deleted: s.Deleted,
	}
}

// Reduce returns the state that follows s after ev.
func Reduce[T any](s State[T], ev Event[T]) State[T] {
	return ev.apply(s)
}
