package animlist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReduceReplacesAllFields(t *testing.T) {
	start := InitialState(BuildSnapshot(rows("a", "b"), rowKey))
	checkInvariants(t, start)

	diff := ComputeDiff(start.Data, BuildSnapshot(rows("b", "c"), rowKey))
	next := Reduce[row](start, Updated[row]{Diff: diff})

	if got := keysOf(next.Data); !cmp.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("data = %v", got)
	}
	if diff := cmp.Diff(keySet("c"), next.Added); diff != "" {
		t.Errorf("added (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(keySet("a"), next.Deleted); diff != "" {
		t.Errorf("deleted (-want +got):\n%s", diff)
	}
	checkInvariants(t, next)

	// The previous state is untouched.
	if start.Added.Len() != 2 || start.Deleted.Len() != 0 || start.Len() != 2 {
		t.Errorf("Reduce mutated its input: %+v", start)
	}
}

func TestReduceDisappearCommitted(t *testing.T) {
	s := State[row]{
		Data:    BuildSnapshot(rows("a", "b", "c"), rowKey),
		Added:   keySet("a", "b"),
		Deleted: keySet("c"),
	}
	s.Exact = s.Data.Items()

	next := Reduce[row](s, DisappearCommitted[row]{Input: BuildSnapshot(rows("a"), rowKey)})
	if got := keysOf(next.Data); !cmp.Equal(got, []string{"a"}) {
		t.Errorf("data = %v, want [a]", got)
	}
	if next.Deleted.Len() != 0 {
		t.Errorf("deleted = %v", next.Deleted)
	}
	if diff := cmp.Diff(keySet("a"), next.Added); diff != "" {
		t.Errorf("added keys outside the input must be dropped (-want +got):\n%s", diff)
	}
	checkInvariants(t, next)
}

func TestReduceAppearCompleted(t *testing.T) {
	s := InitialState(BuildSnapshot(rows("a"), rowKey))
	next := Reduce[row](s, AppearCompleted[row]{})
	if next.Added.Len() != 0 {
		t.Errorf("added = %v", next.Added)
	}
	if next.Len() != 1 {
		t.Errorf("data changed: %v", next.Data)
	}
}
