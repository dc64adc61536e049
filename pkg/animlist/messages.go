package animlist

import (
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// nextID hands out component ids so several lists can share one program.
func nextID() int {
	return int(lastID.Add(1))
}

// settleMsg fires when a debounce window may have elapsed.
type settleMsg struct {
	id  int
	tag int
}

// frameMsg advances running timelines by one frame. gen identifies the tick
// chain it belongs to.
type frameMsg struct {
	id  int
	gen int
	at  time.Time
}
