// Package animlist provides a bubbletea list component that animates rows
// in and out as its backing collection changes.
//
// The caller supplies a new version of the collection whenever it likes. The
// list waits for the collection to settle, diffs it against what is on screen
// by key, and then:
//
//   - inserts added rows immediately, fading them in from zero
//   - keeps removed rows on screen while they fade out, and drops them only
//     once the exit transition has finished
//
// # Quick Start
//
//	l, err := animlist.New(rows,
//	    func(r Row, _ int) string { return r.ID },
//	    func(r Row, _ int) string { return r.Label },
//	    animlist.WithItemHeight(1),
//	    animlist.WithSize(80, 20),
//	)
//	if err != nil {
//	    return err // animlist.ErrMissingKeyFunc
//	}
//
//	// In Init():
//	return l.Init()
//
//	// In Update():
//	l, cmd = l.Update(msg)
//
//	// When new data arrives:
//	l, cmd = l.SetItems(rows)
//
//	// In View():
//	return l.View()
//
// # Transitions
//
// All entering rows share one appear timeline and all leaving rows share one
// disappear timeline. A row joining a transition that is already under way
// picks up the shared progress where it is.
//
// # Options
//
//   - WithDebounce(d) - quiescence window before an update is applied (default: 500ms)
//   - WithDuration(d) - length of each transition (default: 200ms)
//   - WithFrameRate(fps) - frame ticks per second while animating (default: 60)
//   - WithItemHeight(n) - fixed row height; enables the height channel
//   - WithEasing(e) - easing curve (default: EaseInOut)
//   - WithColors(fg, bg) - endpoints of the opacity blend
//   - WithSize(w, h) - viewport size
//   - WithViewport(fn) - direct access to the host viewport
//   - WithLogger(l) - slog logger for transition events
package animlist
