package sched

// Slot is a logical timer with at most one outstanding handle.
// Arming a slot always cancels whatever it held before.
type Slot struct {
	s *Scheduler
	h Handle
}

// NewSlot creates an empty slot bound to s.
func NewSlot(s *Scheduler) *Slot {
	return &Slot{s: s}
}

// Set cancels any pending callback and schedules fn after delay.
func (sl *Slot) Set(delay float64, fn func()) {
	sl.Clear()
	var h Handle
	h = sl.s.Schedule(delay, func() {
		// Forget the handle first so fn may re-arm the slot.
		if sl.h == h {
			sl.h = 0
		}
		fn()
	})
	sl.h = h
}

// Clear cancels the pending callback, if any.
func (sl *Slot) Clear() {
	if sl.h != 0 {
		sl.s.Cancel(sl.h)
		sl.h = 0
	}
}

// Active reports whether the slot holds a pending callback.
func (sl *Slot) Active() bool {
	return sl.h != 0 && sl.s.Pending(sl.h)
}

// Remaining returns the seconds until the pending callback fires, or 0.
func (sl *Slot) Remaining() float64 {
	if sl.h == 0 {
		return 0
	}
	r, ok := sl.s.Remaining(sl.h)
	if !ok {
		return 0
	}
	return r
}
