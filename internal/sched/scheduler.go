// Package sched provides a single-threaded game-time scheduler.
//
// Time only moves when the owner calls Advance, so every timer fires
// deterministically from the simulation tick and never concurrently with it.
// Weapon refire, round countdowns and destruction notifications all run
// through one Scheduler per game.
package sched

import "container/heap"

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler dispatches callbacks at game-time deadlines.
type Scheduler struct {
	now     float64
	nextID  Handle
	seq     uint64
	queue   timerQueue
	byID    map[Handle]*timer
	running bool
}

type timer struct {
	id    Handle
	due   float64
	seq   uint64 // FIFO order among equal due times
	fn    func()
	index int
}

// New creates a scheduler with its clock at zero.
func New() *Scheduler {
	return &Scheduler{
		byID: make(map[Handle]*timer),
	}
}

// Now returns the current game time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Schedule arranges for fn to run delay seconds from now.
// Negative delays are treated as zero.
func (s *Scheduler) Schedule(delay float64, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	t := &timer{
		id:  s.nextID,
		due: s.now + delay,
		seq: s.seq,
		fn:  fn,
	}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel removes a pending timer. It reports whether anything was removed.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.byID[h]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.byID, h)
	return true
}

// Pending reports whether h is still waiting to fire.
func (s *Scheduler) Pending(h Handle) bool {
	_, ok := s.byID[h]
	return ok
}

// Remaining returns the seconds left before h fires.
func (s *Scheduler) Remaining(h Handle) (float64, bool) {
	t, ok := s.byID[h]
	if !ok {
		return 0, false
	}
	return t.due - s.now, true
}

// Advance moves the clock forward by dt seconds and fires every timer that
// comes due, earliest first. While a callback runs, Now reports its deadline.
// Timers scheduled by callbacks fire in the same call if they fall inside the
// window. It returns the number of callbacks fired.
func (s *Scheduler) Advance(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	// Re-entrant calls from a callback would reorder time.
	if s.running {
		return 0
	}
	s.running = true
	defer func() { s.running = false }()

	target := s.now + dt
	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*timer)
		delete(s.byID, t.id)
		if t.due > s.now {
			s.now = t.due
		}
		t.fn()
		fired++
	}
	s.now = target
	return fired
}

// Reset drops all pending timers and rewinds the clock to zero.
// Previously issued handles stay invalid.
func (s *Scheduler) Reset() {
	s.now = 0
	s.queue = nil
	s.byID = make(map[Handle]*timer)
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
