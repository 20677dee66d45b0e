package sched

import (
	"math"
	"sort"
	"testing"

	"pgregory.net/rapid"
)

func TestScheduleFiresInDueOrder(t *testing.T) {
	s := New()
	var order []string

	s.Schedule(0.3, func() { order = append(order, "c") })
	s.Schedule(0.1, func() { order = append(order, "a") })
	s.Schedule(0.2, func() { order = append(order, "b") })

	if fired := s.Advance(0.25); fired != 2 {
		t.Fatalf("Advance(0.25) fired %d, expected 2", fired)
	}
	if fired := s.Advance(0.1); fired != 1 {
		t.Fatalf("Advance(0.1) fired %d, expected 1", fired)
	}

	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, expected %v", order, want)
		}
	}
}

func TestEqualDeadlinesAreFIFO(t *testing.T) {
	s := New()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		s.Schedule(1, func() { order = append(order, i) })
	}
	s.Advance(1)

	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, expected insertion order", order)
		}
	}
}

func TestNowDuringCallbackIsDeadline(t *testing.T) {
	s := New()
	var seen float64
	s.Schedule(0.4, func() { seen = s.Now() })

	s.Advance(1)

	if seen != 0.4 {
		t.Errorf("Now() inside callback = %v, expected 0.4", seen)
	}
	if s.Now() != 1 {
		t.Errorf("Now() after Advance = %v, expected 1", s.Now())
	}
}

func TestCancelPreventsFiring(t *testing.T) {
	s := New()
	fired := false
	h := s.Schedule(0.5, func() { fired = true })

	if !s.Cancel(h) {
		t.Fatal("Cancel() on pending timer should return true")
	}
	if s.Cancel(h) {
		t.Error("second Cancel() should return false")
	}
	s.Advance(1)

	if fired {
		t.Error("cancelled timer fired")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestCallbackScheduledDuringDispatch(t *testing.T) {
	s := New()
	count := 0
	var tick func()
	tick = func() {
		count++
		s.Schedule(0.1, tick)
	}
	s.Schedule(0.1, tick)

	s.Advance(0.55)

	if count != 5 {
		t.Errorf("chained timer fired %d times in 0.55s, expected 5", count)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 outstanding timer", s.Len())
	}
}

func TestNegativeDelayClampsToNow(t *testing.T) {
	s := New()
	s.Advance(2)
	h := s.Schedule(-3, func() {})

	rem, ok := s.Remaining(h)
	if !ok || rem != 0 {
		t.Errorf("Remaining() = %v, %v; expected 0, true", rem, ok)
	}
}

func TestResetDropsTimers(t *testing.T) {
	s := New()
	fired := false
	h := s.Schedule(1, func() { fired = true })
	s.Advance(0.5)

	s.Reset()
	s.Advance(2)

	if fired || s.Pending(h) || s.Now() != 2 {
		t.Errorf("after Reset: fired=%v pending=%v now=%v", fired, s.Pending(h), s.Now())
	}
}

// Every timer fires exactly once, never before its deadline, and in
// non-decreasing deadline order, however Advance slices the time.
func TestSchedulerOrderingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New()
		delays := rapid.SliceOfN(rapid.Float64Range(0, 10), 1, 40).Draw(t, "delays")
		cancel := rapid.SliceOfN(rapid.Bool(), len(delays), len(delays)).Draw(t, "cancel")

		type firing struct{ due, at float64 }
		var fired []firing
		handles := make([]Handle, len(delays))
		for i, d := range delays {
			due := d
			handles[i] = s.Schedule(d, func() {
				fired = append(fired, firing{due: due, at: s.Now()})
			})
		}
		expected := 0
		for i, c := range cancel {
			if c {
				s.Cancel(handles[i])
			} else {
				expected++
			}
		}

		for s.Now() < 11 {
			s.Advance(rapid.Float64Range(0.01, 3).Draw(t, "dt"))
		}

		if len(fired) != expected {
			t.Fatalf("fired %d timers, expected %d", len(fired), expected)
		}
		if !sort.SliceIsSorted(fired, func(i, j int) bool { return fired[i].due < fired[j].due }) {
			t.Fatalf("timers fired out of order: %v", fired)
		}
		for _, f := range fired {
			if math.Abs(f.at-f.due) > 1e-9 {
				t.Fatalf("timer due %v observed clock %v", f.due, f.at)
			}
		}
	})
}
