package sched

import "testing"

func TestSlotSetReplacesPending(t *testing.T) {
	s := New()
	sl := NewSlot(s)
	var got []string

	sl.Set(1, func() { got = append(got, "first") })
	sl.Set(2, func() { got = append(got, "second") })

	if s.Len() != 1 {
		t.Fatalf("scheduler holds %d timers, expected 1", s.Len())
	}
	s.Advance(3)

	if len(got) != 1 || got[0] != "second" {
		t.Errorf("fired %v, expected only the replacement", got)
	}
	if sl.Active() {
		t.Error("slot should be idle after firing")
	}
}

func TestSlotClear(t *testing.T) {
	s := New()
	sl := NewSlot(s)
	fired := false
	sl.Set(0.5, func() { fired = true })

	sl.Clear()
	s.Advance(1)

	if fired {
		t.Error("cleared slot fired")
	}
	if sl.Active() || sl.Remaining() != 0 {
		t.Errorf("Active()=%v Remaining()=%v after Clear", sl.Active(), sl.Remaining())
	}
}

func TestSlotRearmFromCallback(t *testing.T) {
	s := New()
	sl := NewSlot(s)
	count := 0
	var fire func()
	fire = func() {
		count++
		if count < 3 {
			sl.Set(0.1, fire)
		}
	}
	sl.Set(0.1, fire)

	s.Advance(1)

	if count != 3 {
		t.Errorf("re-armed slot fired %d times, expected 3", count)
	}
	if s.Len() != 0 {
		t.Errorf("scheduler holds %d timers, expected 0", s.Len())
	}
}

func TestSlotRemaining(t *testing.T) {
	s := New()
	sl := NewSlot(s)
	sl.Set(60, func() {})
	s.Advance(15)

	if r := sl.Remaining(); r != 45 {
		t.Errorf("Remaining() = %v, expected 45", r)
	}
}
