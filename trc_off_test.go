//go:build !caltime_debug

package caltime

import "testing"

func TestTracer_codecov(t *testing.T) {
	debugEnter(1, "a")
	debugExit()
	debugInfo(nil)
	debugValidate(CalendarTime{}, nil)
	debugCarry(DateTime{}, int64(1))
	debugShift(TimeOfDay{}, int64(-1), TimeOfDay{}, errorLeavesDay)

	for ev, name := range eventNames {
		if got := ev.String(); got != name {
			t.Errorf("%s failed: want %q, got %q", t.Name(), name, got)
		}
	}
	if got := EventType(3).String(); got != "" {
		t.Errorf("%s failed: composite event should have no name, got %q", t.Name(), got)
	}
}
