package caltime

import (
	"errors"
	"fmt"
	"testing"
)

func TestMkerrf(t *testing.T) {
	if err := mkerrf(); err != nil {
		t.Errorf("%s failed: empty input should yield nil, got %v", t.Name(), err)
	}
	if err := mkerrf(nil); err != nil {
		t.Errorf("%s failed: nil input should yield nil, got %v", t.Name(), err)
	}

	for idx, tc := range []struct {
		parts []any
		want  string
	}{
		{[]any{"Hello ", 5}, "Hello 5"},
		{[]any{"count ", int64(-7)}, "count -7"},
		{[]any{"offset ", Known(-90)}, "offset -01:30"},
		{[]any{errors.New("inner"), "!"}, "inner!"},
		{[]any{"Hello ", struct{}{}}, "Hello <not supported>"},
	} {
		if got := mkerrf(tc.parts...).Error(); got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
	}

	if a, b := mkerrf("cached"), mkerrf("cached"); a != b {
		t.Errorf("%s failed: identical messages should share an error instance", t.Name())
	}
}

func cachedErrors() (n int) {
	errCache.Range(func(_, _ any) bool { n++; return true })
	return
}

func TestMkerrf_valuesNotCached(t *testing.T) {
	late := mustTimeOfDay(t, 23, 0, 0, "")
	_, _ = late.Add(Seconds(3600))
	_, _ = NewInteger("x0")
	before := cachedErrors()

	rng := IntegerRangeConstraint(intOf(0), intOf(9))
	for i := int64(0); i < 10000; i++ {
		if _, err := late.Add(Seconds(3600 + i)); !IsOverflow(err) {
			t.Fatalf("%s failed: expected overflow, got %v", t.Name(), err)
		}
		_, _ = NewInteger(fmt.Sprintf("x%d", i))
		_ = rng(intOf(10 + i))
	}

	if after := cachedErrors(); after != before {
		t.Errorf("%s failed: cache grew from %d to %d entries", t.Name(), before, after)
	}
}

func TestErrorCategories(t *testing.T) {
	for idx, tc := range []struct {
		err                      error
		invalid, overflow, shift bool
		prefix                   string
	}{
		{errorBadYear, true, false, false, "INVALID: "},
		{errorLeavesDay, false, true, false, "OVERFLOW REJECTED: "},
		{shiftViolation(errorLeavesDay), false, true, true, "SHIFT ASSUMPTION VIOLATED: "},
		{shiftViolation(errorBadHour), true, false, true, "SHIFT ASSUMPTION VIOLATED: "},
		{fmt.Errorf("wrapped: %w", errorBadMonth), true, false, false, "wrapped: "},
		{errors.New("other"), false, false, false, "other"},
	} {
		if IsInvalid(tc.err) != tc.invalid || IsOverflow(tc.err) != tc.overflow ||
			IsShiftViolation(tc.err) != tc.shift {
			t.Errorf("%s[%d] failed: category mismatch for %v", t.Name(), idx, tc.err)
		}
		if msg := tc.err.Error(); len(msg) < len(tc.prefix) || msg[:len(tc.prefix)] != tc.prefix {
			t.Errorf("%s[%d] failed: %q lacks prefix %q", t.Name(), idx, msg, tc.prefix)
		}
	}

	if shiftViolation(nil) != nil {
		t.Errorf("%s failed: a nil cause must not be wrapped", t.Name())
	}
	if !errors.Is(shiftViolation(errorLeavesDay), errorLeavesDay) {
		t.Errorf("%s failed: cause unreachable through errors.Is", t.Name())
	}
}
