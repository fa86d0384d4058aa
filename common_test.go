package caltime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cmpOpts compares this package's value types by value rather than
// by representation (e.g. 0.5 and 0.500 are the same Fraction).
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Integer) bool { return a.Eq(b) }),
	cmp.Comparer(func(a, b Fraction) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Duration) bool { return a.Cmp(b) == 0 }),
	cmp.Comparer(func(a, b Offset) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Date) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b TimeOfDay) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b DateTime) bool { return a.Equal(b) }),
}

func mustFraction(t *testing.T, s string) Fraction {
	t.Helper()
	if s == "" {
		return Fraction{}
	}
	f, err := NewFraction(s)
	if err != nil {
		t.Fatalf("%s failed: fraction %q: %v", t.Name(), s, err)
	}
	return f
}

func mustDate(t *testing.T, year any, month, day int) Date {
	t.Helper()
	d, err := NewDate(year, month, day)
	if err != nil {
		t.Fatalf("%s failed: date %v-%d-%d: %v", t.Name(), year, month, day, err)
	}
	return d
}

func mustTimeOfDay(t *testing.T, hour, minute, second int, frac string) TimeOfDay {
	t.Helper()
	tod, err := NewTimeOfDay(hour, minute, second, mustFraction(t, frac))
	if err != nil {
		t.Fatalf("%s failed: time %d:%d:%d: %v", t.Name(), hour, minute, second, err)
	}
	return tod
}

func mustDateTime(t *testing.T, year any, month, day, hour, minute, second int, frac string) DateTime {
	t.Helper()
	return Combine(mustDate(t, year, month, day), mustTimeOfDay(t, hour, minute, second, frac))
}

func TestFloorDivMod(t *testing.T) {
	for idx, tc := range []struct {
		a, b, q, m int64
	}{
		{7, 7, 1, 0},
		{6, 7, 0, 6},
		{-1, 7, -1, 6},
		{-7, 7, -1, 0},
		{-8, 7, -2, 6},
		{0, 86400, 0, 0},
	} {
		if q, m := floorDivMod(tc.a, tc.b); q != tc.q || m != tc.m {
			t.Errorf("%s[%d] failed: %d/%d want (%d, %d), got (%d, %d)",
				t.Name(), idx, tc.a, tc.b, tc.q, tc.m, q, m)
		}
	}
}

func TestPadding(t *testing.T) {
	for idx, tc := range []struct {
		got, want string
	}{
		{pad2(0), "00"},
		{pad2(5), "05"},
		{pad2(12), "12"},
		{pad4("7"), "0007"},
		{pad4("-44"), "-0044"},
		{pad4("1970"), "1970"},
		{pad4("12345"), "12345"},
	} {
		if tc.got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, tc.got)
		}
	}
}
