package caltime

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ExampleDate_SetMonth() {
	d, _ := NewDate(2024, 1, 30)
	if _, err := d.SetMonth(2); err != nil {
		fmt.Println(err)
	}

	d, _ = d.SetDay(29)
	d, _ = d.SetMonth(2)
	fmt.Println(d)
	// Output:
	// INVALID: day out of range for month
	// 2024-02-29
}

func TestDate_DayCount(t *testing.T) {
	for idx, tc := range []struct {
		year       any
		month, day int
		count      string
	}{
		{1970, 1, 1, "0"},
		{1969, 12, 31, "-1"},
		{1970, 1, 2, "1"},
		{2000, 3, 1, "11017"},
		{2024, 1, 1, "19723"},
		{0, 3, 1, "-719468"},
		{0, 1, 1, "-719528"},
		{-1, 12, 31, "-719529"},
		{10000, 1, 1, "2932897"},
	} {
		d := mustDate(t, tc.year, tc.month, tc.day)
		if got := d.DayCount().String(); got != tc.count {
			t.Errorf("%s[%d] failed: %s want day %s, got %s", t.Name(), idx, d, tc.count, got)
		}

		n, _ := NewInteger(tc.count)
		if back := DateFromDayCount(n); !back.Equal(d) {
			t.Errorf("%s[%d] failed: day %s want %s, got %s", t.Name(), idx, tc.count, d, back)
		}
	}
}

func TestDate_roundTrip(t *testing.T) {
	for n := int64(-1_200_000); n <= 1_200_000; n += 997 {
		d := DateFromDayCount(intOf(n))
		if got, _ := d.DayCount().Int64(); got != n {
			t.Fatalf("%s failed: day %d came back as %d (%s)", t.Name(), n, got, d)
		}
		if _, err := NewDate(d.Year(), d.Month(), d.Day()); err != nil {
			t.Fatalf("%s failed: day %d yielded invalid date %s: %v", t.Name(), n, d, err)
		}
	}

	for idx, year := range []string{
		"100000000000000000000",
		"-100000000000000000000",
		"9223372036854775807",
		"-9223372036854775808",
	} {
		for _, md := range [][2]int{{1, 1}, {2, 28}, {3, 1}, {12, 31}} {
			d := mustDate(t, year, md[0], md[1])
			back := DateFromDayCount(d.DayCount())
			if diff := cmp.Diff(d, back, cmpOpts); diff != "" {
				t.Errorf("%s[%d] failed: mismatch (-want +got):\n%s", t.Name(), idx, diff)
			}
			if back.Year().String() != year || back.Month() != md[0] || back.Day() != md[1] {
				t.Errorf("%s[%d] failed: want %s-%d-%d, got %s", t.Name(), idx, year, md[0], md[1], back)
			}
		}
	}
}

func TestDate_monotonic(t *testing.T) {
	prev := mustDate(t, 1899, 12, 25)
	for i := 0; i < 800; i++ {
		next := prev.AddDays(1)
		if !next.After(prev) || !prev.Before(next) {
			t.Fatalf("%s failed: %s should follow %s", t.Name(), next, prev)
		}
		if delta := next.DayCount().Sub(prev.DayCount()); !delta.Eq(intOf(1)) {
			t.Fatalf("%s failed: %s to %s spans %s days", t.Name(), prev, next, delta)
		}
		prev = next
	}
}

func TestDate_setters(t *testing.T) {
	leapDay := mustDate(t, 2024, 2, 29)

	if _, err := leapDay.SetYear(2023); !IsInvalid(err) {
		t.Errorf("%s failed: 2023-02-29 should be rejected, got %v", t.Name(), err)
	}
	if d, err := leapDay.SetYear(2028); err != nil || d.String() != "2028-02-29" {
		t.Errorf("%s failed: want 2028-02-29, got %s (%v)", t.Name(), d, err)
	}
	if _, err := leapDay.SetYear("x"); !IsInvalid(err) {
		t.Errorf("%s failed: bogus year should be rejected, got %v", t.Name(), err)
	}
	if _, err := mustDate(t, 2024, 4, 1).SetDay(31); !IsInvalid(err) {
		t.Errorf("%s failed: April 31 should be rejected, got %v", t.Name(), err)
	}
	if _, err := leapDay.SetMonth(13); !IsInvalid(err) {
		t.Errorf("%s failed: month 13 should be rejected, got %v", t.Name(), err)
	}
	if d, _ := leapDay.SetDay(1); d.Month() != 2 || d.Year().String() != "2024" {
		t.Errorf("%s failed: SetDay altered other fields: %s", t.Name(), d)
	}
}

func TestDate_calendarQueries(t *testing.T) {
	for idx, tc := range []struct {
		d       Date
		weekday time.Weekday
		yearDay int
	}{
		{Date{}, time.Thursday, 1},
		{mustDate(t, 2024, 1, 1), time.Monday, 1},
		{mustDate(t, 2000, 2, 29), time.Tuesday, 60},
		{mustDate(t, 2023, 3, 1), time.Wednesday, 60},
		{mustDate(t, 2024, 12, 31), time.Tuesday, 366},
		{mustDate(t, 1969, 12, 31), time.Wednesday, 365},
	} {
		if wd := tc.d.Weekday(); wd != tc.weekday {
			t.Errorf("%s[%d] failed: %s want %s, got %s", t.Name(), idx, tc.d, tc.weekday, wd)
		}
		if yd := tc.d.YearDay(); yd != tc.yearDay {
			t.Errorf("%s[%d] failed: %s want day %d, got %d", t.Name(), idx, tc.d, tc.yearDay, yd)
		}
	}
}

func TestDate_elapsedSeconds(t *testing.T) {
	d := mustDate(t, 1970, 1, 2)
	if got, err := d.ElapsedSeconds(); err != nil || !got.Eq(intOf(86400)) {
		t.Errorf("%s failed: want 86400, got %s (%v)", t.Name(), got, err)
	}
	if back, err := d.FromElapsed(d.Elapsed()); err != nil || back.String() != d.String() {
		t.Errorf("%s failed: want %s, got %s (%v)", t.Name(), d, back, err)
	}
	span, _ := NewDuration("86400.5")
	if _, err := d.FromElapsed(span); !IsInvalid(err) {
		t.Errorf("%s failed: fractional span should be rejected, got %v", t.Name(), err)
	}

	if back, err := d.FromElapsedSeconds(intOf(-86400)); err != nil || back.String() != "1969-12-31" {
		t.Errorf("%s failed: want 1969-12-31, got %s (%v)", t.Name(), back, err)
	}
	if _, err := d.FromElapsedSeconds(intOf(86401)); !IsInvalid(err) {
		t.Errorf("%s failed: non-midnight should be rejected, got %v", t.Name(), err)
	}
}

func TestDate_String(t *testing.T) {
	for idx, tc := range []struct {
		d    Date
		want string
	}{
		{Date{}, "1970-01-01"},
		{mustDate(t, 7, 3, 5), "0007-03-05"},
		{mustDate(t, -44, 3, 15), "-0044-03-15"},
		{mustDate(t, 12345, 1, 1), "12345-01-01"},
	} {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
	}
}

func TestDate_withConstraint(t *testing.T) {
	min, max := mustDate(t, 2000, 1, 1), mustDate(t, 2099, 12, 31)
	within := TemporalRangeConstraint(min, max)

	if _, err := NewDate(2050, 6, 15, within); err != nil {
		t.Errorf("%s failed: %v", t.Name(), err)
	}
	if _, err := NewDate(1999, 12, 31, within); !IsInvalid(err) {
		t.Errorf("%s failed: expected constraint violation, got %v", t.Name(), err)
	}
}
