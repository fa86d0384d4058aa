package caltime

/*
stdtime.go contains conversions between this package's types and
those of the standard library time package.
*/

import (
	"math"
	"time"
)

/*
Unix returns the receiver as seconds since the epoch. An error is
returned if the receiver bears a non-zero fraction (see
[DateTime.ElapsedSeconds]) or if the count does not fit in an int64.
*/
func (r DateTime) Unix() (int64, error) {
	secs, err := r.ElapsedSeconds()
	if err != nil {
		return 0, err
	}
	n, ok := secs.Int64()
	if !ok {
		return 0, errorInt64Range
	}
	return n, nil
}

/*
Cast returns the receiver as a UTC [time.Time]. An error is returned
if the year does not fit in an int or if the fraction carries more
than nanosecond precision; no rounding takes place.
*/
func (r DateTime) Cast() (time.Time, error) {
	return r.castIn(time.UTC)
}

func (r DateTime) castIn(loc *time.Location) (time.Time, error) {
	y, ok := r.Year().Int64()
	if !ok || y > math.MaxInt32 || y < math.MinInt32 {
		return time.Time{}, errorIntRange
	}

	ns, err := r.Fraction().Nanoseconds()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(int(y), time.Month(r.Month()), r.Day(),
		r.Hour(), r.Minute(), r.Second(), ns, loc), nil
}

/*
LocalTime returns l as a [time.Time] in a fixed zone matching its
offset. A view with an [Unknown] offset is returned in UTC.
*/
func LocalTime(l Local[DateTime]) (time.Time, error) {
	mins, known := l.Offset().Minutes()
	if !known {
		return l.Reference().Cast()
	}
	return ViewOf(l).castIn(time.FixedZone("", mins*secondsPerMinute))
}

/*
FromTime returns the [Local] view of t, whose offset is that of t's
zone at that instant. An error is returned if the zone offset is not
a whole number of minutes.
*/
func FromTime(t time.Time) (Local[DateTime], error) {
	name, secs := t.Zone()
	debugInfo(t, name, secs)
	if secs%secondsPerMinute != 0 {
		return Local[DateTime]{}, errorZoneSeconds
	}

	var frac Fraction
	if ns := t.Nanosecond(); ns != 0 {
		frac, _ = FractionOf(int64(ns), 9)
	}

	view := Combine(
		Date{y: intOf(int64(t.Year() - epochYear)), m0: int(t.Month()) - 1, d0: t.Day() - 1},
		TimeOfDay{hour: t.Hour(), minute: t.Minute(), second: t.Second(), frac: frac},
	)

	return LocalFromView(view, Known(secs/secondsPerMinute))
}
