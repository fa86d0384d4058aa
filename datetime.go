package caltime

/*
datetime.go implements the DateTime type, which composes a Date and a
TimeOfDay and owns all carry between them.
*/

/*
DateTime implements a calendar day and a clock reading on the reference
time scale. It exposes the fields of its [Date] and [TimeOfDay] by
delegation and converts to and from a single count of seconds elapsed
since 1970-01-01T00:00:00.

Equality and ordering are defined solely by that elapsed count. The
zero value is 1970-01-01T00:00:00.
*/
type DateTime struct {
	date Date
	tod  TimeOfDay
}

/*
NewDateTime returns an instance of [DateTime] alongside an error
following an attempt to assemble the given fields. The year may be any
value accepted by [NewInteger].
*/
func NewDateTime(year any, month, day, hour, minute, second int, frac Fraction, constraints ...Constraint[DateTime]) (dt DateTime, err error) {
	var (
		d Date
		t TimeOfDay
	)

	if d, err = NewDate(year, month, day); err != nil {
		return
	} else if t, err = NewTimeOfDay(hour, minute, second, frac); err != nil {
		return
	}

	_dt := Combine(d, t)
	if len(constraints) > 0 {
		var group ConstraintGroup[DateTime] = constraints
		if err = group.Constrain(_dt); err != nil {
			return
		}
	}
	dt = _dt

	return
}

/*
Combine returns the [DateTime] composed of d and t.
*/
func Combine(d Date, t TimeOfDay) DateTime { return DateTime{date: d, tod: t} }

/*
DateTimeFromElapsed returns the [DateTime] found d after the epoch.
The conversion is exact and defined for any d.
*/
func DateTimeFromElapsed(d Duration) DateTime {
	days, sod := d.Seconds().DivMod(secondsPerDay)
	// sod is within [0, 86400) by construction
	t, _ := TimeOfDayFromElapsed(Duration{secs: intOf(sod), frac: d.Fraction()})
	return DateTime{date: DateFromDayCount(days), tod: t}
}

/*
DateTimeFromElapsedSeconds returns the [DateTime] found n whole seconds
after the epoch.
*/
func DateTimeFromElapsedSeconds(n Integer) DateTime {
	return DateTimeFromElapsed(Duration{secs: n})
}

/*
Date returns the [Date] component of the receiver instance.
*/
func (r DateTime) Date() Date { return r.date }

/*
TimeOfDay returns the [TimeOfDay] component of the receiver instance.
*/
func (r DateTime) TimeOfDay() TimeOfDay { return r.tod }

func (r DateTime) Year() Integer      { return r.date.Year() }
func (r DateTime) Month() int         { return r.date.Month() }
func (r DateTime) Day() int           { return r.date.Day() }
func (r DateTime) Hour() int          { return r.tod.Hour() }
func (r DateTime) Minute() int        { return r.tod.Minute() }
func (r DateTime) Second() int        { return r.tod.Second() }
func (r DateTime) Fraction() Fraction { return r.tod.Fraction() }

func (r DateTime) withDate(d Date, err error) (DateTime, error) {
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, tod: r.tod}, nil
}

func (r DateTime) withTime(t TimeOfDay, err error) (DateTime, error) {
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: r.date, tod: t}, nil
}

/*
SetYear returns a copy of the receiver bearing year y; see [Date.SetYear].
*/
func (r DateTime) SetYear(y any) (DateTime, error) { return r.withDate(r.date.SetYear(y)) }

/*
SetMonth returns a copy of the receiver bearing month m; see [Date.SetMonth].
*/
func (r DateTime) SetMonth(m int) (DateTime, error) { return r.withDate(r.date.SetMonth(m)) }

/*
SetDay returns a copy of the receiver bearing day d; see [Date.SetDay].
*/
func (r DateTime) SetDay(d int) (DateTime, error) { return r.withDate(r.date.SetDay(d)) }

/*
SetHour returns a copy of the receiver bearing hour h. Unlike
[DateTime.AddHours], no carry into the date occurs.
*/
func (r DateTime) SetHour(h int) (DateTime, error) { return r.withTime(r.tod.SetHour(h)) }

/*
SetMinute returns a copy of the receiver bearing minute m.
*/
func (r DateTime) SetMinute(m int) (DateTime, error) { return r.withTime(r.tod.SetMinute(m)) }

/*
SetSecond returns a copy of the receiver bearing second s.
*/
func (r DateTime) SetSecond(s int) (DateTime, error) { return r.withTime(r.tod.SetSecond(s)) }

/*
SetFraction returns a copy of the receiver bearing fraction f.
*/
func (r DateTime) SetFraction(f Fraction) (DateTime, error) {
	return r.withTime(r.tod.SetFraction(f))
}

/*
Elapsed returns the exact span from the epoch to the receiver.
*/
func (r DateTime) Elapsed() Duration {
	return r.date.Elapsed().Add(r.tod.Elapsed())
}

/*
ElapsedSeconds returns the number of whole seconds from the epoch to
the receiver. An error is returned if the receiver bears a non-zero
fraction, as such an instant has no whole-second count; use
[DateTime.Elapsed] instead.
*/
func (r DateTime) ElapsedSeconds() (Integer, error) {
	if !r.tod.frac.IsZero() {
		return Integer{}, errorWholeSeconds
	}
	return r.EpochValue(), nil
}

/*
EpochValue returns the number of whole seconds from the epoch to the
receiver, floored. Any fraction is reported by [DateTime.Elapsed].
*/
func (r DateTime) EpochValue() Integer {
	return r.date.midnight().Add(intOf(r.tod.SecondOfDay()))
}

/*
FromElapsedSeconds returns the [DateTime] found n whole seconds after
the epoch. The error is always nil.
*/
func (r DateTime) FromElapsedSeconds(n Integer) (DateTime, error) {
	return DateTimeFromElapsedSeconds(n), nil
}

/*
FromElapsed returns the [DateTime] found d after the epoch. The error
is always nil; see [DateTimeFromElapsed].
*/
func (r DateTime) FromElapsed(d Duration) (DateTime, error) {
	return DateTimeFromElapsed(d), nil
}

/*
AddHours returns the receiver moved by h hours. The hour field wraps
modulo 24 and the surplus (or deficit) of whole days is carried into
the date; this never fails.
*/
func (r DateTime) AddHours(h int64) DateTime {
	total := intOf(int64(r.tod.hour)).Add(intOf(h))
	days, hour := total.DivMod(24)
	debugCarry(r, h, days, hour)

	t := r.tod
	t.hour = int(hour)
	return DateTime{date: r.date.addDays(days), tod: t}
}

/*
AddDays returns the receiver moved by n days; the clock is unaffected.
*/
func (r DateTime) AddDays(n int64) DateTime {
	return DateTime{date: r.date.AddDays(n), tod: r.tod}
}

/*
Add returns the receiver moved by d, carrying through every field.
*/
func (r DateTime) Add(d Duration) DateTime {
	if d.Sign() == 0 {
		return r
	}
	out := DateTimeFromElapsed(r.Elapsed().Add(d))
	debugCarry(r, d, out)
	return out
}

/*
ShiftTotal returns the receiver moved by the given number of minutes.
*/
func (r DateTime) ShiftTotal(minutes int64) DateTime {
	if minutes == 0 {
		return r
	}
	return r.Add(Minutes(minutes))
}

/*
Shift returns the receiver moved by the given number of minutes. The
error is always nil; see [DateTime.ShiftTotal].
*/
func (r DateTime) Shift(minutes int64) (DateTime, error) {
	return r.ShiftTotal(minutes), nil
}

/*
Compare returns -1, 0 or +1 if the receiver is earlier than, the same
instant as or later than x.
*/
func (r DateTime) Compare(x DateTime) int { return r.Elapsed().Cmp(x.Elapsed()) }

/*
Equal returns a Boolean value indicative of r and x being the same
instant.
*/
func (r DateTime) Equal(x DateTime) bool { return r.Compare(x) == 0 }

/*
Before returns a Boolean value indicative of r being earlier than x.
*/
func (r DateTime) Before(x DateTime) bool { return r.Compare(x) < 0 }

/*
After returns a Boolean value indicative of r being later than x.
*/
func (r DateTime) After(x DateTime) bool { return r.Compare(x) > 0 }

/*
String returns the "YYYY-MM-DDThh:mm:ss[.f]" form of the receiver.
*/
func (r DateTime) String() string { return r.date.String() + "T" + r.tod.String() }
