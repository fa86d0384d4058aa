package caltime

/*
tod.go implements the TimeOfDay type: a clock reading confined to a
single day.
*/

/*
TimeOfDay implements a clock reading (hour, minute, second and an exact
sub-second [Fraction]) within a single day. Instances are immutable and
always valid. The zero value is midnight.

No operation of this type carries into a date: arithmetic which would
leave the current day fails. See [DateTime] for rippling arithmetic.
*/
type TimeOfDay struct {
	hour, minute, second int
	frac                 Fraction
}

/*
NewTimeOfDay returns an instance of [TimeOfDay] alongside an error
following an attempt to assemble the given fields.
*/
func NewTimeOfDay(hour, minute, second int, frac Fraction, constraints ...Constraint[TimeOfDay]) (t TimeOfDay, err error) {
	var _t TimeOfDay
	if _t, err = newTimeOfDay(hour, minute, second, frac); err == nil && len(constraints) > 0 {
		var group ConstraintGroup[TimeOfDay] = constraints
		err = group.Constrain(_t)
	}

	if err == nil {
		t = _t
	}

	return
}

func newTimeOfDay(hour, minute, second int, frac Fraction) (TimeOfDay, error) {
	switch {
	case hour < 0 || hour > 23:
		return TimeOfDay{}, errorBadHour
	case minute < 0 || minute > 59:
		return TimeOfDay{}, errorBadMinute
	case second < 0 || second > 59:
		return TimeOfDay{}, errorBadSecond
	}
	return TimeOfDay{hour: hour, minute: minute, second: second, frac: frac}, nil
}

/*
TimeOfDayFromElapsed returns the [TimeOfDay] found d after midnight.
An error is returned if d is negative or reaches the following day.
*/
func TimeOfDayFromElapsed(d Duration) (TimeOfDay, error) {
	s, ok := d.Seconds().Int64()
	if !ok || s < 0 || s >= secondsPerDay {
		return TimeOfDay{}, errorLeavesDay
	}
	return TimeOfDay{
		hour:   int(s / secondsPerHour),
		minute: int(s % secondsPerHour / secondsPerMinute),
		second: int(s % secondsPerMinute),
		frac:   d.Fraction(),
	}, nil
}

/*
Hour returns the hour (0 through 23) of the receiver instance.
*/
func (r TimeOfDay) Hour() int { return r.hour }

/*
Minute returns the minute (0 through 59) of the receiver instance.
*/
func (r TimeOfDay) Minute() int { return r.minute }

/*
Second returns the second (0 through 59) of the receiver instance.
*/
func (r TimeOfDay) Second() int { return r.second }

/*
Fraction returns the sub-second component of the receiver instance.
*/
func (r TimeOfDay) Fraction() Fraction { return r.frac }

/*
SetHour returns a copy of the receiver bearing hour h. No other field
is affected.
*/
func (r TimeOfDay) SetHour(h int) (TimeOfDay, error) {
	return newTimeOfDay(h, r.minute, r.second, r.frac)
}

/*
SetMinute returns a copy of the receiver bearing minute m.
*/
func (r TimeOfDay) SetMinute(m int) (TimeOfDay, error) {
	return newTimeOfDay(r.hour, m, r.second, r.frac)
}

/*
SetSecond returns a copy of the receiver bearing second s.
*/
func (r TimeOfDay) SetSecond(s int) (TimeOfDay, error) {
	return newTimeOfDay(r.hour, r.minute, s, r.frac)
}

/*
SetFraction returns a copy of the receiver bearing fraction f.
*/
func (r TimeOfDay) SetFraction(f Fraction) (TimeOfDay, error) {
	return newTimeOfDay(r.hour, r.minute, r.second, f)
}

/*
SecondOfDay returns the number of whole seconds since midnight.
*/
func (r TimeOfDay) SecondOfDay() int64 {
	return int64(r.hour*secondsPerHour + r.minute*secondsPerMinute + r.second)
}

/*
EpochValue returns [TimeOfDay.SecondOfDay] as an [Integer].
*/
func (r TimeOfDay) EpochValue() Integer { return intOf(r.SecondOfDay()) }

/*
ElapsedSeconds returns the whole number of seconds since midnight. An
error is returned if the receiver bears a non-zero fraction.
*/
func (r TimeOfDay) ElapsedSeconds() (Integer, error) {
	if !r.frac.IsZero() {
		return Integer{}, errorWholeSeconds
	}
	return r.EpochValue(), nil
}

/*
FromElapsedSeconds returns the [TimeOfDay] found n whole seconds after
midnight. An error is returned if n falls outside of [0, 86400).
*/
func (r TimeOfDay) FromElapsedSeconds(n Integer) (TimeOfDay, error) {
	return r.FromElapsed(Duration{secs: n})
}

/*
Elapsed returns the exact span since midnight.
*/
func (r TimeOfDay) Elapsed() Duration {
	return Duration{secs: r.EpochValue(), frac: r.frac}
}

/*
FromElapsed returns the [TimeOfDay] found d after midnight. An error is
returned if d falls outside of [0, 86400).
*/
func (r TimeOfDay) FromElapsed(d Duration) (TimeOfDay, error) {
	t, err := TimeOfDayFromElapsed(d)
	if err != nil {
		err = errorBadSecondOfDay
	}
	return t, err
}

/*
Add returns the receiver moved by d. An error is returned if the result
would leave the current day; the receiver never wraps.
*/
func (r TimeOfDay) Add(d Duration) (TimeOfDay, error) {
	if d.Sign() == 0 {
		return r, nil
	}

	t, err := TimeOfDayFromElapsed(r.Elapsed().Add(d))
	if err != nil {
		err = overflowErrorf("time ", r, " moved by ", d, " leaves the current day")
	}
	return t, err
}

/*
Shift returns the receiver moved by the given number of minutes, or an
error if the result would leave the current day.
*/
func (r TimeOfDay) Shift(minutes int64) (TimeOfDay, error) {
	return r.Add(Minutes(minutes))
}

/*
Compare returns -1, 0 or +1 if the receiver is earlier than, equal to
or later than x.
*/
func (r TimeOfDay) Compare(x TimeOfDay) int { return r.Elapsed().Cmp(x.Elapsed()) }

/*
Equal returns a Boolean value indicative of r and x being the same
clock reading.
*/
func (r TimeOfDay) Equal(x TimeOfDay) bool { return r.Compare(x) == 0 }

/*
String returns the "hh:mm:ss[.f]" form of the receiver instance.
*/
func (r TimeOfDay) String() string {
	s := pad2(r.hour) + ":" + pad2(r.minute) + ":" + pad2(r.second)
	if !r.frac.IsZero() {
		// strip the leading zero of "0.xyz"
		s += r.frac.String()[1:]
	}
	return s
}
