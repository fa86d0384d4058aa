package caltime

/*
valid.go implements the CalendarTime record and its validation, the
boundary through which parsers and renderers of textual timestamps
exchange values with this package.
*/

/*
CalendarTime implements a naive, unvalidated calendar-time record.

Instances are typically populated by a parser and checked through
[Validate] (or converted through [CalendarTime.Local], which validates
first). Note that the fields are those observed in the local frame
described by Offset.
*/
type CalendarTime struct {
	Year        int    // 0 through 9999
	Month       int    // 1 through 12
	Day         int    // 1 through 28, 29, 30 or 31
	Minute      int    // minute of day, 0 through 1439
	Millisecond int    // millisecond of minute, 0 through 60999
	Offset      Offset // local offset, or Unknown
}

/*
IsLeapYear returns a Boolean value indicative of year being a leap year
of the proleptic Gregorian calendar. The year may be any value accepted
by [NewInteger]; an unusable value yields false.
*/
func IsLeapYear(year any) bool {
	y, err := NewInteger(year)
	return err == nil && isLeap(y)
}

func isLeap(y Integer) bool {
	_, m4 := y.DivMod(4)
	if m4 != 0 {
		return false
	}
	_, m100 := y.DivMod(100)
	_, m400 := y.DivMod(400)
	return m400 == 0 || m100 != 0
}

/*
DaysIn returns the number of days of month in year, or zero if month
is not within [1, 12].
*/
func DaysIn(month int, year any) int {
	y, err := NewInteger(year)
	if err != nil {
		return 0
	}
	return daysIn(month, isLeap(y))
}

func daysIn(month int, leap bool) (n int) {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		n = 31
	case 4, 6, 9, 11:
		n = 30
	case 2:
		if n = 28; leap {
			n = 29
		}
	}
	return
}

/*
Validate returns the input [CalendarTime] alongside a nil error if all
fields satisfy their range and calendar-consistency rules, or a zero
record alongside an error otherwise. The input is never repaired or
clamped.

Only the first [Options] instance, if any, is used; [DefaultOptions]
applies otherwise.
*/
func Validate(c CalendarTime, opts ...Options) (v CalendarTime, err error) {
	o := pickOptions(opts)
	debugEnter(c, o)
	defer func() { debugExit(v, err) }()

	if err = calendarChecks(o).Constrain(c); err == nil {
		v = c
	}
	debugValidate(c, err)

	return
}

func calendarChecks(o Options) ConstraintGroup[CalendarTime] {
	ms := checkMillisecond
	if o.LegacyMillisecondCheck {
		ms = checkMillisecondLegacy
	}

	return ConstraintGroup[CalendarTime]{
		checkYear,
		checkMonth,
		checkDay,
		checkMinuteOfDay,
		ms,
		checkOffset,
	}
}

func checkYear(c CalendarTime) error {
	if c.Year < 0 || c.Year > 9999 {
		return errorBadYear
	}
	return nil
}

func checkMonth(c CalendarTime) error {
	if c.Month < 1 || c.Month > 12 {
		return errorBadMonth
	}
	return nil
}

func checkDay(c CalendarTime) error {
	if c.Day < 1 || c.Day > daysIn(c.Month, isLeap(intOf(int64(c.Year)))) {
		return errorBadDay
	}
	return nil
}

func checkMinuteOfDay(c CalendarTime) error {
	if c.Minute < 0 || c.Minute >= minutesPerDay {
		return errorBadMinuteOfDay
	}
	return nil
}

func checkMillisecond(c CalendarTime) error {
	if c.Millisecond < 0 || c.Millisecond >= 61000 {
		return errorBadMillisecond
	}
	return nil
}

// checkMillisecondLegacy applies the millisecond bound to the
// minute field, as the historical validator did.
func checkMillisecondLegacy(c CalendarTime) error {
	if c.Minute < 0 || c.Minute >= 60000 {
		return errorBadMillisecond
	}
	return nil
}

func checkOffset(c CalendarTime) error { return c.Offset.Valid() }

/*
Local validates the receiver and returns the [Local] view whose fields,
as seen through the receiver's Offset, are those of the receiver.

A leap second (Millisecond >= 60000) passes [Validate] but cannot be
held by a [TimeOfDay], and is therefore rejected here.
*/
func (r CalendarTime) Local(opts ...Options) (l Local[DateTime], err error) {
	var c CalendarTime
	if c, err = Validate(r, opts...); err != nil {
		return
	}

	var frac Fraction
	if frac, err = FractionOf(int64(c.Millisecond%1000), 3); err != nil {
		return
	}

	var dt DateTime
	if dt, err = NewDateTime(c.Year, c.Month, c.Day,
		c.Minute/60, c.Minute%60, c.Millisecond/1000, frac); err == nil {
		l, err = LocalFromView(dt, c.Offset)
	}

	return
}

/*
CalendarTimeOf returns the validated [CalendarTime] record describing
the fields of l as seen through its offset. An error is returned if
the fraction is not a whole number of milliseconds or if the year is
outside of [0, 9999].
*/
func CalendarTimeOf(l Local[DateTime], opts ...Options) (c CalendarTime, err error) {
	v := ViewOf(l)

	year, ok := v.Year().Int64()
	if !ok || year < 0 || year > 9999 {
		return c, errorBadYear
	}

	var ms int
	if ms, err = v.Fraction().Milliseconds(); err != nil {
		return
	}

	return Validate(CalendarTime{
		Year:        int(year),
		Month:       v.Month(),
		Day:         v.Day(),
		Minute:      v.Hour()*60 + v.Minute(),
		Millisecond: v.Second()*1000 + ms,
		Offset:      l.Offset(),
	}, opts...)
}
