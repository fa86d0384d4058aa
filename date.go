package caltime

/*
date.go implements the Date type: a proleptic Gregorian calendar day
of unbounded year range.
*/

import "time"

const (
	epochYear = 1970

	daysPer400Years = 146097

	// days from 0000-03-01 to 1970-01-01
	epochShift = 719468
)

/*
Date implements a calendar day of the proleptic Gregorian calendar.

The year may be negative or exceed 9999; only [Validate] imposes the
narrower interchange range. Instances are immutable and always denote
a real calendar day: every mutator either returns a valid Date or an
error. The zero value is 1970-01-01.
*/
type Date struct {
	y  Integer // year - 1970
	m0 int     // month - 1
	d0 int     // day - 1
}

/*
NewDate returns an instance of [Date] alongside an error following an
attempt to assemble year, month and day. The year may be any value
accepted by [NewInteger].
*/
func NewDate(year any, month, day int, constraints ...Constraint[Date]) (d Date, err error) {
	var y Integer
	if y, err = NewInteger(year); err != nil {
		return
	}

	var _d Date
	if _d, err = newDate(y, month, day); err == nil && len(constraints) > 0 {
		var group ConstraintGroup[Date] = constraints
		err = group.Constrain(_d)
	}

	if err == nil {
		d = _d
	}

	return
}

func newDate(year Integer, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, errorBadMonth
	}
	if day < 1 || day > daysIn(month, isLeap(year)) {
		return Date{}, errorBadDay
	}
	return Date{y: year.Sub(intOf(epochYear)), m0: month - 1, d0: day - 1}, nil
}

/*
DateFromDayCount returns the [Date] which falls n days after (or, if
negative, before) 1970-01-01. The conversion is exact for any n.
*/
func DateFromDayCount(n Integer) Date {
	// shift to an era-based count beginning 0000-03-01
	era, doe := n.Add(intOf(epochShift)).DivMod(daysPer400Years)

	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153 // March == 0
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}

	year := era.Mul(intOf(400)).Add(intOf(yoe))
	if month <= 2 {
		year = year.Add(intOf(1))
	}

	return Date{y: year.Sub(intOf(epochYear)), m0: int(month - 1), d0: int(day - 1)}
}

/*
Year returns the year of the receiver instance.
*/
func (r Date) Year() Integer { return r.y.Add(intOf(epochYear)) }

/*
Month returns the month (1 through 12) of the receiver instance.
*/
func (r Date) Month() int { return r.m0 + 1 }

/*
Day returns the day of month of the receiver instance.
*/
func (r Date) Day() int { return r.d0 + 1 }

/*
SetYear returns a copy of the receiver bearing year y. An error is
returned if the resulting date does not exist (e.g. February 29 in
a common year).
*/
func (r Date) SetYear(y any) (Date, error) {
	year, err := NewInteger(y)
	if err != nil {
		return Date{}, err
	}
	return newDate(year, r.Month(), r.Day())
}

/*
SetMonth returns a copy of the receiver bearing month m. The day is
not adjusted: setting month 2 on day 30 fails.
*/
func (r Date) SetMonth(m int) (Date, error) {
	return newDate(r.Year(), m, r.Day())
}

/*
SetDay returns a copy of the receiver bearing day d.
*/
func (r Date) SetDay(d int) (Date, error) {
	return newDate(r.Year(), r.Month(), d)
}

/*
DayCount returns the number of days from 1970-01-01 to the receiver.
*/
func (r Date) DayCount() Integer {
	y := r.Year()
	m, d := int64(r.Month()), int64(r.Day())
	if m <= 2 {
		y = y.Sub(intOf(1))
	}

	era, yoe := y.DivMod(400)
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy

	return era.Mul(intOf(daysPer400Years)).Add(intOf(doe - epochShift))
}

/*
EpochValue returns the same value as [Date.DayCount].
*/
func (r Date) EpochValue() Integer { return r.DayCount() }

/*
ElapsedSeconds returns the number of seconds from the epoch to the
midnight which begins the receiver. The error is always nil.
*/
func (r Date) ElapsedSeconds() (Integer, error) { return r.midnight(), nil }

func (r Date) midnight() Integer { return r.DayCount().Mul(intOf(secondsPerDay)) }

/*
Elapsed returns the span from the epoch to the midnight which begins
the receiver.
*/
func (r Date) Elapsed() Duration { return Duration{secs: r.midnight()} }

/*
FromElapsedSeconds returns the [Date] beginning n seconds after the
epoch. An error is returned if n does not fall on a midnight.
*/
func (r Date) FromElapsedSeconds(n Integer) (Date, error) {
	days, rem := n.DivMod(secondsPerDay)
	if rem != 0 {
		return Date{}, errorNotMidnight
	}
	return DateFromDayCount(days), nil
}

/*
FromElapsed returns the [Date] beginning d after the epoch. An error is
returned if d does not fall exactly on a midnight.
*/
func (r Date) FromElapsed(d Duration) (Date, error) {
	if !d.Fraction().IsZero() {
		return Date{}, errorNotMidnight
	}
	return r.FromElapsedSeconds(d.Seconds())
}

/*
AddDays returns the receiver moved by n days.
*/
func (r Date) AddDays(n int64) Date { return r.addDays(intOf(n)) }

func (r Date) addDays(n Integer) Date {
	if n.Sign() == 0 {
		return r
	}
	return DateFromDayCount(r.DayCount().Add(n))
}

/*
Weekday returns the day of the week of the receiver.
*/
func (r Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday
	_, wd := r.DayCount().Add(intOf(int64(time.Thursday))).DivMod(7)
	return time.Weekday(wd)
}

/*
YearDay returns the ordinal day of the year (1 through 366).
*/
func (r Date) YearDay() int {
	n := r.Day()
	for m := 1; m < r.Month(); m++ {
		n += daysIn(m, isLeap(r.Year()))
	}
	return n
}

/*
Compare returns -1, 0 or +1 if the receiver falls before, on or after x.
*/
func (r Date) Compare(x Date) int {
	if c := r.y.Cmp(x.y); c != 0 {
		return c
	}
	switch {
	case r.m0 != x.m0:
		return cmpInt(r.m0, x.m0)
	case r.d0 != x.d0:
		return cmpInt(r.d0, x.d0)
	}
	return 0
}

/*
Equal returns a Boolean value indicative of r and x being the same day.
*/
func (r Date) Equal(x Date) bool { return r.Compare(x) == 0 }

/*
Before returns a Boolean value indicative of r falling before x.
*/
func (r Date) Before(x Date) bool { return r.Compare(x) < 0 }

/*
After returns a Boolean value indicative of r falling after x.
*/
func (r Date) After(x Date) bool { return r.Compare(x) > 0 }

/*
String returns the "YYYY-MM-DD" form of the receiver. Years beyond four
digits are written in full, negative years bear a leading '-'.
*/
func (r Date) String() string {
	return pad4(r.Year().String()) + "-" + pad2(r.Month()) + "-" + pad2(r.Day())
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
