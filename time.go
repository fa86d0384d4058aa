package caltime

/*
time.go contains the capability interfaces shared by all temporal
value types of this package.
*/

/*
EpochValued is qualified by any type which can report its linear
position on its own scale:

  - [Date]: days since 1970-01-01
  - [TimeOfDay]: whole seconds since midnight
  - [DateTime]: whole seconds since 1970-01-01T00:00:00, floored
*/
type EpochValued interface {
	EpochValue() Integer
}

/*
Temporal is a date and/or time interface qualified by instances of
[Date], [TimeOfDay] and [DateTime]. Elapsed reports the exact position
of the value on its scale, fraction included.
*/
type Temporal interface {
	EpochValued
	Elapsed() Duration
	String() string
}

/*
DateFields is qualified by any type bearing calendar date fields.
*/
type DateFields interface {
	Year() Integer
	Month() int
	Day() int
}

/*
DateSetter is qualified by any type whose calendar date fields may be
replaced, yielding a new value of type T or an error.
*/
type DateSetter[T any] interface {
	SetYear(any) (T, error)
	SetMonth(int) (T, error)
	SetDay(int) (T, error)
}

/*
TimeFields is qualified by any type bearing clock fields.
*/
type TimeFields interface {
	Hour() int
	Minute() int
	Second() int
	Fraction() Fraction
}

/*
TimeSetter is qualified by any type whose clock fields may be replaced,
yielding a new value of type T or an error.
*/
type TimeSetter[T any] interface {
	SetHour(int) (T, error)
	SetMinute(int) (T, error)
	SetSecond(int) (T, error)
	SetFraction(Fraction) (T, error)
}

/*
ElapsedConverter is qualified by any type which converts to and from
its elapsed time. The From methods ignore the receiver's own value.

Elapsed and FromElapsed are exact. ElapsedSeconds returns an error,
rather than rounding, for any value bearing a non-zero fraction; in
all other cases FromElapsedSeconds restores the original value.
*/
type ElapsedConverter[T any] interface {
	Elapsed() Duration
	FromElapsed(Duration) (T, error)
	ElapsedSeconds() (Integer, error)
	FromElapsedSeconds(Integer) (T, error)
}

/*
Shifter is qualified by any type which can be moved by a signed number
of minutes. The shift MAY fail.
*/
type Shifter[T any] interface {
	Shift(minutes int64) (T, error)
}

/*
TotalShifter marks types for which a shift by any number of minutes
always succeeds. [DateTime] qualifies; [TimeOfDay] does not, as its
shifts are confined to a single day.
*/
type TotalShifter[T any] interface {
	ShiftTotal(minutes int64) T
}

/*
Viewable is the contract required of the reference value held by a
[Local] view.
*/
type Viewable[T any] interface {
	TimeFields
	TimeSetter[T]
	Shifter[T]
}

/*
TotalViewable narrows [Viewable] to total-shift-safe types. See [ViewOf].
*/
type TotalViewable[T any] interface {
	Viewable[T]
	TotalShifter[T]
}

var (
	_ Temporal                    = Date{}
	_ DateFields                  = Date{}
	_ DateSetter[Date]            = Date{}
	_ ElapsedConverter[Date]      = Date{}
	_ Temporal                    = TimeOfDay{}
	_ Viewable[TimeOfDay]         = TimeOfDay{}
	_ ElapsedConverter[TimeOfDay] = TimeOfDay{}
	_ Temporal                    = DateTime{}
	_ DateFields                  = DateTime{}
	_ DateSetter[DateTime]        = DateTime{}
	_ TotalViewable[DateTime]     = DateTime{}
	_ ElapsedConverter[DateTime]  = DateTime{}
)
