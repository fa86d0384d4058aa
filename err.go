package caltime

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

/*
validation errors
*/
var (
	errorBadYear        = invalidErr{mkerr("year out of range [0, 9999]")}
	errorBadMonth       = invalidErr{mkerr("month out of range [1, 12]")}
	errorBadDay         = invalidErr{mkerr("day out of range for month")}
	errorBadMinuteOfDay = invalidErr{mkerr("minute-of-day out of range [0, 1440)")}
	errorBadMillisecond = invalidErr{mkerr("millisecond-of-minute out of range")}
	errorBadOffset      = invalidErr{mkerr("offset out of range (-1440, 1440)")}
	errorBadHour        = invalidErr{mkerr("hour out of range [0, 23]")}
	errorBadMinute      = invalidErr{mkerr("minute out of range [0, 59]")}
	errorBadSecond      = invalidErr{mkerr("second out of range [0, 59]")}
	errorBadFraction    = invalidErr{mkerr("fraction out of range [0, 1)")}
	errorBadSecondOfDay = invalidErr{mkerr("elapsed seconds out of range [0, 86400)")}
	errorNotMidnight    = invalidErr{mkerr("elapsed seconds do not denote a midnight")}
	errorSubMillisecond = invalidErr{mkerr("fraction is not a whole number of milliseconds")}
	errorSubNanosecond  = invalidErr{mkerr("fraction exceeds nanosecond precision")}
	errorZoneSeconds    = invalidErr{mkerr("zone offset is not a whole number of minutes")}
	errorWholeSeconds   = invalidErr{mkerr("fractional instant has no whole elapsed-second count")}
	errorNoDateFields   = invalidErr{mkerr("value bears no calendar date fields")}
	errorNoElapsed      = invalidErr{mkerr("value has no elapsed-time conversion")}
)

/*
overflow errors
*/
var (
	errorLeavesDay  = overflowErr{mkerr("result leaves the current day")}
	errorInt64Range = overflowErr{mkerr("value does not fit in int64")}
	errorIntRange   = overflowErr{mkerr("year does not fit in int")}
)

/*
types which implement the error interface.
*/
type (
	invalidErr  struct{ e error }
	overflowErr struct{ e error }
	shiftErr    struct{ e error }
)

func invalidErrorf(m ...any) error  { return invalidErr{mkerrf(m...)} }
func overflowErrorf(m ...any) error { return overflowErr{mkerrf(m...)} }

// shiftViolation wraps cause, which remains reachable through errors.As.
func shiftViolation(cause error) error {
	if cause == nil {
		return nil
	}
	return shiftErr{cause}
}

func (r invalidErr) Error() string  { return `INVALID: ` + r.e.Error() }
func (r overflowErr) Error() string { return `OVERFLOW REJECTED: ` + r.e.Error() }
func (r shiftErr) Error() string    { return `SHIFT ASSUMPTION VIOLATED: ` + r.e.Error() }

func (r shiftErr) Unwrap() error { return r.e }

/*
IsInvalid returns a Boolean value indicative of err (or any error it
wraps) being a field-range or calendar-consistency rejection.
*/
func IsInvalid(err error) bool {
	var e invalidErr
	return errors.As(err, &e)
}

/*
IsOverflow returns a Boolean value indicative of err (or any error it
wraps) being a same-day arithmetic rejection.
*/
func IsOverflow(err error) bool {
	var e overflowErr
	return errors.As(err, &e)
}

/*
IsShiftViolation returns a Boolean value indicative of err being the
result of a [Local] view failing to shift its reference value.
*/
func IsShiftViolation(err error) bool {
	var e shiftErr
	return errors.As(err, &e)
}

/*
errCache holds errors built from a single constant message. Messages
assembled from values are never stored.
*/
var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		switch s := parts[0].(type) {
		case nil:
			return nil
		case string:
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
			v, _ := errCache.LoadOrStore(s, mkerr(s))
			return v.(error)
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		case interface{ String() string }:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}

	return mkerr(b.String())
}
