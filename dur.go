package caltime

/*
dur.go contains the Duration type: a signed, exact span of elapsed
seconds used by all carry and shift arithmetic in this package.
*/

import (
	"math/big"
	"time"

	inf "gopkg.in/inf.v0"
)

/*
Duration implements a signed span of time measured in seconds with
an exact sub-second [Fraction]. The whole-second part is floored, so
that -0.25s is held as -1 seconds plus a fraction of 0.75.

The zero value is a duration of zero.
*/
type Duration struct {
	secs Integer
	frac Fraction
}

/*
Seconds returns a [Duration] of n whole seconds.
*/
func Seconds(n int64) Duration { return Duration{secs: intOf(n)} }

/*
Minutes returns a [Duration] of n minutes.
*/
func Minutes(n int64) Duration {
	return Duration{secs: intOf(n).Mul(intOf(secondsPerMinute))}
}

/*
Hours returns a [Duration] of n hours.
*/
func Hours(n int64) Duration {
	return Duration{secs: intOf(n).Mul(intOf(secondsPerHour))}
}

/*
NewDuration returns an instance of [Duration] alongside an error
following an attempt to marshal x.

Accepted input types are a decimal string of seconds (e.g. "-90.5"),
a *[inf.Dec] of seconds, an [Integer] of seconds, a [time.Duration]
or a [Duration].
*/
func NewDuration(x any) (d Duration, err error) {
	switch tv := x.(type) {
	case string:
		dec, ok := new(inf.Dec).SetString(trimS(tv))
		if !ok {
			err = invalidErrorf("Invalid decimal string for Duration: ", tv)
		} else {
			d = durationOfDec(dec)
		}
	case *inf.Dec:
		if tv == nil {
			err = invalidErrorf("nil *inf.Dec for Duration")
		} else {
			d = durationOfDec(tv)
		}
	case Integer:
		d = Duration{secs: tv}
	case time.Duration:
		s, ns := floorDivMod(int64(tv), int64(time.Second))
		d = Duration{secs: intOf(s)}
		if ns != 0 {
			d.frac = Fraction{d: inf.NewDec(ns, 9)}
		}
	case Duration:
		d = tv
	default:
		err = invalidErrorf("Unsupported Duration type")
	}

	return
}

// durationOfDec splits dec into floored seconds and a fraction.
func durationOfDec(dec *inf.Dec) Duration {
	floor := new(inf.Dec).Round(dec, 0, inf.RoundFloor)
	rem := new(inf.Dec).Sub(dec, floor)

	d := Duration{secs: bigOf(new(big.Int).Set(floor.UnscaledBig()))}
	if rem.Sign() != 0 {
		d.frac = Fraction{d: rem}
	}
	return d
}

/*
Seconds returns the floored whole-second component of the receiver.
*/
func (r Duration) Seconds() Integer { return r.secs }

/*
Fraction returns the non-negative sub-second component of the receiver.
*/
func (r Duration) Fraction() Fraction { return r.frac }

/*
Dec returns the receiver as a newly allocated *[inf.Dec] of seconds.
*/
func (r Duration) Dec() *inf.Dec {
	whole := inf.NewDecBig(r.secs.Big(), 0)
	return whole.Add(whole, r.frac.decView())
}

/*
Add returns the sum of the receiver and x. Sub-second overflow is
carried into the whole seconds.
*/
func (r Duration) Add(x Duration) Duration {
	secs := r.secs.Add(x.secs)
	if r.frac.IsZero() && x.frac.IsZero() {
		return Duration{secs: secs}
	}

	sum := new(inf.Dec).Add(r.frac.decView(), x.frac.decView())
	if sum.Cmp(decOne) >= 0 {
		sum.Sub(sum, decOne)
		secs = secs.Add(intOf(1))
	}

	d := Duration{secs: secs}
	if sum.Sign() != 0 {
		d.frac = Fraction{d: sum}
	}
	return d
}

/*
Neg returns the negation of the receiver.
*/
func (r Duration) Neg() Duration {
	if r.frac.IsZero() {
		return Duration{secs: r.secs.Neg()}
	}
	// -(s + f) == (-s - 1) + (1 - f)
	return Duration{
		secs: r.secs.Neg().Sub(intOf(1)),
		frac: Fraction{d: new(inf.Dec).Sub(decOne, r.frac.decView())},
	}
}

/*
Sub returns the difference of the receiver and x.
*/
func (r Duration) Sub(x Duration) Duration { return r.Add(x.Neg()) }

/*
Cmp returns -1, 0 or +1 if the receiver is shorter than, equal to or
longer than x respectively.
*/
func (r Duration) Cmp(x Duration) int {
	if c := r.secs.Cmp(x.secs); c != 0 {
		return c
	}
	return r.frac.Cmp(x.frac)
}

/*
Sign returns -1, 0 or +1 depending on the sign of the receiver.
*/
func (r Duration) Sign() int {
	if s := r.secs.Sign(); s != 0 {
		return s
	}
	if r.frac.IsZero() {
		return 0
	}
	return 1
}

/*
String returns the decimal seconds form of the receiver, e.g. "-1.5s".
*/
func (r Duration) String() string {
	return r.Dec().String() + "s"
}
