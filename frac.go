package caltime

/*
frac.go contains the Fraction type, the exact sub-second component
of a clock reading.
*/

import (
	inf "gopkg.in/inf.v0"
)

var (
	decZero = inf.NewDec(0, 0)
	decOne  = inf.NewDec(1, 0)
)

/*
Fraction implements an exact, arbitrary-precision decimal fraction of
a second in the range [0, 1). The zero value is a valid fraction of
zero.

Different from [inf.Dec], Fraction never modifies itself: every
operation yields a new value, and the underlying decimal is never
handed to the caller.
*/
type Fraction struct {
	d *inf.Dec
}

/*
NewFraction returns an instance of [Fraction] alongside an error
following an attempt to marshal x, which may be a decimal string
(e.g. "0.125"), a *[inf.Dec] or a [Fraction].
*/
func NewFraction(x any) (f Fraction, err error) {
	var d *inf.Dec
	switch tv := x.(type) {
	case string:
		var ok bool
		if d, ok = new(inf.Dec).SetString(trimS(tv)); !ok {
			err = invalidErrorf("Invalid decimal string for Fraction: ", tv)
		}
	case *inf.Dec:
		if tv == nil {
			err = invalidErrorf("nil *inf.Dec for Fraction")
		} else {
			d = new(inf.Dec).Set(tv)
		}
	case Fraction:
		return tv, nil
	default:
		err = invalidErrorf("Unsupported Fraction type")
	}

	if err == nil {
		f, err = fractionOfDec(d)
	}

	return
}

/*
FractionOf returns an instance of [Fraction] representing the value
unscaled × 10^-scale, e.g. FractionOf(250, 3) is 0.250.
*/
func FractionOf(unscaled int64, scale int) (Fraction, error) {
	return fractionOfDec(inf.NewDec(unscaled, inf.Scale(scale)))
}

// fractionOfDec takes ownership of d.
func fractionOfDec(d *inf.Dec) (Fraction, error) {
	if d.Sign() < 0 || d.Cmp(decOne) >= 0 {
		return Fraction{}, errorBadFraction
	}
	if d.Sign() == 0 {
		return Fraction{}, nil
	}
	return Fraction{d: d}, nil
}

/*
Dec returns a newly allocated *[inf.Dec] form of the receiver instance.
*/
func (r Fraction) Dec() *inf.Dec {
	if r.d == nil {
		return new(inf.Dec).Set(decZero)
	}
	return new(inf.Dec).Set(r.d)
}

// decView returns a read-only decimal; callers must not mutate it.
func (r Fraction) decView() *inf.Dec {
	if r.d == nil {
		return decZero
	}
	return r.d
}

/*
IsZero returns a Boolean value indicative of the receiver being zero.
*/
func (r Fraction) IsZero() bool { return r.d == nil || r.d.Sign() == 0 }

/*
Cmp returns -1, 0 or +1 if the receiver is less than, equal to or
greater than x respectively. Scale is not significant: 0.5 and 0.500
compare as equal.
*/
func (r Fraction) Cmp(x Fraction) int { return r.decView().Cmp(x.decView()) }

/*
Equal returns a Boolean value indicative of r and x denoting the same
fraction.
*/
func (r Fraction) Equal(x Fraction) bool { return r.Cmp(x) == 0 }

/*
String returns the decimal string representation of the receiver instance.
*/
func (r Fraction) String() string {
	if r.d == nil {
		return "0"
	}
	return r.d.String()
}

/*
Milliseconds returns the receiver as a whole number of milliseconds,
or an error if the receiver carries any finer precision.
*/
func (r Fraction) Milliseconds() (int, error) {
	n, ok := r.scaled(3)
	if !ok {
		return 0, errorSubMillisecond
	}
	return int(n), nil
}

/*
Nanoseconds returns the receiver as a whole number of nanoseconds,
or an error if the receiver carries any finer precision.
*/
func (r Fraction) Nanoseconds() (int, error) {
	n, ok := r.scaled(9)
	if !ok {
		return 0, errorSubNanosecond
	}
	return int(n), nil
}

// scaled returns the receiver multiplied by 10^digits when the result
// is integral.
func (r Fraction) scaled(digits int) (int64, bool) {
	if r.IsZero() {
		return 0, true
	}
	rounded := new(inf.Dec).Round(r.d, inf.Scale(digits), inf.RoundDown)
	if rounded.Cmp(r.d) != 0 {
		return 0, false
	}
	return rounded.UnscaledBig().Int64(), true
}
