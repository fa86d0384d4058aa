package caltime

/*
int.go contains all types and methods pertaining to the unbounded
Integer type, which backs year values, day counts and elapsed
second counts throughout this package.
*/

import (
	"math"
	"math/big"

	"github.com/spf13/cast"
)

/*
Integer implements an unbounded signed integer. Note that *[big.Int]
is used internally ONLY if the number overflows int64, and that any
such *[big.Int] is never shared with the caller: instances of this
type are immutable.
*/
type Integer struct {
	big    bool
	native int64    // Stores native integer values
	bigInt *big.Int // Stores big.Int values when necessary
}

/*
NewInteger returns an instance of [Integer] supporting any signed
magnitude.

Input types may be any Go integer kind, a base-10 string, a
*[math/big.Int] or an [Integer]. Other kinds are coerced through
[github.com/spf13/cast] where possible.

When the input value is NOT a string and when NO constraints are
utilized, it is safe to shadow the return error.
*/
func NewInteger(v any, constraints ...Constraint[Integer]) (i Integer, err error) {
	switch value := v.(type) {
	case int:
		i = intOf(int64(value))
	case int32:
		i = intOf(int64(value))
	case int64:
		i = intOf(value)
	case uint:
		i = uintOf(uint64(value))
	case uint64:
		i = uintOf(value)
	case *big.Int:
		if value == nil {
			err = invalidErrorf("nil *big.Int for Integer")
		} else {
			i = bigOf(new(big.Int).Set(value))
		}
	case string:
		// Attempt to parse the string in base 10.
		if _i, ok := newBigInt(0).SetString(trimS(value), 10); !ok {
			err = invalidErrorf("Invalid string value for Integer: ", value)
		} else {
			i = bigOf(_i)
		}
	case Integer:
		i = value
	case float32, float64, bool, nil:
		err = invalidErrorf("Unsupported Integer type")
	default:
		var n int64
		if n, err = cast.ToInt64E(v); err != nil {
			err = invalidErrorf("Unsupported Integer type: ", err)
		} else {
			i = intOf(n)
		}
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Integer] = constraints
		err = group.Constrain(i)
	}

	return
}

func intOf(n int64) Integer { return Integer{native: n} }

func uintOf(n uint64) Integer {
	// If the value cannot fit in an int64, use big.Int.
	if n > uint64(math.MaxInt64) {
		return Integer{big: true, bigInt: newBigInt(0).SetUint64(n)}
	}
	return intOf(int64(n))
}

// bigOf normalizes b, demoting it to the native form when it fits.
// b must not be retained by the caller afterwards.
func bigOf(b *big.Int) Integer {
	if b.IsInt64() {
		return Integer{native: b.Int64()}
	}
	return Integer{big: true, bigInt: b}
}

/*
IsBig returns a Boolean value indicative of the receiver instance
exceeding the int64 range.
*/
func (r Integer) IsBig() bool { return r.big }

/*
Big returns a newly allocated *[big.Int] form of the receiver instance.
*/
func (r Integer) Big() *big.Int {
	if r.big {
		return new(big.Int).Set(r.bigInt)
	}
	return newBigInt(r.native)
}

// bigView returns a read-only *big.Int; callers must not mutate it.
func (r Integer) bigView() *big.Int {
	if r.big {
		return r.bigInt
	}
	return newBigInt(r.native)
}

/*
Int64 returns the int64 form of the receiver alongside a Boolean value
indicative of the value fitting.
*/
func (r Integer) Int64() (int64, bool) {
	if r.big {
		return 0, false
	}
	return r.native, true
}

/*
String returns the base-10 string representation of the receiver instance.
*/
func (r Integer) String() string {
	if r.big {
		return r.bigInt.String()
	}
	return fmtInt(r.native, 10)
}

/*
Sign returns -1, 0 or +1 depending on the sign of the receiver.
*/
func (r Integer) Sign() int {
	if r.big {
		return r.bigInt.Sign()
	}
	switch {
	case r.native < 0:
		return -1
	case r.native > 0:
		return 1
	}
	return 0
}

/*
Cmp returns -1, 0 or +1 if the receiver is less than, equal to or
greater than x respectively.
*/
func (r Integer) Cmp(x Integer) int {
	if !r.big && !x.big {
		switch {
		case r.native < x.native:
			return -1
		case r.native > x.native:
			return 1
		}
		return 0
	}
	return r.bigView().Cmp(x.bigView())
}

/*
Eq returns a bool indicative of an equality match between the
receiver instance and x.
*/
func (r Integer) Eq(x Integer) bool { return r.Cmp(x) == 0 }

/*
Ne returns a bool indicative of a negative equality match between
the receiver instance and x.
*/
func (r Integer) Ne(x Integer) bool { return r.Cmp(x) != 0 }

/*
Gt returns a bool indicative of r being greater than x.
*/
func (r Integer) Gt(x Integer) bool { return r.Cmp(x) > 0 }

/*
Ge returns a bool indicative of r being greater than or equal to x.
*/
func (r Integer) Ge(x Integer) bool { return r.Cmp(x) >= 0 }

/*
Lt returns a bool indicative of r being less than x.
*/
func (r Integer) Lt(x Integer) bool { return r.Cmp(x) < 0 }

/*
Le returns a bool indicative of r being less than or equal to x.
*/
func (r Integer) Le(x Integer) bool { return r.Cmp(x) <= 0 }

/*
Add returns the sum of the receiver and x.
*/
func (r Integer) Add(x Integer) Integer {
	if !r.big && !x.big {
		s := r.native + x.native
		// overflow iff both operands share a sign the sum lacks
		if (s > r.native) == (x.native > 0) {
			return intOf(s)
		}
	}
	return bigOf(new(big.Int).Add(r.bigView(), x.bigView()))
}

/*
Sub returns the difference of the receiver and x.
*/
func (r Integer) Sub(x Integer) Integer {
	return r.Add(x.Neg())
}

/*
Neg returns the negation of the receiver.
*/
func (r Integer) Neg() Integer {
	if !r.big && r.native != math.MinInt64 {
		return intOf(-r.native)
	}
	return bigOf(new(big.Int).Neg(r.bigView()))
}

/*
Mul returns the product of the receiver and x.
*/
func (r Integer) Mul(x Integer) Integer {
	if !r.big && !x.big {
		const lim = 1 << 31
		if r.native > -lim && r.native < lim && x.native > -lim && x.native < lim {
			return intOf(r.native * x.native)
		}
	}
	return bigOf(new(big.Int).Mul(r.bigView(), x.bigView()))
}

/*
DivMod returns the floored quotient and the non-negative modulus
of the receiver divided by n, which must be positive.
*/
func (r Integer) DivMod(n int64) (q Integer, m int64) {
	if n <= 0 {
		panic("caltime: DivMod by non-positive divisor")
	}
	if !r.big {
		var _q int64
		_q, m = floorDivMod(r.native, n)
		return intOf(_q), m
	}

	// big.Int.DivMod implements Euclidean division, which
	// agrees with floored division for positive divisors.
	bq, bm := new(big.Int).DivMod(r.bigInt, newBigInt(n), new(big.Int))
	return bigOf(bq), bm.Int64()
}
