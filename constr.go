package caltime

/*
constr.go contains constraint and constraint group components which
serve to narrow the values accepted by the constructors and the
validator of this package.
*/

import (
	"golang.org/x/exp/constraints"
)

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance. Evaluation stops at the
first failure.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns a [Constraint] which rejects any value outside
of the inclusive range [min, max].
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) error {
		if val < min || val > max {
			return invalidErrorf("value out of allowed range")
		}
		return nil
	}
}

/*
IntegerRangeConstraint returns a [Constraint] which rejects any [Integer]
outside of the inclusive range [min, max].
*/
func IntegerRangeConstraint(min, max Integer) Constraint[Integer] {
	return func(val Integer) error {
		if val.Lt(min) || val.Gt(max) {
			return invalidErrorf("Integer ", val, " is not in allowed range [",
				min, ", ", max, "]")
		}
		return nil
	}
}

/*
TemporalRangeConstraint returns a [Constraint] which rejects any [Temporal]
value positioned outside of the inclusive range [min, max]. Positions are
compared exactly, including any sub-second fraction.
*/
func TemporalRangeConstraint[T Temporal](min, max T) Constraint[T] {
	return func(val T) error {
		e := val.Elapsed()
		if e.Cmp(min.Elapsed()) < 0 || e.Cmp(max.Elapsed()) > 0 {
			return invalidErrorf("value ", val.String(), " is not in allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

// PropertyConstraint returns a Constraint that applies a user-defined check function.
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}
