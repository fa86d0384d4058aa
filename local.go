package caltime

/*
local.go implements the Local view: a reference-scale value presented
through a local offset.
*/

/*
Local implements a read/write view of a reference-scale value of type
T as observed from the frame described by an [Offset].

The reference value is the single source of truth. When the offset is
[Unknown] or Known(0), every field passes through to it unchanged.
Otherwise fields are read from the reference value shifted forward by
the offset, and written by shifting forward, applying the change and
shifting back by the same offset.

For a total-shift-safe T (i.e. [DateTime]) none of this can fail; see
[ViewOf]. For other types (i.e. [TimeOfDay]) any failure to shift is
returned as an error for which [IsShiftViolation] is true.
*/
type Local[T Viewable[T]] struct {
	ref T
	off Offset
}

/*
NewLocal returns a [Local] view of the reference-scale value ref through
offset off, alongside an error if off is not valid.
*/
func NewLocal[T Viewable[T]](ref T, off Offset) (l Local[T], err error) {
	if err = off.Valid(); err == nil {
		l = Local[T]{ref: ref, off: off}
	}
	return
}

/*
LocalFromView returns the [Local] view through offset off whose fields
are those of view. In other words, view is shifted back onto the
reference scale.
*/
func LocalFromView[T Viewable[T]](view T, off Offset) (l Local[T], err error) {
	if err = off.Valid(); err != nil {
		return
	}

	var ref T
	if ref, err = unshift(view, off); err == nil {
		l = Local[T]{ref: ref, off: off}
	}
	return
}

/*
Reference returns the reference-scale value of the receiver instance.
*/
func (r Local[T]) Reference() T { return r.ref }

/*
Offset returns the offset of the receiver instance.
*/
func (r Local[T]) Offset() Offset { return r.off }

/*
WithOffset returns a view of the same reference value through off.
*/
func (r Local[T]) WithOffset(off Offset) (Local[T], error) {
	return NewLocal(r.ref, off)
}

/*
View returns the reference value shifted into the local frame.
*/
func (r Local[T]) View() (T, error) {
	return shift(r.ref, r.off)
}

func shift[T Viewable[T]](v T, off Offset) (T, error) {
	m := off.shifting()
	if m == 0 {
		return v, nil
	}
	out, err := v.Shift(m)
	debugShift(v, m, out, err)
	return out, shiftViolation(err)
}

func unshift[T Viewable[T]](v T, off Offset) (T, error) {
	m := off.shifting()
	if m == 0 {
		return v, nil
	}
	out, err := v.Shift(-m)
	debugShift(v, -m, out, err)
	return out, shiftViolation(err)
}

/*
Update returns the view which results from applying fn to the local
frame value. The receiver's offset is retained. An error is returned
if fn fails or if either shift fails.
*/
func (r Local[T]) Update(fn func(T) (T, error)) (l Local[T], err error) {
	var v T
	if v, err = r.View(); err != nil {
		return
	}
	if v, err = fn(v); err != nil {
		return
	}

	var ref T
	if ref, err = unshift(v, r.off); err == nil {
		l = Local[T]{ref: ref, off: r.off}
	}
	return
}

func localField[T Viewable[T], V any](r Local[T], get func(T) V) (val V, err error) {
	var v T
	if v, err = r.View(); err == nil {
		val = get(v)
	}
	return
}

/*
Hour returns the hour as observed in the local frame.
*/
func (r Local[T]) Hour() (int, error) { return localField(r, func(v T) int { return v.Hour() }) }

/*
Minute returns the minute as observed in the local frame.
*/
func (r Local[T]) Minute() (int, error) { return localField(r, func(v T) int { return v.Minute() }) }

/*
Second returns the second as observed in the local frame.
*/
func (r Local[T]) Second() (int, error) { return localField(r, func(v T) int { return v.Second() }) }

/*
Fraction returns the sub-second fraction as observed in the local frame.
*/
func (r Local[T]) Fraction() (Fraction, error) { return localField(r, func(v T) Fraction { return v.Fraction() }) }

func localDateField[T Viewable[T], V any](r Local[T], get func(DateFields) V) (val V, err error) {
	var v T
	if v, err = r.View(); err != nil {
		return
	}
	if d, ok := any(v).(DateFields); ok {
		val = get(d)
	} else {
		err = errorNoDateFields
	}
	return
}

/*
Year returns the year as observed in the local frame. An error is
returned if T bears no date fields.
*/
func (r Local[T]) Year() (Integer, error) {
	return localDateField(r, func(d DateFields) Integer { return d.Year() })
}

/*
Month returns the month as observed in the local frame.
*/
func (r Local[T]) Month() (int, error) {
	return localDateField(r, func(d DateFields) int { return d.Month() })
}

/*
Day returns the day of the month as observed in the local frame.
*/
func (r Local[T]) Day() (int, error) {
	return localDateField(r, func(d DateFields) int { return d.Day() })
}

func (r Local[T]) updateDate(set func(DateSetter[T]) (T, error)) (Local[T], error) {
	return r.Update(func(v T) (T, error) {
		if ds, ok := any(v).(DateSetter[T]); ok {
			return set(ds)
		}
		var zero T
		return zero, errorNoDateFields
	})
}

/*
SetYear returns the view whose local-frame year is y.
*/
func (r Local[T]) SetYear(y any) (Local[T], error) {
	return r.updateDate(func(ds DateSetter[T]) (T, error) { return ds.SetYear(y) })
}

/*
SetMonth returns the view whose local-frame month is m.
*/
func (r Local[T]) SetMonth(m int) (Local[T], error) {
	return r.updateDate(func(ds DateSetter[T]) (T, error) { return ds.SetMonth(m) })
}

/*
SetDay returns the view whose local-frame day of the month is d.
*/
func (r Local[T]) SetDay(d int) (Local[T], error) {
	return r.updateDate(func(ds DateSetter[T]) (T, error) { return ds.SetDay(d) })
}

/*
SetHour returns the view whose local-frame hour is h.
*/
func (r Local[T]) SetHour(h int) (Local[T], error) {
	return r.Update(func(v T) (T, error) { return v.SetHour(h) })
}

/*
SetMinute returns the view whose local-frame minute is m.
*/
func (r Local[T]) SetMinute(m int) (Local[T], error) {
	return r.Update(func(v T) (T, error) { return v.SetMinute(m) })
}

/*
SetSecond returns the view whose local-frame second is s.
*/
func (r Local[T]) SetSecond(s int) (Local[T], error) {
	return r.Update(func(v T) (T, error) { return v.SetSecond(s) })
}

/*
SetFraction returns the view whose local-frame fraction is f.
*/
func (r Local[T]) SetFraction(f Fraction) (Local[T], error) {
	return r.Update(func(v T) (T, error) { return v.SetFraction(f) })
}

func elapsedOf[T any](v T) (ElapsedConverter[T], error) {
	if ec, ok := any(v).(ElapsedConverter[T]); ok {
		return ec, nil
	}
	return nil, errorNoElapsed
}

/*
Elapsed returns the exact elapsed time of the reference value. The
offset plays no part: two views of one reference value agree.
*/
func (r Local[T]) Elapsed() (d Duration, err error) {
	var ec ElapsedConverter[T]
	if ec, err = elapsedOf(r.ref); err == nil {
		d = ec.Elapsed()
	}
	return
}

/*
ElapsedSeconds returns the whole elapsed seconds of the reference
value; see [DateTime.ElapsedSeconds].
*/
func (r Local[T]) ElapsedSeconds() (n Integer, err error) {
	var ec ElapsedConverter[T]
	if ec, err = elapsedOf(r.ref); err == nil {
		n, err = ec.ElapsedSeconds()
	}
	return
}

/*
FromElapsed returns the view, through the receiver's offset, of the
reference value found d after the epoch of T.
*/
func (r Local[T]) FromElapsed(d Duration) (l Local[T], err error) {
	var ec ElapsedConverter[T]
	if ec, err = elapsedOf(r.ref); err != nil {
		return
	}

	var ref T
	if ref, err = ec.FromElapsed(d); err == nil {
		l = Local[T]{ref: ref, off: r.off}
	}
	return
}

/*
FromElapsedSeconds returns the view, through the receiver's offset, of
the reference value found n whole seconds after the epoch of T.
*/
func (r Local[T]) FromElapsedSeconds(n Integer) (Local[T], error) {
	return r.FromElapsed(Duration{secs: n})
}

/*
String returns the local-frame value followed by the offset, or the
reference value annotated with "!" should the shift fail.
*/
func (r Local[T]) String() string {
	v, err := r.View()
	if err != nil {
		return stringOf(r.ref) + "!" + r.off.String()
	}
	return stringOf(v) + r.off.String()
}

func stringOf(x any) string {
	if s, ok := x.(interface{ String() string }); ok {
		return s.String()
	}
	return "<unknown>"
}

/*
ViewOf returns the local-frame value of l. It compiles only for
total-shift-safe reference types, for which it cannot fail:

	l, _ := NewLocal(dt, Known(-90))
	year := ViewOf(l).Year()
*/
func ViewOf[T TotalViewable[T]](l Local[T]) T {
	m := l.off.shifting()
	if m == 0 {
		return l.ref
	}
	return l.ref.ShiftTotal(m)
}
