package caltime

/*
offset.go contains the Offset type, the signed minutes difference
between a local frame and the reference time scale.
*/

/*
Offset implements a signed number of minutes by which a local frame
differs from the reference time scale, or the absence of any such
assertion.

Note that [Unknown] is NOT the same value as Known(0): the former
states that no offset was asserted, while the latter asserts that
the local frame coincides with the reference scale. The zero value
of this type is [Unknown].
*/
type Offset struct {
	known   bool
	minutes int
}

/*
Known returns an [Offset] asserting a difference of min minutes. The
return value is not validated; see [Offset.Valid].
*/
func Known(min int) Offset { return Offset{known: true, minutes: min} }

/*
Unknown returns an [Offset] which asserts nothing.
*/
func Unknown() Offset { return Offset{} }

/*
IsKnown returns a Boolean value indicative of the receiver asserting
an offset.
*/
func (r Offset) IsKnown() bool { return r.known }

/*
Minutes returns the asserted number of minutes alongside a Boolean
value indicative of the receiver being known.
*/
func (r Offset) Minutes() (int, bool) { return r.minutes, r.known }

/*
Equal returns a Boolean value indicative of the receiver and x being
the same offset. [Unknown] only equals [Unknown].
*/
func (r Offset) Equal(x Offset) bool { return r == x }

/*
Valid returns an error if the receiver is known and not strictly
within (-1440, 1440) minutes. [Unknown] is always valid.
*/
func (r Offset) Valid() error {
	if r.known && (r.minutes <= -minutesPerDay || r.minutes >= minutesPerDay) {
		return errorBadOffset
	}
	return nil
}

// shifting returns the non-zero number of minutes by which a view
// must be shifted, or zero for a pass-through.
func (r Offset) shifting() int64 {
	if !r.known {
		return 0
	}
	return int64(r.minutes)
}

/*
Duration returns the receiver as a [Duration]; [Unknown] yields zero.
*/
func (r Offset) Duration() Duration { return Minutes(r.shifting()) }

/*
String returns "Z" for a zero offset, "-00:00" for [Unknown] and a
signed "±hh:mm" form otherwise.
*/
func (r Offset) String() string {
	if !r.known {
		return "-00:00"
	} else if r.minutes == 0 {
		return "Z"
	}

	sign, m := "+", r.minutes
	if m < 0 {
		sign, m = "-", -m
	}
	return sign + pad2(m/60) + ":" + pad2(m%60)
}
