package caltime

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags caltime_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. See the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags caltime_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter    EventType = 1 << iota //  1: Called-function begin
	EventInfo                           //  2: Interim function event
	EventExit                           //  4: Called function exit
	EventValidate                       //  8: CalendarTime validation outcomes
	EventCarry                          // 16: DateTime carry/ripple arithmetic
	EventShift                          // 32: Local view shifts
)

var eventNames = map[EventType]string{
	EventAll:      "all",
	EventNone:     "none",
	EventEnter:    "enter",
	EventInfo:     "info",
	EventExit:     "exit",
	EventValidate: "validate",
	EventCarry:    "carry",
	EventShift:    "shift",
}

/*
String returns the lowercase name of the receiver instance, or the
empty string if unknown.
*/
func (r EventType) String() string { return eventNames[r] }
