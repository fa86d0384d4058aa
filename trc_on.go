//go:build caltime_debug

package caltime

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

/*
EnvDebugVar defines the environment variable name which can be
leveraged to activate the [DefaultTracer] at runtime. Its value is
a comma-separated list of [EventType] names (e.g. "carry,shift") or
numeric masks; a negative number enables all events.
*/
const EnvDebugVar = "CALTIME_DEBUG"

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer].
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Exit, Carry, et al.
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // parameters or return values
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
DefaultTracer is the package-level [Tracer] implementation, which
emits each record as a structured [logrus.Entry] at debug level.
*/
type DefaultTracer struct {
	mu  sync.Mutex
	log *logrus.Logger
	ll  uint16
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer] writing to
log. A nil log yields a new debug-level logger writing to stderr.
*/
func NewDefaultTracer(log *logrus.Logger) *DefaultTracer {
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
	}
	return &DefaultTracer{log: log}
}

/*
EnableLevel adds [EventType] ev to the events traced by the receiver.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ll |= uint16(ev)
}

/*
DisableLevel removes [EventType] ev from the events traced by the
receiver.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ll &^= uint16(ev)
}

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(ev EventType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ll&uint16(ev) != 0
}

/*
Trace writes [TraceRecord] rec through the receiver's logger. This
method need not be executed by the end user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.Enabled(rec.Type) {
		return
	}

	fields := logrus.Fields{"func": trimFuncName(rec.Func)}
	for i, a := range rec.Args {
		fields["arg"+itoa(i)] = fmtArg(a)
	}
	r.log.WithFields(fields).WithTime(rec.Time).Debug(rec.Type.String())
}

func trimFuncName(full string) string {
	if i := lidx(full, "/"); i >= 0 {
		return full[i+1:]
	}
	return full
}

func fmtArg(x any) string {
	switch tv := x.(type) {
	case nil:
		return "<nil>"
	case error:
		return tv.Error()
	case interface{ String() string }:
		return tv.String()
	}

	s, err := cast.ToStringE(x)
	if err != nil {
		return "<not supported>"
	}
	return s
}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if an environment variable of
[EnvDebugVar] was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = discardTracer{} // default
)

type discardTracer struct{}

func (discardTracer) Trace(_ TraceRecord)      {}
func (discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	if lt, ok := t.(levelTracer); ok && !lt.Enabled(level) {
		return
	}

	fn := "unknown"
	// skip: debugEvent(0), debugXxx(1)
	if pc, _, _, ok := runtime.Caller(2); ok {
		fn = replaceAll(runtime.FuncForPC(pc).Name(), "go-caltime.", "")
	}

	t.Trace(TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: fn,
		Args: args,
	})
}

func debugEnter(args ...any)    { debugEvent(EventEnter, args...) }
func debugExit(args ...any)     { debugEvent(EventExit, args...) }
func debugInfo(args ...any)     { debugEvent(EventInfo, args...) }
func debugValidate(args ...any) { debugEvent(EventValidate, args...) }
func debugCarry(args ...any)    { debugEvent(EventCarry, args...) }
func debugShift(args ...any)    { debugEvent(EventShift, args...) }

// parseDebugMask converts the value of EnvDebugVar into an event mask.
func parseDebugMask(evar string) (mask uint16) {
	for _, tok := range split(evar, ",") {
		tok = lc(trimS(tok))
		if tok == "" {
			continue
		}
		if n, err := cast.ToIntE(tok); err == nil {
			if n < 0 || n > int(EventAll) {
				return uint16(EventAll)
			}
			mask |= uint16(n)
			continue
		}
		for ev, name := range eventNames {
			if name == tok {
				mask |= uint16(ev)
			}
		}
	}
	return
}

func init() {
	if evar := os.Getenv(EnvDebugVar); evar != "" {
		if mask := parseDebugMask(evar); mask != 0 {
			dt := NewDefaultTracer(nil)
			dt.EnableLevel(EventType(mask))
			EnableDebug(dt)
		}
	}
}
