package caltime

/*
opts.go contains the Options type, which delivers instructions to the
validation process either manually or through the environment.
*/

import (
	"os"
	"sync"

	"github.com/spf13/cast"
)

/*
EnvLegacyMillisecondVar defines the environment variable name which,
when set to a true value (e.g. "1", "true"), makes [DefaultOptions]
report LegacyMillisecondCheck as enabled.
*/
const EnvLegacyMillisecondVar = "CALTIME_LEGACY_MS_CHECK"

/*
Options implements a simple encapsulator for validation options.
*/
type Options struct {
	// LegacyMillisecondCheck, when true, applies the millisecond upper
	// bound (60000) to the minute-of-day field and leaves the millisecond
	// field unchecked. This reproduces the historical behavior of the
	// validator. When false, the millisecond field is itself checked
	// against [0, 61000).
	LegacyMillisecondCheck bool
}

var (
	defOptsOnce sync.Once
	defOpts     Options
)

/*
DefaultOptions returns the [Options] in effect when none are supplied.
The environment is read once, upon first use.
*/
func DefaultOptions() Options {
	defOptsOnce.Do(func() {
		defOpts = optionsFromEnv(os.Getenv)
	})
	return defOpts
}

func optionsFromEnv(getenv func(string) string) (o Options) {
	if v := trimS(getenv(EnvLegacyMillisecondVar)); v != "" {
		// an unparsable value leaves the default in place
		if b, err := cast.ToBoolE(v); err == nil {
			o.LegacyMillisecondCheck = b
		}
	}
	return
}

// pickOptions returns the first of opts, or the defaults.
func pickOptions(opts []Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return DefaultOptions()
}
