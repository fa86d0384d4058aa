//go:build !caltime_debug

package caltime

func debugEnter(_ ...any)    {}
func debugExit(_ ...any)     {}
func debugInfo(_ ...any)     {}
func debugValidate(_ ...any) {}
func debugCarry(_ ...any)    {}
func debugShift(_ ...any)    {}
