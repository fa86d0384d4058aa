package caltime

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                  = errors.New
	itoa       func(int) string                    = strconv.Itoa
	fmtInt     func(int64, int) string             = strconv.FormatInt
	split      func(string, string) []string       = strings.Split
	lc         func(string) string                 = strings.ToLower
	trimS      func(string) string                 = strings.TrimSpace
	hasPfx     func(string, string) bool           = strings.HasPrefix
	lidx       func(string, string) int            = strings.LastIndex
	replaceAll func(string, string, string) string = strings.ReplaceAll
	newBigInt  func(int64) *big.Int                = big.NewInt
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	minutesPerDay    = 24 * 60
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
floorDivMod returns the quotient rounded toward negative infinity
alongside the (always non-negative) modulus of a divided by b. The
value of b must be positive.
*/
func floorDivMod[T constraints.Signed](a, b T) (q, m T) {
	q, m = a/b, a%b
	if m < 0 {
		q--
		m += b
	}
	return
}

// pad2 returns v as a zero-padded two-digit string.
func pad2(v int) string {
	if v < 10 && v >= 0 {
		return "0" + itoa(v)
	}
	return itoa(v)
}

// pad4 zero-pads the string form of a (possibly signed) year.
func pad4(s string) string {
	var neg bool
	if hasPfx(s, "-") {
		neg, s = true, s[1:]
	}
	for len(s) < 4 {
		s = "0" + s
	}
	if neg {
		s = "-" + s
	}
	return s
}
