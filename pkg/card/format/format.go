// Package format converts raw counts into display text for stat cards.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Number format modes.
const (
	Short = "short"
	Long  = "long"
)

// Number formats v for display. Mode "long" (case-insensitive) returns the
// exact digit string; any other mode abbreviates with [K].
//
// Non-finite or negative input is not validated and flows through as-is.
func Number(v float64, mode string) string {
	if strings.EqualFold(mode, Long) {
		return exact(v)
	}
	return K(v)
}

// K abbreviates v with a k/M suffix and one decimal of precision:
//
//	950     -> "950"
//	1000    -> "1k"
//	1500    -> "1.5k"
//	2345678 -> "2.3M"
//
// Values below 1000 in magnitude are returned unabbreviated.
func K(v float64) string {
	abs := math.Abs(v)
	if abs < 1000 || math.IsNaN(v) || math.IsInf(v, 0) {
		return exact(v)
	}
	sign := ""
	if v < 0 {
		sign = "-"
	}
	if k := roundTenth(abs / 1000); k < 1000 {
		return sign + trim(k) + "k"
	}
	return sign + trim(roundTenth(abs/1_000_000)) + "M"
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func trim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func exact(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
