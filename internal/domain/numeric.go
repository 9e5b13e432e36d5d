package domain

import (
	"math"
	"strconv"
	"strings"
)

// Numeric is a raw numeric form field. It keeps the text exactly as the
// user typed it so a half-filled table round-trips through storage, and
// parses lazily: anything that does not parse to a finite number is
// treated as absent.
type Numeric string

// Num builds a Numeric from a float using the shortest representation.
func Num(v float64) Numeric {
	return Numeric(strconv.FormatFloat(v, 'f', -1, 64))
}

// Float parses the field. ok is false for empty, malformed, NaN or
// infinite input.
func (n Numeric) Float() (float64, bool) {
	s := trimSpace(string(n))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Positive parses the field and additionally requires v > 0.
func (n Numeric) Positive() (float64, bool) {
	v, ok := n.Float()
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// OrZero returns the parsed value or 0 when absent.
func (n Numeric) OrZero() float64 {
	v, _ := n.Float()
	return v
}

// IsBlank reports whether nothing has been typed into the field.
func (n Numeric) IsBlank() bool {
	return trimSpace(string(n)) == ""
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}
