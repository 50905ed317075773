package flaget

import "strconv"

// Coerce converts a raw flag value into a typed Value: "true" and "false"
// become booleans, integer and decimal literals (an optional leading minus,
// digits, optionally a point followed by digits) become numbers, and
// everything else is returned as a string.
func Coerce(raw string) Value {
	switch raw {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if isNumeric(raw) {
		// syntax is already checked; out-of-range literals saturate to ±Inf
		n, _ := strconv.ParseFloat(raw, 64)
		return Number(n)
	}
	return String(raw)
}

// isNumeric matches -?[0-9]+(\.[0-9]+)? against the whole string
func isNumeric(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	frac := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i > frac && i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
