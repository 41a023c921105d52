package extract

import (
	"strconv"
	"strings"
)

// ParseFloat converts a raw captured substring into a float, tolerating
// thousands separators. The bool reports whether the parse succeeded so
// callers and tests can tell "field absent" from "field present but
// malformed"; externally both end up as an empty cell. A failed parse is
// never an error and never blocks extraction of sibling fields.
func ParseFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInt converts a raw captured substring into an integer with the same
// failure policy as ParseFloat. Thousands separators are stripped so OCR
// output like "1,000" still parses.
func ParseInt(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
