package pipeline

import (
	"math"
	"strconv"
	"strings"
)

// AttemptsSentinel marks an attempts cell that could not be parsed as a whole
// number. It never equals zero, so malformed rows can never land in the
// new-customer cohort.
const AttemptsSentinel = -1

// NormalizeAttempts coerces an attempts-sent cell to an integer. Accepts
// plain integers and whole-valued decimals with either separator ("3",
// "3.0", "3,0"). Anything else degrades to AttemptsSentinel; this function
// never fails.
func NormalizeAttempts(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return AttemptsSentinel
	}

	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return AttemptsSentinel
	}
	if f != math.Trunc(f) {
		return AttemptsSentinel
	}

	return int(f)
}
