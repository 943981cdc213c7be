package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
)

// ParseWeight coerces user input to a non-negative weight. Anything that is not
// a finite, non-negative number becomes 0.
func ParseWeight(input string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// ParseReps coerces user input to a non-negative rep count. Like parseInt it
// reads the leading digits and ignores the rest, so "8.7" and "8 reps" give 8
// and "1e3" gives 1. No leading digits, a negative sign or a count above
// MaxInt32 give 0.
func ParseReps(input string) int {
	s := strings.TrimSpace(input)
	if strings.HasPrefix(s, "-") {
		return 0
	}
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}

// ParseSet parses "<weight>x<reps>" (also "×" or "*"), e.g. "62.5x8".
// Each side is coerced like the interactive inputs.
func ParseSet(input string) (storage.SetLog, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, sep := range []string{"×", "*"} {
		s = strings.ReplaceAll(s, sep, "x")
	}
	w, r, ok := strings.Cut(s, "x")
	if !ok {
		return storage.SetLog{}, fmt.Errorf("invalid set %q (want <weight>x<reps>)", input)
	}
	return storage.SetLog{Weight: ParseWeight(w), Reps: ParseReps(r)}, nil
}
