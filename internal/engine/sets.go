package engine

import "github.com/soufianesaid-dot/Gymtrackerr/internal/storage"

type SetField int

const (
	FieldWeight SetField = iota
	FieldReps
)

// Meaningful reports whether a set is worth keeping at save time.
func Meaningful(s storage.SetLog) bool {
	return s.Reps > 0 || s.Weight > 0
}

func MeaningfulSets(sets []storage.SetLog) []storage.SetLog {
	out := make([]storage.SetLog, 0, len(sets))
	for _, s := range sets {
		if Meaningful(s) {
			out = append(out, s)
		}
	}
	return out
}

// AddSet returns a new list with a zeroed placeholder row appended.
func AddSet(sets []storage.SetLog) []storage.SetLog {
	out := make([]storage.SetLog, len(sets), len(sets)+1)
	copy(out, sets)
	return append(out, storage.SetLog{})
}

// UpdateSet returns a new list where only element index has field replaced by
// the coerced input. The input list is never modified; an out-of-range index
// returns the input unchanged.
func UpdateSet(sets []storage.SetLog, index int, field SetField, input string) []storage.SetLog {
	if index < 0 || index >= len(sets) {
		return sets
	}
	out := make([]storage.SetLog, len(sets))
	copy(out, sets)
	switch field {
	case FieldWeight:
		out[index].Weight = ParseWeight(input)
	case FieldReps:
		out[index].Reps = ParseReps(input)
	}
	return out
}

// RemoveSet drops element index unless it is the only one left.
func RemoveSet(sets []storage.SetLog, index int) []storage.SetLog {
	if len(sets) <= 1 || index < 0 || index >= len(sets) {
		return sets
	}
	out := make([]storage.SetLog, 0, len(sets)-1)
	out = append(out, sets[:index]...)
	return append(out, sets[index+1:]...)
}
