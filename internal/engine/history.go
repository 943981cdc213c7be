package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
)

// DayLabelLayout renders e.g. "Wednesday, May 1".
const DayLabelLayout = "Monday, Jan 2"

type DayGroup struct {
	Label string
	Day   time.Time // midnight in the grouping location
	Logs  []storage.ExerciseLog
}

// GroupByDay buckets logs by calendar day in loc. Groups come out in the
// order their first entry appears in logs, entries keep their log order.
func GroupByDay(logs []storage.ExerciseLog, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}
	var groups []DayGroup
	index := map[string]int{}
	for _, l := range logs {
		t := l.Date.In(loc)
		key := t.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DayGroup{
				Label: t.Format(DayLabelLayout),
				Day:   time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc),
			})
		}
		groups[i].Logs = append(groups[i].Logs, l)
	}
	return groups
}

// RecentDays keeps the groups whose day falls within the n calendar days
// ending on now's day, in now's location. n <= 0 keeps every group.
func RecentDays(groups []DayGroup, now time.Time, n int) []DayGroup {
	if n <= 0 {
		return groups
	}
	cutoff := time.Date(now.Year(), now.Month(), now.Day()-(n-1), 0, 0, 0, 0, now.Location())
	var out []DayGroup
	for _, g := range groups {
		if !g.Day.Before(cutoff) {
			out = append(out, g)
		}
	}
	return out
}

// PreviousAttempt returns the most recently prepended entry for exerciseID.
func PreviousAttempt(logs []storage.ExerciseLog, exerciseID string) *storage.ExerciseLog {
	for i := range logs {
		if logs[i].ExerciseID == exerciseID {
			l := logs[i]
			return &l
		}
	}
	return nil
}

// History groups the current store by day.
func (s *Service) History(loc *time.Location) []DayGroup {
	return GroupByDay(s.store.All(), loc)
}

func (s *Service) PreviousAttempt(exerciseID string) *storage.ExerciseLog {
	return PreviousAttempt(s.store.All(), exerciseID)
}

// SetSummary renders a set as "60kg × 8".
func SetSummary(set storage.SetLog) string {
	return fmt.Sprintf("%skg × %d", strconv.FormatFloat(set.Weight, 'f', -1, 64), set.Reps)
}

// TotalVolume is Σ weight·reps over the entry's sets.
func TotalVolume(l storage.ExerciseLog) float64 {
	var v float64
	for _, s := range l.Sets {
		v += s.Weight * float64(s.Reps)
	}
	return v
}
