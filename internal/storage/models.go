package storage

import "time"

// SetLog is one performed set. Field names match the browser backups.
type SetLog struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type ExerciseLog struct {
	ID         string    `json:"id"`
	ExerciseID string    `json:"exerciseId"`
	Date       time.Time `json:"date"`
	Sets       []SetLog  `json:"sets"`
}
