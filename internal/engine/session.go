package engine

import (
	"fmt"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
)

type Stage int

const (
	StageIdle Stage = iota
	StageBodyPartChosen
	StageExerciseInProgress
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageBodyPartChosen:
		return "body-part"
	case StageExerciseInProgress:
		return "exercise"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

type TipStatus int

const (
	TipNone TipStatus = iota
	TipLoading
	TipReady
)

// LoadingTip is displayed while a tip fetch is in flight.
const LoadingTip = "Loading insight..."

// TipRequest tags one tip fetch with the selection that started it.
type TipRequest struct {
	ExerciseID   string
	ExerciseName string
	Generation   uint64
}

// Session is the transient drill-down state of the Log view.
// It is not safe for concurrent use; the UI loop owns it.
type Session struct {
	bodyPart catalog.BodyPart
	exercise *catalog.Exercise
	sets     []storage.SetLog

	tipStatus TipStatus
	tipText   string

	// generation changes whenever the exercise selection changes, so a tip
	// fetched for an earlier selection of the same exercise is still stale.
	generation uint64
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Stage() Stage {
	switch {
	case s.exercise != nil:
		return StageExerciseInProgress
	case s.bodyPart != "":
		return StageBodyPartChosen
	default:
		return StageIdle
	}
}

func (s *Session) BodyPart() (catalog.BodyPart, bool) {
	return s.bodyPart, s.bodyPart != ""
}

func (s *Session) Exercise() (catalog.Exercise, bool) {
	if s.exercise == nil {
		return catalog.Exercise{}, false
	}
	return *s.exercise, true
}

// Sets returns the in-progress sets. Callers must not modify the slice.
func (s *Session) Sets() []storage.SetLog {
	return s.sets
}

// Tip returns the text to display and the tip state.
func (s *Session) Tip() (string, TipStatus) {
	switch s.tipStatus {
	case TipLoading:
		return LoadingTip, TipLoading
	case TipReady:
		return s.tipText, TipReady
	default:
		return "", TipNone
	}
}

// ChooseBodyPart moves Idle → BodyPartChosen. Switching parts while the
// exercise list is shown is allowed; while an exercise is in progress it is not.
func (s *Session) ChooseBodyPart(bp catalog.BodyPart) error {
	if !bp.IsValid() {
		return fmt.Errorf("invalid body part: %q", bp)
	}
	if s.exercise != nil {
		return ErrExerciseInProgress
	}
	s.bodyPart = bp
	return nil
}

// ChooseExercise moves BodyPartChosen → ExerciseInProgress, seeds one zeroed
// set and marks the tip as loading. The returned request must be passed back
// to ApplyTip once the fetch resolves.
func (s *Session) ChooseExercise(ex catalog.Exercise) (TipRequest, error) {
	switch {
	case s.bodyPart == "":
		return TipRequest{}, ErrNoBodyPart
	case s.exercise != nil:
		return TipRequest{}, ErrExerciseInProgress
	case ex.BodyPart != s.bodyPart:
		return TipRequest{}, fmt.Errorf("%s is not a %s exercise", ex.Name, s.bodyPart)
	}

	picked := ex
	s.exercise = &picked
	s.sets = []storage.SetLog{{}}
	s.tipStatus = TipLoading
	s.tipText = ""
	s.generation++

	return TipRequest{
		ExerciseID:   ex.ID,
		ExerciseName: ex.Name,
		Generation:   s.generation,
	}, nil
}

// Back steps back exactly one level. It reports false when already Idle.
func (s *Session) Back() bool {
	switch s.Stage() {
	case StageExerciseInProgress:
		s.clearExercise()
		return true
	case StageBodyPartChosen:
		s.bodyPart = ""
		return true
	default:
		return false
	}
}

// ApplyTip stores a resolved tip unless the selection that requested it is
// gone. It reports whether the tip was applied.
func (s *Session) ApplyTip(req TipRequest, text string) bool {
	if s.exercise == nil || s.exercise.ID != req.ExerciseID || s.generation != req.Generation {
		return false
	}
	s.tipStatus = TipReady
	s.tipText = text
	return true
}

func (s *Session) AddSet() bool {
	if s.exercise == nil {
		return false
	}
	s.sets = AddSet(s.sets)
	return true
}

func (s *Session) UpdateSet(index int, field SetField, input string) bool {
	if s.exercise == nil {
		return false
	}
	s.sets = UpdateSet(s.sets, index, field, input)
	return true
}

// RemoveSet reports whether a row was actually removed.
func (s *Session) RemoveSet(index int) bool {
	if s.exercise == nil {
		return false
	}
	before := len(s.sets)
	s.sets = RemoveSet(s.sets, index)
	return len(s.sets) != before
}

func (s *Session) clearExercise() {
	s.exercise = nil
	s.sets = nil
	s.tipStatus = TipNone
	s.tipText = ""
	s.generation++
}
