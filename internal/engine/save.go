package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
)

// SaveWorkout records the session's meaningful sets as a new log entry and
// returns the session to the exercise list. With no meaningful sets it does
// nothing and returns (nil, nil).
func (s *Service) SaveWorkout(ctx context.Context, sess *Session) (*storage.ExerciseLog, error) {
	ex, ok := sess.Exercise()
	if !ok {
		return nil, ErrNoExercise
	}
	entry, err := s.record(ctx, ex, sess.Sets())
	if err != nil || entry == nil {
		return entry, err
	}
	sess.clearExercise()
	return entry, nil
}

// LogWorkout records sets for exerciseID without an interactive session.
func (s *Service) LogWorkout(ctx context.Context, exerciseID string, sets []storage.SetLog) (*storage.ExerciseLog, error) {
	ex, ok := catalog.Find(exerciseID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, exerciseID)
	}
	return s.record(ctx, ex, sets)
}

func (s *Service) record(ctx context.Context, ex catalog.Exercise, sets []storage.SetLog) (*storage.ExerciseLog, error) {
	valid := MeaningfulSets(sets)
	if len(valid) == 0 {
		s.logger.Debug("nothing to save", zap.String("exercise", ex.ID), zap.Int("rows", len(sets)))
		return nil, nil
	}

	now := s.now().UTC()
	entry := storage.ExerciseLog{
		ID:         s.newID(now),
		ExerciseID: ex.ID,
		Date:       now,
		Sets:       valid,
	}
	if err := s.store.Prepend(ctx, entry); err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}
	s.logger.Info("workout saved",
		zap.String("id", entry.ID),
		zap.String("exercise", ex.ID),
		zap.Int("sets", len(valid)),
		zap.Int("dropped", len(sets)-len(valid)))
	return &entry, nil
}
