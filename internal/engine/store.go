package engine

import (
	"context"
	"sync"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
)

// Store is the ordered workout log, newest first by construction.
// Every mutation rewrites the whole document through the repo before the
// in-memory list changes, so a failed write leaves both sides as they were.
type Store struct {
	repo *storage.LogRepo

	mu      sync.RWMutex
	logs    []storage.ExerciseLog
	version uint64
}

// LoadStore reads the persisted log once.
func LoadStore(ctx context.Context, repo *storage.LogRepo) (*Store, error) {
	logs, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Store{repo: repo, logs: logs}, nil
}

// All returns a copy of the log in store order.
func (s *Store) All() []storage.ExerciseLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]storage.ExerciseLog, len(s.logs))
	copy(out, s.logs)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}

// Version changes on every successful mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Prepend inserts entry at the front and persists.
func (s *Store) Prepend(ctx context.Context, entry storage.ExerciseLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]storage.ExerciseLog, 0, len(s.logs)+1)
	next = append(next, entry)
	next = append(next, s.logs...)
	return s.commit(ctx, next)
}

// Replace swaps the whole log and persists.
func (s *Store) Replace(ctx context.Context, logs []storage.ExerciseLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]storage.ExerciseLog, len(logs))
	copy(next, logs)
	return s.commit(ctx, next)
}

func (s *Store) commit(ctx context.Context, next []storage.ExerciseLog) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.logs = next
	s.version++
	return nil
}
