package engine

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/tip"
)

type Service struct {
	store  *Store
	tips   tip.Provider
	logger *zap.Logger
	now    func() time.Time
	newID  func(time.Time) string
}

type Option func(*Service)

func WithTipProvider(p tip.Provider) Option {
	return func(s *Service) { s.tips = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock replaces time.Now; tests use it to pin log dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService loads the workout log from kv and wires the collaborators.
func NewService(ctx context.Context, kv storage.KV, opts ...Option) (*Service, error) {
	s := &Service{
		tips:   tip.Static{},
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  newLogID,
	}
	for _, opt := range opts {
		opt(s)
	}

	store, err := LoadStore(ctx, storage.NewLogRepo(kv))
	if err != nil {
		return nil, err
	}
	s.store = store
	s.logger.Debug("log store loaded", zap.Int("entries", store.Len()))
	return s, nil
}

func (s *Service) Store() *Store { return s.store }

func (s *Service) Logs() []storage.ExerciseLog { return s.store.All() }

// Tip asks the provider for a form tip. It never fails.
func (s *Service) Tip(ctx context.Context, exerciseName string) string {
	return s.tips.Tip(ctx, exerciseName)
}

// FetchTip resolves a session's tip request.
func (s *Service) FetchTip(ctx context.Context, req TipRequest) string {
	return s.Tip(ctx, req.ExerciseName)
}

// newLogID returns a time-ordered unique id (UUIDv7), falling back to the
// millisecond timestamp if the generator fails.
func newLogID(now time.Time) string {
	id, err := uuid.NewV7()
	if err != nil {
		return strconv.FormatInt(now.UnixMilli(), 10)
	}
	return id.String()
}
