// Package tip supplies one-sentence form tips for an exercise.
//
// Providers never fail: any problem reaching the text service is logged and
// mapped to Fallback.
package tip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Fallback is returned whenever a real tip cannot be produced.
const Fallback = "Focus on controlled movements and full range of motion."

const DefaultModel = "gemini-3-flash-preview"

type Provider interface {
	Tip(ctx context.Context, exerciseName string) string
}

// Prompt builds the request text for one exercise.
func Prompt(exerciseName string) string {
	return fmt.Sprintf("Give me a one-sentence minimalist pro-tip for the gym exercise: %s. Focus on form or mind-muscle connection.", exerciseName)
}

// Static always answers with Fallback. Used when no API key is configured.
type Static struct{}

func (Static) Tip(context.Context, string) string { return Fallback }

// generator is the slice of *genai.Models the Gemini provider needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Gemini struct {
	models  generator
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGemini creates a provider backed by the Gemini API.
func NewGemini(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGemini(client.Models, model, logger), nil
}

func newGemini(models generator, model string, logger *zap.Logger) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gemini{models: models, model: model, logger: logger.Named("tip")}
}

// WithTimeout bounds each call. Zero leaves the caller's context as the only deadline.
func (g *Gemini) WithTimeout(d time.Duration) *Gemini {
	g.timeout = d
	return g
}

func (g *Gemini) Tip(ctx context.Context, exerciseName string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("tip request panicked", zap.String("exercise", exerciseName), zap.Any("panic", r))
			out = Fallback
		}
	}()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(Prompt(exerciseName)), nil)
	if err != nil {
		g.logger.Warn("tip request failed", zap.String("exercise", exerciseName), zap.Error(err))
		return Fallback
	}
	if resp == nil {
		g.logger.Warn("tip response empty", zap.String("exercise", exerciseName))
		return Fallback
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.logger.Warn("tip response empty", zap.String("exercise", exerciseName))
		return Fallback
	}
	g.logger.Debug("tip fetched",
		zap.String("exercise", exerciseName),
		zap.String("model", g.model),
		zap.Duration("took", time.Since(start)))
	return text
}

type Options struct {
	Enabled bool
	APIKey  string
	Model   string
	Timeout time.Duration
}

// New picks a provider for opts. It never fails; without a usable key it
// returns Static.
func New(ctx context.Context, opts Options, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !opts.Enabled || opts.APIKey == "" {
		logger.Info("tips disabled, using fallback text", zap.Bool("enabled", opts.Enabled))
		return Static{}
	}
	g, err := NewGemini(ctx, opts.APIKey, opts.Model, logger)
	if err != nil {
		logger.Warn("tip provider unavailable, using fallback text", zap.Error(err))
		return Static{}
	}
	return g.WithTimeout(opts.Timeout)
}
