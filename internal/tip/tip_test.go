package tip

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/genai"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// genai imports go.opencensus.io, whose view worker starts in init and never exits.
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
	)
}

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	panicV  any
	block   bool
	models  []string
	prompts []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	f.models = append(f.models, model)
	for _, c := range contents {
		for _, p := range c.Parts {
			f.prompts = append(f.prompts, p.Text)
		}
	}
	f.mu.Unlock()

	if f.panicV != nil {
		panic(f.panicV)
	}
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func TestGeminiReturnsResponseText(t *testing.T) {
	gen := &fakeGenerator{text: "  Drive through your heels.\n"}
	g := newGemini(gen, "", nil)

	got := g.Tip(context.Background(), "Back Squats")
	assert.Equal(t, "Drive through your heels.", got)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "gym exercise: Back Squats.")
	assert.Equal(t, []string{DefaultModel}, gen.models)
}

func TestGeminiFallbacks(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"error":      {err: errors.New("quota exceeded")},
		"empty text": {text: ""},
		"blank text": {text: "   "},
		"panic":      {panicV: "boom"},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			g := newGemini(gen, "test-model", nil)
			assert.Equal(t, "Focus on controlled movements and full range of motion.", g.Tip(context.Background(), "Plank"))
		})
	}
}

func TestGeminiTimeoutMapsToFallback(t *testing.T) {
	g := newGemini(&fakeGenerator{block: true}, "m", nil).WithTimeout(10 * time.Millisecond)
	assert.Equal(t, Fallback, g.Tip(context.Background(), "Deadlift"))
}

func TestGeminiAsyncFetchDoesNotLeak(t *testing.T) {
	g := newGemini(&fakeGenerator{text: "Brace."}, "m", nil)
	done := make(chan string, 1)
	go func() { done <- g.Tip(context.Background(), "Deadlift") }()
	assert.Equal(t, "Brace.", <-done)
}

func TestNewWithoutKeyIsStatic(t *testing.T) {
	p := New(context.Background(), Options{Enabled: true}, nil)
	assert.IsType(t, Static{}, p)
	assert.Equal(t, Fallback, p.Tip(context.Background(), "anything"))

	p = New(context.Background(), Options{Enabled: false, APIKey: "k"}, nil)
	assert.IsType(t, Static{}, p)
}

func TestPrompt(t *testing.T) {
	p := Prompt("Plank")
	assert.True(t, strings.HasPrefix(p, "Give me a one-sentence minimalist pro-tip"))
	assert.Contains(t, p, "Plank")
}
