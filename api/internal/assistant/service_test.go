package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"focus-assistant/api/internal/llm"
	"focus-assistant/api/internal/prompt"
	"focus-assistant/api/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeEngine struct {
	out string
	err error

	calls       []llm.Request
	hadDeadline bool
}

func (f *fakeEngine) Name() string     { return "fake" }
func (f *fakeEngine) GetModel() string { return "fake-1" }

func (f *fakeEngine) Generate(ctx context.Context, req llm.Request) (string, error) {
	f.calls = append(f.calls, req)
	_, f.hadDeadline = ctx.Deadline()
	return f.out, f.err
}

func newTestService(t *testing.T, eng *fakeEngine) *Service {
	return New(eng, zaptest.NewLogger(t), time.Second)
}

func TestService_Quote(t *testing.T) {
	eng := &fakeEngine{out: `"Stay *focused*!"`}
	s := newTestService(t, eng)

	got, err := s.Quote(context.Background(), "es")
	require.NoError(t, err)
	assert.Equal(t, "Stay focused!", got)
	require.Len(t, eng.calls, 1)
	assert.Equal(t, prompt.Quote("es"), eng.calls[0].Prompt)
	assert.Nil(t, eng.calls[0].Schema)
	assert.True(t, eng.hadDeadline)
}

func TestService_QuoteFailure(t *testing.T) {
	eng := &fakeEngine{err: errors.New("quota exceeded")}
	s := newTestService(t, eng)

	got, err := s.Quote(context.Background(), "en")
	assert.EqualError(t, err, "quota exceeded")
	assert.Equal(t, FallbackQuote, got)
}

func TestService_BreakSuggestion(t *testing.T) {
	eng := &fakeEngine{out: "## Stretch your *arms* for two minutes.\n"}
	s := newTestService(t, eng)

	got, err := s.BreakSuggestion(context.Background(), "fr")
	require.NoError(t, err)
	assert.Equal(t, "Stretch your arms for two minutes.", got)
	require.Len(t, eng.calls, 1)
	assert.Equal(t, prompt.BreakSuggestion("en"), eng.calls[0].Prompt)
}

func TestService_BreakSuggestionFailure(t *testing.T) {
	eng := &fakeEngine{err: llm.ErrEmptyResponse}
	s := newTestService(t, eng)

	got, err := s.BreakSuggestion(context.Background(), "hi")
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
	assert.Equal(t, FallbackSuggestion, got)
}

func TestService_DeterminePriority_EmptyInputSkipsModel(t *testing.T) {
	for _, task := range []string{"", "   ", "\n\t"} {
		eng := &fakeEngine{out: `{"priority":"high","explanation":"x"}`}
		s := newTestService(t, eng)

		got := s.DeterminePriority(context.Background(), task, "en")
		assert.Equal(t, types.PriorityResult{
			Priority:    types.PriorityMedium,
			Explanation: ExplanationEmptyInput,
			Tier:        types.TierEmptyInput,
		}, got)
		assert.Empty(t, eng.calls)
	}
}

func TestService_DeterminePriority_Structured(t *testing.T) {
	eng := &fakeEngine{out: `{"priority": "high", "explanation": "urgent deadline"}`}
	s := newTestService(t, eng)

	got := s.DeterminePriority(context.Background(), "File taxes today", "hi")
	assert.Equal(t, types.PriorityHigh, got.Priority)
	assert.Equal(t, "urgent deadline", got.Explanation)
	assert.Empty(t, got.Error)

	require.Len(t, eng.calls, 1)
	assert.Equal(t, prompt.Priority("File taxes today", "hi"), eng.calls[0].Prompt)
	require.NotNil(t, eng.calls[0].Schema)
	assert.Equal(t, []string{"priority", "explanation"}, eng.calls[0].Schema.Required)
}

func TestService_DeterminePriority_ModelError(t *testing.T) {
	eng := &fakeEngine{err: errors.New("blocked by safety filter")}
	s := newTestService(t, eng)

	got := s.DeterminePriority(context.Background(), "something", "es")
	assert.Equal(t, types.PriorityResult{
		Priority:    types.PriorityMedium,
		Explanation: ExplanationError,
		Error:       "blocked by safety filter",
		Tier:        types.TierError,
	}, got)
}

func TestService_TimeoutDisabled(t *testing.T) {
	eng := &fakeEngine{out: "ok"}
	s := New(eng, nil, 0)

	_, err := s.Quote(context.Background(), "en")
	require.NoError(t, err)
	assert.False(t, eng.hadDeadline)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "timeout", outcome(context.DeadlineExceeded))
	assert.Equal(t, "canceled", outcome(context.Canceled))
	assert.Equal(t, "empty", outcome(llm.ErrEmptyResponse))
	assert.Equal(t, "error", outcome(errors.New("boom")))
}
