package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"focus-assistant/api/internal/llm"
	"focus-assistant/api/internal/metrics"
	"focus-assistant/api/internal/prompt"
	"focus-assistant/api/internal/types"
	"focus-assistant/api/internal/util"

	"go.uber.org/zap"
)

const (
	FallbackQuote      = "Every moment is a fresh beginning."
	FallbackSuggestion = "Take a 5-minute walk to refresh your mind."
)

const (
	opQuote    = "quote"
	opBreak    = "break_suggestion"
	opPriority = "determine_priority"
)

// Service turns user text into the three response shapes. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	engine  llm.Engine
	log     *zap.Logger
	timeout time.Duration
}

func New(engine llm.Engine, log *zap.Logger, timeout time.Duration) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		engine:  engine,
		log:     log,
		timeout: timeout,
	}
}

// Quote returns a cleaned motivational quote. On failure it returns
// FallbackQuote together with the error.
func (s *Service) Quote(ctx context.Context, lang string) (string, error) {
	out, err := s.generate(ctx, opQuote, lang, llm.Request{Prompt: prompt.Quote(lang)})
	if err != nil {
		return FallbackQuote, err
	}
	return util.CleanDisplayText(out), nil
}

// BreakSuggestion returns a cleaned break idea. On failure it returns
// FallbackSuggestion together with the error.
func (s *Service) BreakSuggestion(ctx context.Context, lang string) (string, error) {
	out, err := s.generate(ctx, opBreak, lang, llm.Request{Prompt: prompt.BreakSuggestion(lang)})
	if err != nil {
		return FallbackSuggestion, err
	}
	return util.CleanDisplayText(out), nil
}

// DeterminePriority always yields a valid priority; model failures are
// reported through PriorityResult.Error.
func (s *Service) DeterminePriority(ctx context.Context, task, lang string) types.PriorityResult {
	res := s.determinePriority(ctx, task, lang)
	metrics.PriorityResolutions.WithLabelValues(string(res.Tier)).Inc()
	s.log.Debug("priority resolved",
		zap.String("tier", string(res.Tier)),
		zap.String("priority", string(res.Priority)),
		zap.String("language", lang),
	)
	return res
}

func (s *Service) determinePriority(ctx context.Context, task, lang string) types.PriorityResult {
	if strings.TrimSpace(task) == "" {
		return types.PriorityResult{
			Priority:    types.PriorityMedium,
			Explanation: ExplanationEmptyInput,
			Tier:        types.TierEmptyInput,
		}
	}

	out, err := s.generate(ctx, opPriority, lang, llm.Request{
		Prompt: prompt.Priority(task, lang),
		Schema: priorityResponseSchema,
	})
	if err != nil {
		return types.PriorityResult{
			Priority:    types.PriorityMedium,
			Explanation: ExplanationError,
			Error:       err.Error(),
			Tier:        types.TierError,
		}
	}
	return ResolvePriority(out)
}

func (s *Service) generate(ctx context.Context, op, lang string, req llm.Request) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := s.engine.Generate(ctx, req)
	metrics.ModelRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ModelRequests.WithLabelValues(op, outcome(err)).Inc()
		s.log.Warn("model call failed",
			zap.String("operation", op),
			zap.String("language", lang),
			zap.String("engine", s.engine.Name()),
			zap.String("model", s.engine.GetModel()),
			zap.Error(err),
		)
		return "", err
	}
	metrics.ModelRequests.WithLabelValues(op, "ok").Inc()
	return out, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, llm.ErrEmptyResponse):
		return "empty"
	default:
		return "error"
	}
}
