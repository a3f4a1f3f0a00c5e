package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ld-screen/screening-service/internal/models"
)

// DefaultBudget is the number of questions in a standard screening run.
const DefaultBudget = 30

// Engine drives adaptive screenings. It holds only immutable configuration
// and the read-only template pool, so one Engine serves any number of
// concurrent sessions.
type Engine struct {
	pool   *Pool
	scorer Scorer
	logger *slog.Logger
}

// New creates an engine over the given pool. The model scorer may be nil;
// scoring then always uses the deterministic fallback.
func New(pool *Pool, model Scorer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{pool: pool, scorer: model, logger: logger}
}

// Pool exposes the engine's template bank for read-only use.
func (e *Engine) Pool() *Pool {
	return e.pool
}

// StartSession creates fresh session state. A non-positive budget takes
// the default. The seed fixes the template draw order.
func (e *Engine) StartSession(budget int, seed int64) *SessionState {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return NewSessionState(budget, models.DifficultyEasy, seed)
}

// NextQuestion emits the next template for the session, or
// ErrSessionComplete once the budget is spent.
func (e *Engine) NextQuestion(state *SessionState) (ServedQuestion, error) {
	served, err := selectQuestion(state, e.pool)
	if err != nil {
		return ServedQuestion{}, err
	}
	if served.Reused {
		e.logger.Warn("template slot exhausted, repeating",
			"domain", served.Template.Domain,
			"difficulty", served.Template.Difficulty,
			"template_id", served.Template.ID)
	}
	return served, nil
}

// RecordResponse validates, classifies and appends one answer. The stored
// record always carries a resolved mistake tag for incorrect answers and
// never one for correct answers.
func (e *Engine) RecordResponse(state *SessionState, rec models.ResponseRecord) error {
	if rec.Confidence != "" && !rec.Confidence.ValidSelfReport() {
		return fmt.Errorf("invalid confidence level %q", rec.Confidence)
	}
	var templateTag models.MistakeType
	if t, ok := e.pool.Template(rec.QuestionID); ok {
		templateTag = t.MistakeTag
	}
	rec.MistakeTag = ClassifyMistake(rec.Domain, rec.Correct, rec.MistakeTag, templateTag)
	return state.RecordResponse(rec)
}

// Finalize reduces the session history to a risk assessment and seals the
// state against further answers. The model path is tried first when a
// scorer is configured; any model failure falls back to the deterministic
// formula and is never surfaced. Finalize does not mutate history, so
// repeated calls return identical results.
func (e *Engine) Finalize(ctx context.Context, state *SessionState) models.RiskResult {
	state.finalized = true
	return e.Score(ctx, state.Responses())
}

// Score runs feature extraction and risk scoring over a replayed history.
func (e *Engine) Score(ctx context.Context, history []models.ResponseRecord) models.RiskResult {
	features := ExtractFeatures(history)

	if e.scorer != nil {
		scores, err := e.scorer.Predict(ctx, features)
		if err == nil {
			return assembleResult(features, scores, true)
		}
		e.logger.Warn("model scoring failed, using fallback", "error", err)
	}

	scores, _ := FallbackScorer{}.Predict(ctx, features)
	return assembleResult(features, scores, false)
}
