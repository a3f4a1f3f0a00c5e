package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ld-screen/screening-service/internal/models"
)

// PredictiveModel is the contract an externally trained model must satisfy:
// eight features in, three scores out. Absence of a model is a normal
// condition, not an error.
type PredictiveModel interface {
	Predict(features [8]float64) ([3]float64, error)
}

// DefaultModelTimeout bounds a single model invocation. On expiry the
// scoring path falls back to the deterministic formula.
const DefaultModelTimeout = 2 * time.Second

// ModelAdapter wraps a PredictiveModel behind the Scorer contract. Any
// misbehavior of the wrapped model, including an error, a panic, a timeout
// or an out-of-range score, surfaces as ErrModelUnavailable so the caller
// can fall back without ever exposing the failure.
type ModelAdapter struct {
	model   PredictiveModel
	timeout time.Duration
}

func NewModelAdapter(model PredictiveModel, timeout time.Duration) *ModelAdapter {
	if timeout <= 0 {
		timeout = DefaultModelTimeout
	}
	return &ModelAdapter{model: model, timeout: timeout}
}

func (a *ModelAdapter) Predict(ctx context.Context, f models.FeatureVector) (models.RiskScores, error) {
	if a == nil || a.model == nil {
		return models.RiskScores{}, ErrModelUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	type outcome struct {
		scores [3]float64
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("model panicked: %v", r)}
			}
		}()
		scores, err := a.model.Predict(featureSlice(f))
		ch <- outcome{scores: scores, err: err}
	}()

	select {
	case <-ctx.Done():
		return models.RiskScores{}, fmt.Errorf("%w: %v", ErrModelUnavailable, ctx.Err())
	case out := <-ch:
		if out.err != nil {
			return models.RiskScores{}, fmt.Errorf("%w: %v", ErrModelUnavailable, out.err)
		}
		for _, v := range out.scores {
			if math.IsNaN(v) || v < 0 || v > 1 {
				return models.RiskScores{}, fmt.Errorf("%w: score %v out of range", ErrModelUnavailable, v)
			}
		}
		return models.RiskScores{
			Dyslexia:    out.scores[0],
			Dyscalculia: out.scores[1],
			Attention:   out.scores[2],
		}, nil
	}
}

// featureSlice fixes the wire order of the eight features. The order is
// part of the model contract and must stay stable across trainings.
func featureSlice(f models.FeatureVector) [8]float64 {
	return [8]float64{
		f.Accuracy,
		f.ErrorRate,
		f.AvgResponseTimeMs,
		f.ConsistencyMs,
		f.ReadingAccuracy,
		f.MathAccuracy,
		float64(f.ReversalCount),
		float64(f.ConfidenceMismatch),
	}
}
