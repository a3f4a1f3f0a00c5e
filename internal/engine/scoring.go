package engine

import (
	"context"

	"github.com/ld-screen/screening-service/internal/models"
)

// Scorer converts the fixed feature vector into three [0,1] risk scores.
// Two implementations exist: the deterministic fallback and the adapter
// around an externally trained model.
type Scorer interface {
	Predict(ctx context.Context, features models.FeatureVector) (models.RiskScores, error)
}

// Fallback formula constants. These mirror the weights the screening
// worksheets were originally calibrated with and must not drift without
// re-calibration.
const (
	lowRiskThreshold = 0.3

	confidenceLowBelow = 0.4
	confidenceHighOver = 0.7

	maxInsights = 5

	reversalNorm = 5.0
	timeNormMs   = 5000.0
	stdDevNormMs = 2000.0
	mismatchNorm = 3.0
)

// FallbackScorer is the closed-form weighted combination used whenever no
// predictive model is available. It is pure and never fails.
type FallbackScorer struct{}

func (FallbackScorer) Predict(_ context.Context, f models.FeatureVector) (models.RiskScores, error) {
	dyslexia := f.ErrorRate*0.4 +
		(1.0-f.ReadingAccuracy)*0.3 +
		float64(f.ReversalCount)/reversalNorm*0.3

	dyscalculia := f.ErrorRate*0.3 +
		(1.0-f.MathAccuracy)*0.4 +
		f.AvgResponseTimeMs/timeNormMs*0.3

	attention := f.ConsistencyMs/stdDevNormMs*0.4 +
		f.AvgResponseTimeMs/timeNormMs*0.3 +
		float64(f.ConfidenceMismatch)/mismatchNorm*0.3

	return models.RiskScores{
		Dyslexia:    clamp01(dyslexia),
		Dyscalculia: clamp01(dyscalculia),
		Attention:   clamp01(attention),
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// deriveLabel picks the categorical outcome. All scores under the low
// threshold mean low-risk; otherwise the highest score wins, with ties
// broken dyslexia first, then dyscalculia, then attention.
func deriveLabel(s models.RiskScores) models.RiskLabel {
	if s.Dyslexia < lowRiskThreshold && s.Dyscalculia < lowRiskThreshold && s.Attention < lowRiskThreshold {
		return models.LabelLowRisk
	}
	if s.Dyslexia >= s.Dyscalculia && s.Dyslexia >= s.Attention {
		return models.LabelDyslexiaRisk
	}
	if s.Dyscalculia >= s.Attention {
		return models.LabelDyscalculiaRisk
	}
	return models.LabelAttentionRisk
}

func winningScore(s models.RiskScores) float64 {
	top := s.Dyslexia
	if s.Dyscalculia > top {
		top = s.Dyscalculia
	}
	if s.Attention > top {
		top = s.Attention
	}
	return top
}

// deriveConfidence buckets the winning score. Both boundary values fall in
// the moderate bucket so re-scoring the same history cannot flip levels.
func deriveConfidence(winning float64) models.ConfidenceLevel {
	switch {
	case winning < confidenceLowBelow:
		return models.ConfidenceLow
	case winning > confidenceHighOver:
		return models.ConfidenceHigh
	}
	return models.ConfidenceModerate
}

// insightRule maps one feature threshold to a report sentence. Rules are
// evaluated in order and the first maxInsights matches are kept.
type insightRule struct {
	match func(models.FeatureVector) bool
	text  string
}

var insightRules = []insightRule{
	{func(f models.FeatureVector) bool { return f.ReversalCount >= 2 },
		"Frequent letter or number reversals observed"},
	{func(f models.FeatureVector) bool { return f.ReadingAccuracy < 0.5 },
		"Reading answers were often incorrect"},
	{func(f models.FeatureVector) bool { return f.MathAccuracy < 0.5 },
		"Math answers were often incorrect"},
	{func(f models.FeatureVector) bool { return f.ErrorRate > 0.5 },
		"More than half of all answers were incorrect"},
	{func(f models.FeatureVector) bool { return f.ConsistencyMs > 1500 },
		"Response times varied widely between questions"},
	{func(f models.FeatureVector) bool { return f.AvgResponseTimeMs > 4000 },
		"Answers generally took a long time"},
	{func(f models.FeatureVector) bool { return f.ConfidenceMismatch >= 3 },
		"Self-reported confidence often did not match results"},
	{func(f models.FeatureVector) bool { return f.Accuracy >= 0.9 && f.ConsistencyMs < 500 },
		"Consistent and accurate performance across domains"},
}

func deriveInsights(f models.FeatureVector) []string {
	out := make([]string, 0, maxInsights)
	for _, rule := range insightRules {
		if len(out) == maxInsights {
			break
		}
		if rule.match(f) {
			out = append(out, rule.text)
		}
	}
	return out
}

// assembleResult builds the full assessment from scores and features.
func assembleResult(f models.FeatureVector, scores models.RiskScores, usedModel bool) models.RiskResult {
	return models.RiskResult{
		Scores:     scores,
		Label:      deriveLabel(scores),
		Confidence: deriveConfidence(winningScore(scores)),
		Insights:   deriveInsights(f),
		UsedModel:  usedModel,
		Features:   f,
	}
}
