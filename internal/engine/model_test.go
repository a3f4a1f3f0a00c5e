package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ld-screen/screening-service/internal/models"
)

func TestModelAdapterHappyPath(t *testing.T) {
	adapter := NewModelAdapter(fixedModel{scores: [3]float64{0.1, 0.2, 0.3}}, time.Second)
	scores, err := adapter.Predict(context.Background(), models.FeatureVector{})
	require.NoError(t, err)
	assert.Equal(t, models.RiskScores{Dyslexia: 0.1, Dyscalculia: 0.2, Attention: 0.3}, scores)
}

func TestModelAdapterNilModel(t *testing.T) {
	adapter := NewModelAdapter(nil, time.Second)
	_, err := adapter.Predict(context.Background(), models.FeatureVector{})
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestModelAdapterRecoversPanic(t *testing.T) {
	adapter := NewModelAdapter(panickyModel{}, time.Second)
	_, err := adapter.Predict(context.Background(), models.FeatureVector{})
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestModelAdapterTimesOut(t *testing.T) {
	adapter := NewModelAdapter(fixedModel{delay: 200 * time.Millisecond}, 10*time.Millisecond)
	start := time.Now()
	_, err := adapter.Predict(context.Background(), models.FeatureVector{})
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestModelAdapterRejectsOutOfRangeScores(t *testing.T) {
	for _, scores := range [][3]float64{
		{1.5, 0.1, 0.1},
		{-0.1, 0.1, 0.1},
	} {
		adapter := NewModelAdapter(fixedModel{scores: scores}, time.Second)
		_, err := adapter.Predict(context.Background(), models.FeatureVector{})
		assert.ErrorIs(t, err, ErrModelUnavailable)
	}
}

func TestFeatureSliceOrderIsStable(t *testing.T) {
	f := models.FeatureVector{
		Accuracy:           0.9,
		ErrorRate:          0.1,
		AvgResponseTimeMs:  1200,
		ConsistencyMs:      300,
		ReadingAccuracy:    0.8,
		MathAccuracy:       0.7,
		ReversalCount:      2,
		ConfidenceMismatch: 1,
	}
	assert.Equal(t, [8]float64{0.9, 0.1, 1200, 300, 0.8, 0.7, 2, 1}, featureSlice(f))
}
