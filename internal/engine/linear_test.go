package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ld-screen/screening-service/internal/models"
)

func TestLinearModelPredict(t *testing.T) {
	model := &LinearModel{
		Weights: [3][8]float64{
			{0, 0.5, 0, 0, 0, 0, 0, 0},
			{0.25, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
		Bias: [3]float64{0.1, 0, 0.2},
	}

	scores, err := model.Predict([8]float64{0.8, 0.2, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, scores[0], 1e-9)
	assert.InDelta(t, 0.2, scores[1], 1e-9)
	assert.InDelta(t, 0.2, scores[2], 1e-9)
}

func TestLinearModelClampsScores(t *testing.T) {
	model := &LinearModel{
		Weights: [3][8]float64{
			{10, 0, 0, 0, 0, 0, 0, 0},
			{-10, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
	}

	scores, err := model.Predict([8]float64{1, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, scores[0])
	assert.Equal(t, 0.0, scores[1])
}

func TestLoadLinearModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	content := `{"weights":[[0.1,0,0,0,0,0,0,0],[0,0.2,0,0,0,0,0,0],[0,0,0.3,0,0,0,0,0]],"bias":[0.05,0,0]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	model, err := LoadLinearModel(path)
	require.NoError(t, err)
	assert.Equal(t, 0.1, model.Weights[0][0])
	assert.Equal(t, 0.05, model.Bias[0])

	// The loaded model drives the adapter end to end.
	adapter := NewModelAdapter(model, time.Second)
	scores, err := adapter.Predict(context.Background(), models.FeatureVector{Accuracy: 1.0})
	require.NoError(t, err)
	assert.InDelta(t, 0.15, scores.Dyslexia, 1e-9)
}

func TestLoadLinearModelBadFile(t *testing.T) {
	_, err := LoadLinearModel(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	_, err = LoadLinearModel(path)
	assert.Error(t, err)
}
