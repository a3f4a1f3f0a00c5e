package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// LinearModel is a trained linear scorer loaded from a weights file. Each
// of the three risk dimensions is a weighted sum of the eight features
// plus a bias, clamped to [0,1]. The weight rows follow the feature order
// of featureSlice.
type LinearModel struct {
	Weights [3][8]float64 `json:"weights"`
	Bias    [3]float64    `json:"bias"`
}

func (m *LinearModel) Predict(features [8]float64) ([3]float64, error) {
	var scores [3]float64
	for i := range scores {
		v := m.Bias[i]
		for j, f := range features {
			v += m.Weights[i][j] * f
		}
		scores[i] = clamp01(v)
	}
	return scores, nil
}

// LoadLinearModel reads a weights file produced by an offline training
// run. The file is JSON with "weights" (3x8) and "bias" (3) arrays.
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}
	var model LinearModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse model file: %w", err)
	}
	return &model, nil
}
