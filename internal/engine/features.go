package engine

import (
	"math"

	"github.com/ld-screen/screening-service/internal/models"
)

// ExtractFeatures reduces an ordered response history to the fixed eight
// scoring features. It is pure and total: an empty history yields the zero
// vector, never a division by zero.
func ExtractFeatures(history []models.ResponseRecord) models.FeatureVector {
	var f models.FeatureVector
	if len(history) == 0 {
		f.ErrorRate = 1.0
		return f
	}

	var correct int
	var timeSum, timeSqSum float64
	perDomain := make(map[models.Domain][2]int)

	for _, rec := range history {
		if rec.Correct {
			correct++
		}
		timeSum += rec.ResponseTimeMs
		timeSqSum += rec.ResponseTimeMs * rec.ResponseTimeMs

		counts := perDomain[rec.Domain]
		counts[0]++
		if rec.Correct {
			counts[1]++
		}
		perDomain[rec.Domain] = counts

		switch rec.MistakeTag {
		case models.MistakeLetterReversal, models.MistakeNumberReversal:
			f.ReversalCount++
		}
		if mismatched(rec) {
			f.ConfidenceMismatch++
		}
	}

	n := float64(len(history))
	f.Accuracy = float64(correct) / n
	f.ErrorRate = 1.0 - f.Accuracy
	f.AvgResponseTimeMs = timeSum / n

	variance := timeSqSum/n - f.AvgResponseTimeMs*f.AvgResponseTimeMs
	if variance > 0 {
		f.ConsistencyMs = math.Sqrt(variance)
	}

	f.ReadingAccuracy = domainAccuracy(perDomain, models.DomainReading)
	f.MathAccuracy = domainAccuracy(perDomain, models.DomainMath)
	return f
}

func domainAccuracy(perDomain map[models.Domain][2]int, domain models.Domain) float64 {
	counts := perDomain[domain]
	if counts[0] == 0 {
		return 0.0
	}
	return float64(counts[1]) / float64(counts[0])
}

// mismatched reports whether the self-reported confidence disagrees with
// the outcome: sure but wrong, or unsure but right.
func mismatched(rec models.ResponseRecord) bool {
	switch rec.Confidence {
	case models.ConfidenceHigh:
		return !rec.Correct
	case models.ConfidenceLow:
		return rec.Correct
	}
	return false
}
