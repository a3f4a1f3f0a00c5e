package engine

import "github.com/ld-screen/screening-service/internal/models"

// adjustDifficulty applies the per-domain tier transition: a correct answer
// moves up one tier, an incorrect one moves down, and the walk never leaves
// {easy, medium, hard}. Response time is deliberately ignored here.
func adjustDifficulty(current models.Difficulty, correct bool) models.Difficulty {
	switch current {
	case models.DifficultyEasy:
		if correct {
			return models.DifficultyMedium
		}
		return models.DifficultyEasy
	case models.DifficultyMedium:
		if correct {
			return models.DifficultyHard
		}
		return models.DifficultyEasy
	case models.DifficultyHard:
		if correct {
			return models.DifficultyHard
		}
		return models.DifficultyMedium
	}
	return models.DifficultyEasy
}
