package engine

import (
	"github.com/ld-screen/screening-service/internal/models"
)

// ServedQuestion is what the selector emits for one turn. Reused is true
// only when every template for the target slot had already been shown and
// the used-set was reset.
type ServedQuestion struct {
	Template models.QuestionTemplate
	Reused   bool
}

// fallbackDifficulties lists the other tiers to try when a slot is
// exhausted, nearest tier first, lower tier preferred on a distance tie.
func fallbackDifficulties(target models.Difficulty) []models.Difficulty {
	switch target {
	case models.DifficultyEasy:
		return []models.Difficulty{models.DifficultyMedium, models.DifficultyHard}
	case models.DifficultyHard:
		return []models.Difficulty{models.DifficultyMedium, models.DifficultyEasy}
	}
	return []models.Difficulty{models.DifficultyEasy, models.DifficultyHard}
}

// selectQuestion picks the next template for the session. It consults the
// deficit scheduler for the domain, the session's current tier for that
// domain, then draws uniformly from the slot's unseen templates. An
// exhausted slot falls back to the domain's other tiers before permitting
// a flagged repeat.
func selectQuestion(state *SessionState, pool *Pool) (ServedQuestion, error) {
	domain, err := nextDomain(state.askedBy, state.asked, state.budget)
	if err != nil {
		return ServedQuestion{}, err
	}
	target := state.difficulty[domain]

	key := models.PoolKey{Domain: domain, Difficulty: target}
	candidates := state.unused(key, pool.Slot(domain, target))
	reused := false

	if len(candidates) == 0 {
		for _, alt := range fallbackDifficulties(target) {
			altKey := models.PoolKey{Domain: domain, Difficulty: alt}
			if alts := state.unused(altKey, pool.Slot(domain, alt)); len(alts) > 0 {
				key, candidates = altKey, alts
				break
			}
		}
	}
	if len(candidates) == 0 {
		// Whole domain exhausted. Reset the target slot and repeat.
		state.resetUsed(key)
		candidates = pool.Slot(domain, target)
		reused = true
		if len(candidates) == 0 {
			return ServedQuestion{}, ErrEmptyPool
		}
	}

	chosen := candidates[state.rng.Intn(len(candidates))]
	state.markUsed(key, chosen.ID)
	state.asked++
	state.askedBy[domain]++
	return ServedQuestion{Template: chosen, Reused: reused}, nil
}
