package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ld-screen/screening-service/internal/models"
)

func TestAdjustDifficultyTransitions(t *testing.T) {
	cases := []struct {
		current models.Difficulty
		correct bool
		want    models.Difficulty
	}{
		{models.DifficultyEasy, true, models.DifficultyMedium},
		{models.DifficultyEasy, false, models.DifficultyEasy},
		{models.DifficultyMedium, true, models.DifficultyHard},
		{models.DifficultyMedium, false, models.DifficultyEasy},
		{models.DifficultyHard, true, models.DifficultyHard},
		{models.DifficultyHard, false, models.DifficultyMedium},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, adjustDifficulty(tc.current, tc.correct),
			"%s correct=%v", tc.current, tc.correct)
	}
}

func TestDifficultyWalkStaysAdjacent(t *testing.T) {
	eng := newTestEngine(t)
	state := eng.StartSession(60, 13)

	prev := map[models.Domain]models.Difficulty{}
	for _, d := range models.DomainOrder {
		prev[d] = state.Difficulty(d)
	}

	step := 0
	for {
		q, err := eng.NextQuestion(state)
		if IsSessionComplete(err) {
			break
		}
		require.NoError(t, err)

		rec := answeredCorrectly(q.Template)
		if step%2 == 1 {
			rec = answeredWrong(q.Template)
		}
		require.NoError(t, eng.RecordResponse(state, rec))
		step++

		now := state.Difficulty(q.Template.Domain)
		delta := now.Rank() - prev[q.Template.Domain].Rank()
		if delta < 0 {
			delta = -delta
		}
		assert.LessOrEqual(t, delta, 1)
		assert.True(t, now.Valid())
		prev[q.Template.Domain] = now
	}
}

func TestFirstQuestionKeepsInitialTier(t *testing.T) {
	state := NewSessionState(30, models.DifficultyMedium, 1)
	for _, d := range models.DomainOrder {
		assert.Equal(t, models.DifficultyMedium, state.Difficulty(d))
	}
}
