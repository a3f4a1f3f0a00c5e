package engine

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ld-screen/screening-service/internal/models"
)

// tinyPool builds a pool with n templates per (domain, difficulty) slot so
// exhaustion is cheap to reach in tests.
func tinyPool(t *testing.T, n int) *Pool {
	t.Helper()
	var templates []models.QuestionTemplate
	for _, d := range models.DomainOrder {
		for _, diff := range models.DifficultyOrder {
			for i := 0; i < n; i++ {
				templates = append(templates, models.QuestionTemplate{
					ID:            fmt.Sprintf("%s-%s-%d", d, diff, i),
					Domain:        d,
					Difficulty:    diff,
					Prompt:        "p",
					Options:       []string{"a", "b"},
					CorrectAnswer: "a",
				})
			}
		}
	}
	pool, err := NewPool(templates)
	require.NoError(t, err)
	return pool
}

func TestNoRepeatWithinSlotBeforeExhaustion(t *testing.T) {
	eng := newTestEngine(t)
	state := eng.StartSession(100, 21)

	seen := map[models.PoolKey]map[string]bool{}
	for {
		q, err := eng.NextQuestion(state)
		if IsSessionComplete(err) {
			break
		}
		require.NoError(t, err)
		require.False(t, q.Reused)

		key := models.PoolKey{Domain: q.Template.Domain, Difficulty: q.Template.Difficulty}
		if seen[key] == nil {
			seen[key] = map[string]bool{}
		}
		require.Falsef(t, seen[key][q.Template.ID], "template %s repeated", q.Template.ID)
		seen[key][q.Template.ID] = true

		require.NoError(t, eng.RecordResponse(state, answeredWrong(q.Template)))
	}
}

func TestExhaustionFallsBackToOtherTiers(t *testing.T) {
	pool := tinyPool(t, 2)
	eng := New(pool, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Wrong answers keep every domain pinned at easy. With 2 easy
	// templates per domain, the third visit must fall back to another
	// tier rather than repeat.
	state := eng.StartSession(15, 8)
	tierByTurn := map[models.Domain][]models.Difficulty{}
	for {
		q, err := eng.NextQuestion(state)
		if IsSessionComplete(err) {
			break
		}
		require.NoError(t, err)
		require.False(t, q.Reused)
		tierByTurn[q.Template.Domain] = append(tierByTurn[q.Template.Domain], q.Template.Difficulty)
		require.NoError(t, eng.RecordResponse(state, answeredWrong(q.Template)))
	}

	for _, d := range models.DomainOrder {
		tiers := tierByTurn[d]
		require.Len(t, tiers, 3)
		assert.Equal(t, models.DifficultyEasy, tiers[0])
		assert.Equal(t, models.DifficultyEasy, tiers[1])
		assert.Equal(t, models.DifficultyMedium, tiers[2])
	}
}

func TestFullExhaustionFlagsReuse(t *testing.T) {
	pool := tinyPool(t, 1)
	eng := New(pool, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// 1 template per tier means a domain is fully spent after 3 serves;
	// the 4th serve for that domain must be a flagged repeat.
	state := eng.StartSession(20, 8)
	reusedSeen := false
	for {
		q, err := eng.NextQuestion(state)
		if IsSessionComplete(err) {
			break
		}
		require.NoError(t, err)
		if q.Reused {
			reusedSeen = true
		}
		require.NoError(t, eng.RecordResponse(state, answeredWrong(q.Template)))
	}
	assert.True(t, reusedSeen)
}

func TestSelectorDrawsFromTargetSlot(t *testing.T) {
	eng := newTestEngine(t)
	state := eng.StartSession(30, 4)

	q, err := eng.NextQuestion(state)
	require.NoError(t, err)
	assert.Equal(t, models.DomainReading, q.Template.Domain)
	assert.Equal(t, models.DifficultyEasy, q.Template.Difficulty)
}
