package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ld-screen/screening-service/internal/models"
)

func TestDefaultTemplatesFillEverySlot(t *testing.T) {
	pool, err := NewPool(DefaultTemplates())
	require.NoError(t, err)

	for _, d := range models.DomainOrder {
		for _, diff := range models.DifficultyOrder {
			slot := pool.Slot(d, diff)
			assert.GreaterOrEqualf(t, len(slot), 15, "slot %s/%s", d, diff)
			for _, tpl := range slot {
				assert.Equal(t, d, tpl.Domain)
				assert.Equal(t, diff, tpl.Difficulty)
				assert.NotEmpty(t, tpl.Prompt)
				assert.Contains(t, tpl.Options, tpl.CorrectAnswer)
			}
		}
	}
	assert.Equal(t, 15, pool.MinSlotSize())
}

func TestDefaultTemplateTagsMatchDomainVocabulary(t *testing.T) {
	for _, tpl := range DefaultTemplates() {
		if tpl.MistakeTag == "" {
			continue
		}
		assert.Truef(t, tpl.MistakeTag.ValidFor(tpl.Domain),
			"template %s tag %s invalid for %s", tpl.ID, tpl.MistakeTag, tpl.Domain)
	}
}

func TestNewPoolRejectsBadTemplates(t *testing.T) {
	_, err := NewPool([]models.QuestionTemplate{
		{ID: "x", Domain: "history", Difficulty: models.DifficultyEasy, Options: []string{"a"}, CorrectAnswer: "a"},
	})
	assert.ErrorIs(t, err, ErrInvalidDomain)

	_, err = NewPool([]models.QuestionTemplate{
		{ID: "x", Domain: models.DomainMath, Difficulty: "brutal", Options: []string{"a"}, CorrectAnswer: "a"},
	})
	assert.ErrorIs(t, err, ErrInvalidDifficulty)

	dup := models.QuestionTemplate{ID: "x", Domain: models.DomainMath, Difficulty: models.DifficultyEasy, Options: []string{"a"}, CorrectAnswer: "a"}
	_, err = NewPool([]models.QuestionTemplate{dup, dup})
	assert.ErrorContains(t, err, "duplicate template id")
}

func TestPoolLookupByID(t *testing.T) {
	pool, err := NewPool(DefaultTemplates())
	require.NoError(t, err)

	tpl, ok := pool.Template("reading-easy-01")
	require.True(t, ok)
	assert.Equal(t, models.DomainReading, tpl.Domain)

	_, ok = pool.Template("nope")
	assert.False(t, ok)
}
