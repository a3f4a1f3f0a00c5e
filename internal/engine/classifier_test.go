package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ld-screen/screening-service/internal/models"
)

func TestClassifyMistakeCorrectAnswersCarryNoTag(t *testing.T) {
	tag := ClassifyMistake(models.DomainReading, true, models.MistakeLetterReversal, models.MistakeLetterReversal)
	assert.Empty(t, tag)
}

func TestClassifyMistakePassesThroughValidTag(t *testing.T) {
	tag := ClassifyMistake(models.DomainReading, false, models.MistakeSubstitution, "")
	assert.Equal(t, models.MistakeSubstitution, tag)
}

func TestClassifyMistakeRejectsForeignTag(t *testing.T) {
	// calculation_error is not in the reading vocabulary, so the domain
	// default wins.
	tag := ClassifyMistake(models.DomainReading, false, models.MistakeCalculationError, "")
	assert.Equal(t, models.MistakeLetterReversal, tag)
}

func TestClassifyMistakeUsesTemplateTag(t *testing.T) {
	tag := ClassifyMistake(models.DomainMath, false, "", models.MistakeNumberReversal)
	assert.Equal(t, models.MistakeNumberReversal, tag)
}

func TestClassifyMistakeDomainDefaults(t *testing.T) {
	defaults := map[models.Domain]models.MistakeType{
		models.DomainReading:   models.MistakeLetterReversal,
		models.DomainMath:      models.MistakeCalculationError,
		models.DomainAttention: models.MistakeSequenceError,
		models.DomainWriting:   models.MistakeSpellingError,
		models.DomainLogic:     models.MistakeSequencingError,
	}
	for domain, want := range defaults {
		assert.Equalf(t, want, ClassifyMistake(domain, false, "", ""), "domain %s", domain)
	}
}
