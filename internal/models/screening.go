package models

// Domain is a skill area screened by the assessment.
type Domain string

const (
	DomainReading   Domain = "reading"
	DomainMath      Domain = "math"
	DomainAttention Domain = "attention"
	DomainWriting   Domain = "writing"
	DomainLogic     Domain = "logic"
)

// DomainOrder is the fixed rotation and tie-break priority used by the
// scheduler. Order matters and must not change between releases.
var DomainOrder = []Domain{
	DomainReading,
	DomainMath,
	DomainAttention,
	DomainWriting,
	DomainLogic,
}

func (d Domain) Valid() bool {
	switch d {
	case DomainReading, DomainMath, DomainAttention, DomainWriting, DomainLogic:
		return true
	}
	return false
}

// Difficulty is a totally ordered tier: easy < medium < hard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var DifficultyOrder = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Rank returns the tier position (easy=0, medium=1, hard=2). Unknown
// difficulties rank as easy; validation happens before this is reached.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	}
	return 0
}

// ConfidenceLevel is the child's optional self-report on an answer, and
// also the bucketed certainty of a finished assessment.
type ConfidenceLevel string

const (
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceModerate ConfidenceLevel = "moderate"
	ConfidenceHigh     ConfidenceLevel = "high"
)

// ValidSelfReport reports whether the value is allowed on a ResponseRecord.
func (c ConfidenceLevel) ValidSelfReport() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

// RiskLabel is the categorical outcome of a completed screening.
type RiskLabel string

const (
	LabelLowRisk         RiskLabel = "low-risk"
	LabelDyslexiaRisk    RiskLabel = "dyslexia-risk"
	LabelDyscalculiaRisk RiskLabel = "dyscalculia-risk"
	LabelAttentionRisk   RiskLabel = "attention-risk"
)

// MistakeType tags the likely cause of an incorrect answer.
type MistakeType string

const (
	MistakeLetterReversal   MistakeType = "letter_reversal"
	MistakeNumberReversal   MistakeType = "number_reversal"
	MistakeSubstitution     MistakeType = "substitution"
	MistakeSpellingError    MistakeType = "spelling_error"
	MistakeCalculationError MistakeType = "calculation_error"
	MistakeSequenceError    MistakeType = "sequence_error"
	MistakeSequencingError  MistakeType = "sequencing_error"
	MistakeOmission         MistakeType = "omission"
	MistakeImpulsiveClick   MistakeType = "impulsive_click"
	MistakeMissedTarget     MistakeType = "missed_target"
)

// MistakeVocabulary is the fixed per-domain set of valid mistake tags. The
// first entry of each list is the generic default for that domain.
var MistakeVocabulary = map[Domain][]MistakeType{
	DomainReading:   {MistakeLetterReversal, MistakeSubstitution},
	DomainMath:      {MistakeCalculationError, MistakeNumberReversal},
	DomainAttention: {MistakeSequenceError, MistakeOmission, MistakeImpulsiveClick, MistakeMissedTarget},
	DomainWriting:   {MistakeSpellingError, MistakeSubstitution},
	DomainLogic:     {MistakeSequencingError},
}

// ValidFor reports whether the tag belongs to the domain's vocabulary.
func (m MistakeType) ValidFor(domain Domain) bool {
	for _, t := range MistakeVocabulary[domain] {
		if t == m {
			return true
		}
	}
	return false
}

// Known reports whether the tag exists in any domain's vocabulary.
func (m MistakeType) Known() bool {
	for _, tags := range MistakeVocabulary {
		for _, t := range tags {
			if t == m {
				return true
			}
		}
	}
	return false
}
