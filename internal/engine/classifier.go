package engine

import "github.com/ld-screen/screening-service/internal/models"

// ClassifyMistake resolves the mistake tag for an answered question.
// Correct answers never carry a tag. An explicit caller-supplied tag wins
// when it belongs to the domain's vocabulary; otherwise the template's own
// tag is used, and failing that the domain's generic default.
func ClassifyMistake(domain models.Domain, correct bool, supplied, templateTag models.MistakeType) models.MistakeType {
	if correct {
		return ""
	}
	if supplied != "" && supplied.ValidFor(domain) {
		return supplied
	}
	if templateTag != "" && templateTag.ValidFor(domain) {
		return templateTag
	}
	vocab := models.MistakeVocabulary[domain]
	if len(vocab) == 0 {
		return ""
	}
	return vocab[0]
}
