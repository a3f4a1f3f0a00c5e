package models

// QuestionTemplate is an immutable, pre-authored screening item. Templates
// are loaded once at startup and never mutated afterwards.
type QuestionTemplate struct {
	ID            string      `json:"id"`
	Domain        Domain      `json:"domain" validate:"required,oneof=reading math attention writing logic"`
	Difficulty    Difficulty  `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Prompt        string      `json:"prompt" validate:"required"`
	Options       []string    `json:"options,omitempty"`
	CorrectAnswer string      `json:"correct_answer"`
	MistakeTag    MistakeType `json:"mistake_tag,omitempty"`
}

// PoolKey identifies one (domain, difficulty) slot in the template pool.
type PoolKey struct {
	Domain     Domain
	Difficulty Difficulty
}
