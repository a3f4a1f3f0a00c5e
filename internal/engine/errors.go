package engine

import "errors"

var (
	// ErrSessionComplete signals that the question budget is spent. It is
	// a normal terminal condition, not a failure.
	ErrSessionComplete = errors.New("session complete")

	ErrInvalidDomain       = errors.New("invalid domain")
	ErrInvalidDifficulty   = errors.New("invalid difficulty")
	ErrInvalidResponseTime = errors.New("response time must be non-negative")
	ErrSessionFinalized    = errors.New("session already finalized")
	ErrEmptyPool           = errors.New("template pool has no templates for slot")

	// ErrModelUnavailable is internal to the scoring path. Callers never
	// see it; it routes scoring onto the deterministic fallback.
	ErrModelUnavailable = errors.New("predictive model unavailable")
)

func IsSessionComplete(err error) bool {
	return errors.Is(err, ErrSessionComplete)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidDomain) ||
		errors.Is(err, ErrInvalidDifficulty) ||
		errors.Is(err, ErrInvalidResponseTime)
}
