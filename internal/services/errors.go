package services

import "errors"

var (
	ErrSessionNotFound    = errors.New("screening session not found")
	ErrSessionNotActive   = errors.New("screening session is not active")
	ErrSessionCompleted   = errors.New("screening session already completed")
	ErrNoPendingQuestion  = errors.New("no pending question for this session")
	ErrQuestionMismatch   = errors.New("answer does not match the pending question")
	ErrAssessmentNotFound = errors.New("risk assessment not found")
	ErrUnknownQuestion    = errors.New("unknown question id")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrAssessmentNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrSessionNotActive) ||
		errors.Is(err, ErrSessionCompleted) ||
		errors.Is(err, ErrQuestionMismatch)
}
