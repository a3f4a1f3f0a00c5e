package engine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ld-screen/screening-service/internal/models"
)

// SessionState is the only mutable state in the engine. Each instance is
// owned by exactly one screening session and must not be shared across
// goroutines.
type SessionState struct {
	budget int
	rng    *rand.Rand

	responses  []models.ResponseRecord
	asked      int
	askedBy    map[models.Domain]int
	answeredBy map[models.Domain]int
	correctBy  map[models.Domain]int
	difficulty map[models.Domain]models.Difficulty
	used       map[models.PoolKey]map[string]struct{}

	// Welford accumulators over response times.
	timeCount int
	timeMean  float64
	timeM2    float64

	finalized bool
}

// NewSessionState creates session state with every domain starting at the
// given tier. The seed fixes template selection so a session replays
// identically.
func NewSessionState(budget int, start models.Difficulty, seed int64) *SessionState {
	s := &SessionState{
		budget:     budget,
		rng:        rand.New(rand.NewSource(seed)),
		askedBy:    make(map[models.Domain]int),
		answeredBy: make(map[models.Domain]int),
		correctBy:  make(map[models.Domain]int),
		difficulty: make(map[models.Domain]models.Difficulty),
		used:       make(map[models.PoolKey]map[string]struct{}),
	}
	if !start.Valid() {
		start = models.DifficultyEasy
	}
	for _, d := range models.DomainOrder {
		s.difficulty[d] = start
	}
	return s
}

// RecordResponse appends one answered question to the history and updates
// the running statistics. Malformed input fails fast; nothing is recorded
// partially.
func (s *SessionState) RecordResponse(rec models.ResponseRecord) error {
	if !rec.Domain.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, rec.Domain)
	}
	if !rec.Difficulty.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, rec.Difficulty)
	}
	if rec.ResponseTimeMs < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidResponseTime, rec.ResponseTimeMs)
	}
	if s.finalized {
		return ErrSessionFinalized
	}

	s.responses = append(s.responses, rec)
	s.answeredBy[rec.Domain]++
	if rec.Correct {
		s.correctBy[rec.Domain]++
	}
	s.difficulty[rec.Domain] = adjustDifficulty(s.difficulty[rec.Domain], rec.Correct)

	s.timeCount++
	delta := rec.ResponseTimeMs - s.timeMean
	s.timeMean += delta / float64(s.timeCount)
	s.timeM2 += delta * (rec.ResponseTimeMs - s.timeMean)
	return nil
}

// Responses returns the ordered answer history. Callers must not modify it.
func (s *SessionState) Responses() []models.ResponseRecord {
	return s.responses
}

// Asked returns the number of questions served so far.
func (s *SessionState) Asked() int {
	return s.asked
}

// Budget returns the session's total question budget.
func (s *SessionState) Budget() int {
	return s.budget
}

// Difficulty returns the current tier for a domain.
func (s *SessionState) Difficulty(domain models.Domain) models.Difficulty {
	return s.difficulty[domain]
}

// DomainAccuracy returns correct/answered for a domain, 0.0 when the
// domain has no answers yet.
func (s *SessionState) DomainAccuracy(domain models.Domain) float64 {
	n := s.answeredBy[domain]
	if n == 0 {
		return 0.0
	}
	return float64(s.correctBy[domain]) / float64(n)
}

// MeanResponseTime returns the running mean in milliseconds.
func (s *SessionState) MeanResponseTime() float64 {
	return s.timeMean
}

// ResponseTimeStdDev returns the population standard deviation of response
// times in milliseconds.
func (s *SessionState) ResponseTimeStdDev() float64 {
	if s.timeCount == 0 {
		return 0.0
	}
	return math.Sqrt(s.timeM2 / float64(s.timeCount))
}

func (s *SessionState) markUsed(key models.PoolKey, id string) {
	set, ok := s.used[key]
	if !ok {
		set = make(map[string]struct{})
		s.used[key] = set
	}
	set[id] = struct{}{}
}

func (s *SessionState) resetUsed(key models.PoolKey) {
	delete(s.used, key)
}

func (s *SessionState) unused(key models.PoolKey, slot []models.QuestionTemplate) []models.QuestionTemplate {
	set := s.used[key]
	if len(set) == 0 {
		return slot
	}
	out := make([]models.QuestionTemplate, 0, len(slot))
	for _, t := range slot {
		if _, taken := set[t.ID]; !taken {
			out = append(out, t)
		}
	}
	return out
}
