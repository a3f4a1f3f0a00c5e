package engine

import (
	"fmt"

	"github.com/ld-screen/screening-service/internal/models"
)

// Pool is the read-only template bank, indexed by (domain, difficulty).
// It is built once at startup and safe for concurrent reads.
type Pool struct {
	slots map[models.PoolKey][]models.QuestionTemplate
	byID  map[string]models.QuestionTemplate
}

// NewPool indexes the given templates. Templates with an unknown domain or
// difficulty, or a duplicate id, are rejected.
func NewPool(templates []models.QuestionTemplate) (*Pool, error) {
	p := &Pool{
		slots: make(map[models.PoolKey][]models.QuestionTemplate),
		byID:  make(map[string]models.QuestionTemplate),
	}
	for _, t := range templates {
		if !t.Domain.Valid() {
			return nil, fmt.Errorf("template %s: %w: %s", t.ID, ErrInvalidDomain, t.Domain)
		}
		if !t.Difficulty.Valid() {
			return nil, fmt.Errorf("template %s: %w: %s", t.ID, ErrInvalidDifficulty, t.Difficulty)
		}
		if _, dup := p.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %s", t.ID)
		}
		key := models.PoolKey{Domain: t.Domain, Difficulty: t.Difficulty}
		p.slots[key] = append(p.slots[key], t)
		p.byID[t.ID] = t
	}
	return p, nil
}

// Slot returns the templates for one (domain, difficulty) pair. The returned
// slice must not be modified.
func (p *Pool) Slot(domain models.Domain, difficulty models.Difficulty) []models.QuestionTemplate {
	return p.slots[models.PoolKey{Domain: domain, Difficulty: difficulty}]
}

// Template looks up a single template by id.
func (p *Pool) Template(id string) (models.QuestionTemplate, bool) {
	t, ok := p.byID[id]
	return t, ok
}

// Size returns the total number of templates in the pool.
func (p *Pool) Size() int {
	return len(p.byID)
}

// MinSlotSize returns the smallest slot across all populated
// (domain, difficulty) pairs, or 0 for an empty pool.
func (p *Pool) MinSlotSize() int {
	min := 0
	for _, slot := range p.slots {
		if min == 0 || len(slot) < min {
			min = len(slot)
		}
	}
	return min
}
