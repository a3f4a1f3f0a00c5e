package engine

import "github.com/ld-screen/screening-service/internal/models"

// nextDomain picks the domain with the fewest answered questions, breaking
// ties by the fixed order of models.DomainOrder. The deficit rule keeps
// per-domain counts within 1 of each other for the whole session.
func nextDomain(counts map[models.Domain]int, asked, budget int) (models.Domain, error) {
	if asked >= budget {
		return "", ErrSessionComplete
	}
	best := models.DomainOrder[0]
	for _, d := range models.DomainOrder[1:] {
		if counts[d] < counts[best] {
			best = d
		}
	}
	return best, nil
}
