package modes

import (
	"github.com/heartmarshall/studyset-backend/internal/domain"
)

const maxDistractors = 3

// sides returns the text shown to the user and the text expected back.
func sides(t domain.Term, dir domain.Direction) (prompt, expected string) {
	if dir == domain.DirectionDefinitionToTerm {
		return t.Definition, t.Term
	}
	return t.Term, t.Definition
}

// distractors picks up to n wrong answers for target from the other terms of
// the set, skipping texts that normalize to the correct answer or to each other.
func (s *Service) distractors(terms []domain.Term, target domain.Term, dir domain.Direction, n int) []string {
	_, correct := sides(target, dir)
	seen := map[string]struct{}{domain.NormalizeText(correct): {}}

	var pool []string
	for _, t := range terms {
		if t.ID == target.ID {
			continue
		}
		_, text := sides(t, dir)
		key := domain.NormalizeText(text)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, text)
	}

	s.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// choiceOptions returns the correct answer mixed with up to three distractors.
func (s *Service) choiceOptions(terms []domain.Term, target domain.Term, dir domain.Direction) []string {
	_, correct := sides(target, dir)
	options := append([]string{correct}, s.distractors(terms, target, dir, maxDistractors)...)
	s.shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}
