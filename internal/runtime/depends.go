package runtime

import "github.com/aretw0/inquest/pkg/domain"

// met reports whether every dependency condition holds against the
// answers recorded so far. An empty condition list is trivially met.
func met(conds []domain.Condition, answers *domain.Answers) bool {
	for _, c := range conds {
		got, ok := answers.Get(c.Key)
		if !c.Rule.Holds(got, ok) {
			return false
		}
	}
	return true
}
