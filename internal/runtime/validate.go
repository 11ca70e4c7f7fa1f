package runtime

import (
	"errors"
	"fmt"

	"github.com/aretw0/inquest/pkg/domain"
)

// validationRule is one link in the priority chain. The first rule whose
// applies predicate matches decides the outcome; later rules are not
// consulted.
type validationRule struct {
	name    string
	applies func(q domain.Question, a domain.Answer) bool
	check   func(q domain.Question, a domain.Answer) error
}

// validationChain is evaluated first-match-wins. Keeping the chain as an
// explicit ordered slice makes the precedence (empty > pattern > options >
// confirm > declared type) visible and testable in one place.
var validationChain = []validationRule{
	{
		name:    "empty",
		applies: func(_ domain.Question, a domain.Answer) bool { return a.IsEmpty() },
		check: func(q domain.Question, _ domain.Answer) error {
			if q.AllowEmpty || q.Default.IsSet() {
				return nil
			}
			return fmt.Errorf("a value is required for %q", q.Key)
		},
	},
	{
		name:    "pattern",
		applies: func(q domain.Question, _ domain.Answer) bool { return q.Pattern != nil },
		check: func(q domain.Question, a domain.Answer) error {
			if q.Pattern.MatchString(a.Text()) {
				return nil
			}
			return fmt.Errorf("%q does not match pattern %s", a.Text(), q.Pattern.String())
		},
	},
	{
		name:    "options",
		applies: func(q domain.Question, _ domain.Answer) bool { return len(q.Options) > 0 },
		check: func(q domain.Question, a domain.Answer) error {
			for _, opt := range q.Options {
				if a.Equal(opt) {
					return nil
				}
			}
			return fmt.Errorf("%q is not one of the allowed values", a.Text())
		},
	},
	{
		name:    "confirm",
		applies: func(q domain.Question, _ domain.Answer) bool { return q.Type == domain.TypeConfirm },
		check: func(_ domain.Question, a domain.Answer) error {
			if a.Kind() == domain.KindBool {
				return nil
			}
			return errors.New("please answer yes or no")
		},
	},
	{
		name: "declared type",
		applies: func(q domain.Question, _ domain.Answer) bool {
			return q.Type != "" && q.Type != domain.TypePassword
		},
		check: func(q domain.Question, a domain.Answer) error {
			if a.Kind().String() == q.Type {
				return nil
			}
			return fmt.Errorf("expected a %s value", q.Type)
		},
	},
}

// validate checks a coerced answer against the question's constraints.
// A nil error means the answer may be recorded. The question's custom
// error message, when set, replaces the built-in one.
func validate(q domain.Question, a domain.Answer) error {
	for _, rule := range validationChain {
		if !rule.applies(q, a) {
			continue
		}
		if err := rule.check(q, a); err != nil {
			if q.ErrorMessage != "" {
				return errors.New(q.ErrorMessage)
			}
			return err
		}
		return nil
	}
	// No constraints declared (or type is password): always valid.
	return nil
}
