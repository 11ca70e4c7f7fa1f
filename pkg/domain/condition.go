package domain

import "strings"

// Condition gates a question on the answer recorded for a prior key.
type Condition struct {
	// Key names the prior question whose answer is inspected.
	Key string

	// Rule decides whether the recorded answer satisfies the condition.
	Rule Rule
}

type ruleKind int

const (
	ruleEquals ruleKind = iota
	ruleOneOf
	ruleNot
)

// Rule is a predicate over one recorded answer.
type Rule struct {
	kind  ruleKind
	value Answer
	set   []Answer
}

// Equals requires the recorded answer to strictly equal v.
func Equals(v Answer) Rule { return Rule{kind: ruleEquals, value: v} }

// OneOf requires the recorded answer to be a member of vs.
func OneOf(vs ...Answer) Rule { return Rule{kind: ruleOneOf, set: vs} }

// Not excludes a single value: the rule holds unless the recorded
// answer strictly equals v. A missing answer therefore holds.
func Not(v Answer) Rule { return Rule{kind: ruleNot, value: v} }

// String renders the rule in a short human-readable form, used in
// debug logs and graph labels.
func (r Rule) String() string {
	switch r.kind {
	case ruleNot:
		return "not " + r.value.Text()
	case ruleOneOf:
		parts := make([]string, len(r.set))
		for i, v := range r.set {
			parts[i] = v.Text()
		}
		return "one of " + strings.Join(parts, ", ")
	default:
		return "= " + r.value.Text()
	}
}

func (c Condition) String() string {
	return c.Key + " " + c.Rule.String()
}

// Holds evaluates the rule against a recorded answer. The ok flag
// distinguishes a recorded empty answer from a key that was never
// recorded at all (skipped or not yet asked).
func (r Rule) Holds(got Answer, ok bool) bool {
	switch r.kind {
	case ruleNot:
		return !ok || !got.Equal(r.value)
	case ruleOneOf:
		if !ok {
			return false
		}
		for _, v := range r.set {
			if got.Equal(v) {
				return true
			}
		}
		return false
	default:
		return ok && got.Equal(r.value)
	}
}
