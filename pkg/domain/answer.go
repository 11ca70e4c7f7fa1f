package domain

import "strconv"

// Kind identifies the runtime type of an Answer.
type Kind int

const (
	KindEmpty Kind = iota
	KindBool
	KindNumber
	KindString
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "empty"
	}
}

// Answer is the typed result of one question.
// The zero value is the empty (absent) answer.
type Answer struct {
	kind Kind
	b    bool
	n    float64
	s    string
}

// Empty is the absent answer. It is what coercion yields for blank input
// and what a skipped question leaves behind (nothing).
var Empty = Answer{}

// Bool wraps a boolean value as an Answer.
func Bool(v bool) Answer { return Answer{kind: KindBool, b: v} }

// Number wraps a numeric value as an Answer.
func Number(v float64) Answer { return Answer{kind: KindNumber, n: v} }

// String wraps a text value as an Answer.
func String(v string) Answer { return Answer{kind: KindString, s: v} }

// Kind returns the runtime type of the answer.
func (a Answer) Kind() Kind { return a.kind }

// IsEmpty reports whether the answer is absent.
func (a Answer) IsEmpty() bool { return a.kind == KindEmpty }

// Bool returns the boolean payload. It is false for non-boolean answers.
func (a Answer) Bool() bool { return a.kind == KindBool && a.b }

// Number returns the numeric payload. It is zero for non-numeric answers.
func (a Answer) Number() float64 {
	if a.kind != KindNumber {
		return 0
	}
	return a.n
}

// Text returns the canonical textual form of the answer. Numbers format
// the same way coercion parses them, so coercing the result of Text yields
// an equal answer.
func (a Answer) Text() string {
	switch a.kind {
	case KindBool:
		return strconv.FormatBool(a.b)
	case KindNumber:
		return strconv.FormatFloat(a.n, 'g', -1, 64)
	case KindString:
		return a.s
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (a Answer) String() string { return a.Text() }

// Value unwraps the answer to its plain Go value (nil when empty).
// Useful for exporting answer sets as YAML or JSON.
func (a Answer) Value() any {
	switch a.kind {
	case KindBool:
		return a.b
	case KindNumber:
		return a.n
	case KindString:
		return a.s
	default:
		return nil
	}
}

// Equal reports strict equality: same kind and same payload.
// A string "1" never equals the number 1.
func (a Answer) Equal(other Answer) bool { return a == other }
