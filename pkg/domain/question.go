package domain

import "regexp"

// Question type constants define how a reply is constrained and acquired.
const (
	// TypeConfirm expects a yes/no reply coerced to a boolean.
	TypeConfirm = "confirm"
	// TypePassword reads the reply through the masked-input path and
	// applies no type constraint.
	TypePassword = "password"

	// Primitive type names checked against the coerced answer's kind.
	TypeBoolean = "boolean"
	TypeNumber  = "number"
	TypeString  = "string"
)

// Question is one unit of user prompting. Key must be unique within the
// set being asked; definition order is the prompting order.
type Question struct {
	// Key identifies the answer in the final answer set.
	Key string

	// Message is displayed before the prompt line.
	Message string

	// Type is one of the Type* constants, or empty for an unconstrained
	// question.
	Type string

	// Default is the fallback recorded when the reply coerces to empty.
	Default Default

	// DependsOn gates the question on previously recorded answers.
	// All conditions must hold or the question is skipped entirely.
	DependsOn []Condition

	// Options restricts valid answers to an explicit list.
	Options []Answer

	// Pattern validates the textual form of the answer when set.
	Pattern *regexp.Regexp

	// AllowEmpty accepts a blank reply even without a default.
	AllowEmpty bool

	// ErrorMessage overrides the built-in validation failure message.
	ErrorMessage string
}

// Default is the fallback value for a question: either a literal Answer
// or a function of the answers collected so far. The shape is decided
// once at question construction, never re-inspected per lookup.
type Default struct {
	literal Answer
	compute func(*Answers) Answer
}

// Literal declares a fixed default value.
func Literal(v Answer) Default { return Default{literal: v} }

// Computed declares a default derived from the partial answer set.
func Computed(fn func(*Answers) Answer) Default { return Default{compute: fn} }

// IsSet reports whether any default was declared. A literal empty
// answer counts as no default.
func (d Default) IsSet() bool { return d.compute != nil || !d.literal.IsEmpty() }

// Resolve produces the fallback for this question given the answers
// collected so far.
func (d Default) Resolve(answers *Answers) Answer {
	if d.compute != nil {
		return d.compute(answers)
	}
	return d.literal
}
