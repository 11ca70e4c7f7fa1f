package dsl

import (
	"regexp"

	"github.com/aretw0/inquest/pkg/domain"
)

// QuestionBuilder provides a fluent API for configuring a question.
type QuestionBuilder struct {
	question domain.Question
	builder  *Builder
}

// Message sets the text displayed before the prompt line.
func (q *QuestionBuilder) Message(text string) *QuestionBuilder {
	q.question.Message = text
	return q
}

// Text constrains the answer to a string.
func (q *QuestionBuilder) Text() *QuestionBuilder {
	q.question.Type = domain.TypeString
	return q
}

// Number constrains the answer to a number.
func (q *QuestionBuilder) Number() *QuestionBuilder {
	q.question.Type = domain.TypeNumber
	return q
}

// Boolean constrains the answer to a boolean.
func (q *QuestionBuilder) Boolean() *QuestionBuilder {
	q.question.Type = domain.TypeBoolean
	return q
}

// Confirm marks the question as a yes/no confirmation.
func (q *QuestionBuilder) Confirm() *QuestionBuilder {
	q.question.Type = domain.TypeConfirm
	return q
}

// Password routes the reply through the masked-input path.
func (q *QuestionBuilder) Password() *QuestionBuilder {
	q.question.Type = domain.TypePassword
	return q
}

// Default sets a literal fallback recorded when the reply is empty.
func (q *QuestionBuilder) Default(v domain.Answer) *QuestionBuilder {
	q.question.Default = domain.Literal(v)
	return q
}

// DefaultFunc sets a fallback computed from the answers collected so far.
func (q *QuestionBuilder) DefaultFunc(fn func(*domain.Answers) domain.Answer) *QuestionBuilder {
	q.question.Default = domain.Computed(fn)
	return q
}

// Options restricts valid answers to an explicit list.
func (q *QuestionBuilder) Options(vs ...domain.Answer) *QuestionBuilder {
	q.question.Options = append(q.question.Options, vs...)
	return q
}

// Pattern validates the textual form of the answer against a regular
// expression. It panics on an invalid expression, matching the
// fail-fast contract of regexp.MustCompile.
func (q *QuestionBuilder) Pattern(expr string) *QuestionBuilder {
	q.question.Pattern = regexp.MustCompile(expr)
	return q
}

// AllowEmpty accepts a blank reply even without a default.
func (q *QuestionBuilder) AllowEmpty() *QuestionBuilder {
	q.question.AllowEmpty = true
	return q
}

// ErrorMessage overrides the built-in validation failure message.
func (q *QuestionBuilder) ErrorMessage(msg string) *QuestionBuilder {
	q.question.ErrorMessage = msg
	return q
}

// When gates the question on a prior answer equaling v.
func (q *QuestionBuilder) When(key string, v domain.Answer) *QuestionBuilder {
	q.question.DependsOn = append(q.question.DependsOn, domain.Condition{
		Key:  key,
		Rule: domain.Equals(v),
	})
	return q
}

// WhenOneOf gates the question on a prior answer being one of vs.
func (q *QuestionBuilder) WhenOneOf(key string, vs ...domain.Answer) *QuestionBuilder {
	q.question.DependsOn = append(q.question.DependsOn, domain.Condition{
		Key:  key,
		Rule: domain.OneOf(vs...),
	})
	return q
}

// WhenNot gates the question on a prior answer differing from v. An
// absent answer satisfies the condition.
func (q *QuestionBuilder) WhenNot(key string, v domain.Answer) *QuestionBuilder {
	q.question.DependsOn = append(q.question.DependsOn, domain.Condition{
		Key:  key,
		Rule: domain.Not(v),
	})
	return q
}

// Build returns the underlying domain.Question.
// This is primarily used by the Builder, but exposed for advanced usage.
func (q *QuestionBuilder) Build() domain.Question {
	return q.question
}
