package dsl

import (
	"fmt"

	"github.com/aretw0/inquest/pkg/domain"
)

// Builder accumulates questions in declaration order.
type Builder struct {
	order []*QuestionBuilder
	byKey map[string]*QuestionBuilder
}

// New creates a new question-list builder.
func New() *Builder {
	return &Builder{
		byKey: make(map[string]*QuestionBuilder),
	}
}

// Ask creates a new question with the given key.
// If the key was already declared, it returns the existing builder.
func (b *Builder) Ask(key string) *QuestionBuilder {
	if qb, ok := b.byKey[key]; ok {
		return qb
	}
	qb := &QuestionBuilder{
		question: domain.Question{
			Key: key,
		},
		builder: b,
	}
	b.byKey[key] = qb
	b.order = append(b.order, qb)
	return qb
}

// Build compiles the declared questions into a slice ready for a
// session, preserving declaration order.
func (b *Builder) Build() ([]domain.Question, error) {
	questions := make([]domain.Question, 0, len(b.order))
	for _, qb := range b.order {
		if qb.question.Key == "" {
			return nil, fmt.Errorf("question declared with an empty key")
		}
		questions = append(questions, qb.question)
	}
	return questions, nil
}
