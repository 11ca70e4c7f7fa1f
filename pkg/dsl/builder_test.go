package dsl

import (
	"testing"

	"github.com/aretw0/inquest/pkg/domain"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	b := New()

	b.Ask("name").
		Message("What is your name?").
		Text().
		Default(domain.String("world"))

	b.Ask("confirmed").
		Message("Proceed?").
		Confirm()

	b.Ask("color").
		Options(domain.String("red"), domain.String("blue")).
		When("confirmed", domain.Bool(true))

	questions, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("Expected 3 questions, got %d", len(questions))
	}

	name := questions[0]
	if name.Key != "name" {
		t.Errorf("Expected first key 'name', got '%s'", name.Key)
	}
	if name.Type != domain.TypeString {
		t.Errorf("Expected type 'string', got '%s'", name.Type)
	}
	if !name.Default.IsSet() {
		t.Error("Expected a default on 'name'")
	}
	if got := name.Default.Resolve(domain.NewAnswers()); !got.Equal(domain.String("world")) {
		t.Errorf("Expected default 'world', got '%s'", got.Text())
	}

	confirmed := questions[1]
	if confirmed.Type != domain.TypeConfirm {
		t.Errorf("Expected type 'confirm', got '%s'", confirmed.Type)
	}

	color := questions[2]
	if len(color.Options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(color.Options))
	}
	if len(color.DependsOn) != 1 {
		t.Fatalf("Expected 1 condition, got %d", len(color.DependsOn))
	}
	cond := color.DependsOn[0]
	if cond.Key != "confirmed" {
		t.Errorf("Expected condition key 'confirmed', got '%s'", cond.Key)
	}
	if !cond.Rule.Holds(domain.Bool(true), true) {
		t.Error("Expected condition to hold for true")
	}
	if cond.Rule.Holds(domain.Bool(false), true) {
		t.Error("Expected condition to fail for false")
	}
}

func TestBuilder_RepeatedKeyReturnsSameBuilder(t *testing.T) {
	b := New()

	b.Ask("port").Number()
	b.Ask("port").Default(domain.Number(8080))

	questions, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}
	q := questions[0]
	if q.Type != domain.TypeNumber {
		t.Errorf("Expected type 'number', got '%s'", q.Type)
	}
	if !q.Default.IsSet() {
		t.Error("Expected default to survive the second Ask")
	}
}

func TestBuilder_EmptyKeyFails(t *testing.T) {
	b := New()
	b.Ask("")

	if _, err := b.Build(); err == nil {
		t.Fatal("Expected Build() to fail on an empty key")
	}
}

func TestBuilder_DefaultFunc(t *testing.T) {
	b := New()
	b.Ask("greeting").DefaultFunc(func(a *domain.Answers) domain.Answer {
		got, ok := a.Get("name")
		if !ok {
			return domain.String("hello")
		}
		return domain.String("hello " + got.Text())
	})

	questions, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	answers := domain.NewAnswers()
	answers.Set("name", domain.String("ada"))
	got := questions[0].Default.Resolve(answers)
	if !got.Equal(domain.String("hello ada")) {
		t.Errorf("Expected 'hello ada', got '%s'", got.Text())
	}
}
