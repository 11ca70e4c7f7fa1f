/*
Package inquest is a sequential, terminal-based question-answer engine.

Given an ordered set of question definitions, it prompts a user one at a
time, validates and type-casts each reply, applies defaults and
inter-question dependencies, and produces a final mapping of question keys
to typed answers. If the input stream closes before every question is
answered, the partial answer set is returned together with a cancellation
error.

# Concept

A Session owns the I/O handles for one run. The engine core is decoupled
from the terminal through ports (a line reader and a keystroke stream), so
sessions can run against a real TTY, a test script, or any other transport.
Exactly one question is in flight at a time; there is no parallel prompting.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/inquest"
		"github.com/aretw0/inquest/pkg/domain"
	)

	func main() {
		session := inquest.New()

		answers, err := session.Run(context.Background(), []domain.Question{
			{Key: "name", Message: "What is your name?"},
			{
				Key:     "confirmed",
				Type:    domain.TypeConfirm,
				Message: "Are you sure?",
				DependsOn: []domain.Condition{
					{Key: "name", Rule: domain.Equals(domain.String("Bob"))},
				},
			},
		})
		if err != nil {
			log.Fatal(err)
		}

		for _, key := range answers.Keys() {
			value, _ := answers.Get(key)
			fmt.Printf("%s = %s\n", key, value.Text())
		}
	}

Replies are coerced before validation: yes/no words become booleans, text
that round-trips as a numeric literal becomes a number, everything else
stays a string. A blank reply falls back to the question's default when one
is declared.

Password questions read through a masked keystroke path that echoes a mask
rune instead of the typed characters. Ctrl-C during a masked read tears the
session down and surfaces as cancellation.
*/
package inquest
