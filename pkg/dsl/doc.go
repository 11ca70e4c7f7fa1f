/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing question lists.

It allows developers to define prompting sessions using a type-safe, fluent builder pattern
instead of relying on external YAML files. This is particularly useful for dynamic question
generation, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"context"

		"github.com/aretw0/inquest"
		"github.com/aretw0/inquest/pkg/domain"
		"github.com/aretw0/inquest/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Ask("name").
			Message("What is your name?").
			Default(domain.String("world"))

		b.Ask("confirmed").
			Message("Proceed?").
			Confirm()

		b.Ask("color").
			Message("Pick a color").
			Options(domain.String("red"), domain.String("blue")).
			When("confirmed", domain.Bool(true))

		questions, _ := b.Build()
		answers, _ := inquest.Run(context.Background(), questions)
		_ = answers
	}
*/
package dsl
