package inquest_test

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/aretw0/inquest"
	"github.com/aretw0/inquest/pkg/adapters/scripted"
	"github.com/aretw0/inquest/pkg/domain"
)

// ExampleSession_Run demonstrates a scripted session, useful for tests
// and headless automation where replies are known up front.
func ExampleSession_Run() {
	session := inquest.New(
		inquest.WithLineReader(scripted.NewReader("Bob", "yes")),
		inquest.WithOutput(io.Discard),
	)

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
	// Output:
	// name = Bob
	// confirmed = true
}

// ExampleSession_Run_defaults shows blank replies falling back to
// literal and computed defaults.
func ExampleSession_Run_defaults() {
	session := inquest.New(
		inquest.WithLineReader(scripted.NewReader("", "")),
		inquest.WithOutput(io.Discard),
	)

	answers, err := session.Run(context.Background(), []domain.Question{
		{Key: "host", Default: domain.Literal(domain.String("localhost"))},
		{Key: "url", Default: domain.Computed(func(a *domain.Answers) domain.Answer {
			host, _ := a.Get("host")
			return domain.String("http://" + host.Text())
		})},
	})
	if err != nil {
		log.Fatal(err)
	}

	url, _ := answers.Get("url")
	fmt.Println(url.Text())
	// Output:
	// http://localhost
}
