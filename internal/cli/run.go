// Package cli wires the inquest library into its command-line frontends.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/inquest"
	"github.com/aretw0/inquest/internal/presentation/tui"
	"github.com/aretw0/inquest/pkg/domain"
	"github.com/aretw0/inquest/pkg/schema"
)

// AskOptions configures one `ask` invocation.
type AskOptions struct {
	File  string
	JSON  bool
	Debug bool
}

// RunAsk loads a question file, runs a terminal session, and prints the
// final answers to stdout. On cancellation the partial answers are still
// printed before the error is propagated.
func RunAsk(opts AskOptions) error {
	logger := createLogger(opts.Debug)

	questions, err := schema.Load(opts.File)
	if err != nil {
		return fmt.Errorf("error loading questions: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !opts.JSON {
		tui.PrintBanner(inquest.Version)
	}

	// Question messages are markdown; render them only when a human is
	// watching.
	if interactive {
		render := tui.NewRenderer()
		for i := range questions {
			if questions[i].Message != "" {
				questions[i].Message = render(questions[i].Message)
			}
		}
	}

	sessionOpts := []inquest.Option{
		inquest.WithLogger(logger),
		inquest.WithErrorRenderer(tui.ErrorRenderer()),
	}
	if opts.Debug {
		sessionOpts = append(sessionOpts, inquest.WithHooks(debugHooks(logger)))
	}

	session := inquest.New(sessionOpts...)
	answers, runErr := session.Run(context.Background(), questions)

	if runErr != nil {
		var cancelErr *domain.CancellationError
		if errors.As(runErr, &cancelErr) {
			logger.Warn("session canceled", "answered", cancelErr.Answered)
			// Partial results are valid but incomplete.
			if err := printAnswers(os.Stdout, answers, opts.JSON); err != nil {
				return err
			}
		}
		return runErr
	}

	return printAnswers(os.Stdout, answers, opts.JSON)
}

// printAnswers writes the answer set as YAML (default) or JSON.
func printAnswers(w io.Writer, answers *domain.Answers, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(answers.Map(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode answers: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	out, err := yaml.Marshal(answers.Map())
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	fmt.Fprint(w, string(out))
	return nil
}
