package inquest

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/inquest/internal/runtime"
	"github.com/aretw0/inquest/pkg/adapters/terminal"
	"github.com/aretw0/inquest/pkg/domain"
	"github.com/aretw0/inquest/pkg/ports"
)

// Version is the library version, overridable at build time.
var Version = "dev"

// Session owns the I/O handles for one prompting run. Handles are held
// explicitly by the session object rather than in package-level state, so
// tests can instantiate independent sessions. A session drives one run at
// a time; concurrent runs on the same session are unsupported.
type Session struct {
	reader      ports.LineReader
	keys        ports.KeystrokeStream
	out         io.Writer
	logger      *slog.Logger
	hooks       domain.Hooks
	mask        rune
	renderError func(string) string
}

// Option defines a functional option for configuring a Session.
type Option func(*Session)

// WithLineReader injects a custom line reader, bypassing the default
// terminal adapter.
func WithLineReader(r ports.LineReader) Option {
	return func(s *Session) { s.reader = r }
}

// WithKeystrokes injects a keystroke stream for masked (password) input.
func WithKeystrokes(k ports.KeystrokeStream) Option {
	return func(s *Session) { s.keys = k }
}

// WithOutput sets the sink for prompts, messages, and errors.
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// WithLogger sets a custom structured logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithHooks registers lifecycle observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *Session) { s.hooks = hooks }
}

// WithMaskRune overrides the echo rune for masked input (default '*').
func WithMaskRune(mask rune) Option {
	return func(s *Session) { s.mask = mask }
}

// WithErrorRenderer sets the styling applied to validation failure lines.
func WithErrorRenderer(render func(string) string) Option {
	return func(s *Session) { s.renderError = render }
}

// New creates a Session. Without options it binds to the process
// terminal: stdin line reading, stdout output, and masked input when
// stdin is a TTY.
func New(opts ...Option) *Session {
	s := &Session{
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.reader == nil {
		term := terminal.New(os.Stdin, s.out)
		s.reader = term
		if s.keys == nil {
			s.keys = term
		}
	}
	return s
}

// Run asks every question in definition order and returns the assembled
// answer set. Skipped questions (unmet dependencies) are absent from the
// result. The session's line reader is released when the run ends.
//
// Failure modes: domain.ErrInvalidQuestions for an unusable question set
// (reported before any prompting), and *domain.CancellationError when the
// reader closes early, returned together with the partial answers.
// Validation failures never surface as errors; the question is re-asked.
func (s *Session) Run(ctx context.Context, questions []domain.Question) (*domain.Answers, error) {
	opts := []runtime.Option{
		runtime.WithLogger(s.logger),
		runtime.WithHooks(s.hooks),
	}
	if s.keys != nil {
		opts = append(opts, runtime.WithKeystrokes(s.keys))
	}
	if s.mask != 0 {
		opts = append(opts, runtime.WithMaskRune(s.mask))
	}
	if s.renderError != nil {
		opts = append(opts, runtime.WithErrorRenderer(s.renderError))
	}

	seq := runtime.NewSequencer(s.reader, s.out, opts...)
	return seq.Run(ctx, questions)
}

// Confirm asks a single yes/no question defaulting to yes. It returns
// true iff the recorded answer is the boolean true or the literal string
// "yes" (the default when the user just presses Enter).
func (s *Session) Confirm(ctx context.Context, message string) (bool, error) {
	answers, err := s.Run(ctx, []domain.Question{{
		Key:     "confirmed",
		Message: message,
		Type:    domain.TypeConfirm,
		Default: domain.Literal(domain.String("yes")),
	}})
	if err != nil {
		return false, err
	}
	got, _ := answers.Get("confirmed")
	return got.Bool() || got.Equal(domain.String("yes")), nil
}

// Run prompts on the process terminal using a fresh default session.
func Run(ctx context.Context, questions []domain.Question) (*domain.Answers, error) {
	return New().Run(ctx, questions)
}

// Confirm asks a single yes/no question on the process terminal.
func Confirm(ctx context.Context, message string) (bool, error) {
	return New().Confirm(ctx, message)
}
