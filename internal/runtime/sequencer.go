package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/inquest/pkg/domain"
	"github.com/aretw0/inquest/pkg/ports"
)

// phase tracks where the sequencer is in its lifecycle. Used for debug
// logging only; the control flow itself is the loop in Run.
type phase string

const (
	phaseIdle      phase = "idle"
	phaseAwaiting  phase = "awaiting_reply"
	phaseValidate  phase = "validating"
	phaseDone      phase = "done"
	phaseCancelled phase = "cancelled"
)

// Sequencer drives the prompt/coerce/validate/advance loop over an
// ordered question set. It owns its I/O handles explicitly: one line
// reader per session, released when the run ends.
type Sequencer struct {
	reader     ports.LineReader
	keys       ports.KeystrokeStream
	out        io.Writer
	logger     *slog.Logger
	hooks      domain.Hooks
	mask       rune
	styleError func(string) string
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithKeystrokes enables masked input for password questions. Without a
// keystroke stream, password questions fall back to the plain line reader.
func WithKeystrokes(keys ports.KeystrokeStream) Option {
	return func(s *Sequencer) { s.keys = keys }
}

// WithLogger sets the structured logger for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHooks registers lifecycle observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *Sequencer) { s.hooks = hooks }
}

// WithMaskRune overrides the echo rune for masked input (default '*').
func WithMaskRune(mask rune) Option {
	return func(s *Sequencer) { s.mask = mask }
}

// WithErrorRenderer sets the styling applied to validation failure lines.
func WithErrorRenderer(render func(string) string) Option {
	return func(s *Sequencer) { s.styleError = render }
}

// NewSequencer creates a sequencer bound to one line reader and output sink.
func NewSequencer(reader ports.LineReader, out io.Writer, opts ...Option) *Sequencer {
	s := &Sequencer{
		reader: reader,
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run asks every question in definition order and assembles the final
// answer set. Questions whose dependencies are unmet are skipped and
// never appear in the result. A reply that fails validation is reported
// inline and the same question is re-asked; validation never terminates
// the session.
//
// When the line reader closes before every question is answered, Run
// returns the partial answer set together with a *domain.CancellationError.
// The reader is released on every exit path.
func (s *Sequencer) Run(ctx context.Context, questions []domain.Question) (*domain.Answers, error) {
	if err := checkShape(questions); err != nil {
		return nil, err
	}

	answers := domain.NewAnswers()
	defer s.reader.Close()

	current := phaseIdle
	s.logger.Debug("session starting", "phase", string(current), "questions", len(questions))
	for i := 0; i < len(questions); i++ {
		q := questions[i]

		if len(q.DependsOn) > 0 && !met(q.DependsOn, answers) {
			s.logger.Debug("question skipped", "key", q.Key)
			s.hooks.EmitSkip(q.Key)
			continue
		}

		fallback := q.Default.Resolve(answers)
		s.showMessage(q)
		s.hooks.EmitAsk(q.Key)

		current = phaseAwaiting
		s.logger.Debug("awaiting reply", "key", q.Key, "phase", string(current))
		raw, err := s.acquire(ctx, q, buildPrompt(q, fallback))
		if err != nil {
			if isCancellation(err) {
				current = phaseCancelled
				s.logger.Debug("session cancelled", "phase", string(current), "answered", answers.Len())
				return answers, &domain.CancellationError{Answered: answers.Len()}
			}
			return answers, err
		}

		current = phaseValidate
		coerced := Coerce(raw)
		if err := validate(q, coerced); err != nil {
			s.showError(err)
			s.hooks.EmitRetry(q.Key, err.Error())
			s.logger.Debug("validation failed", "key", q.Key, "phase", string(current), "reason", err.Error())
			i-- // re-ask the same question
			continue
		}

		// The coerced value is what gets validated; the recorded value
		// substitutes the fallback when the reply was blank.
		recorded := coerced
		if recorded.IsEmpty() {
			recorded = fallback
		}
		answers.Set(q.Key, recorded)
		s.hooks.EmitAnswer(q.Key, recorded)
		s.logger.Debug("answer recorded", "key", q.Key, "kind", recorded.Kind().String())
	}

	current = phaseDone
	s.logger.Debug("session complete", "phase", string(current), "answered", answers.Len())
	return answers, nil
}

// acquire reads one raw reply, via the masked reader for password
// questions when a keystroke stream is available. The line reader is
// paused for the duration of a masked read. When the stream cannot be
// acquired at all (piped stdin, no TTY) the reply falls back to plain
// line input instead of failing the session.
func (s *Sequencer) acquire(ctx context.Context, q domain.Question, prompt string) (string, error) {
	if q.Type == domain.TypePassword && s.keys != nil {
		s.reader.Pause()
		masked := &MaskedReader{Keys: s.keys, Out: s.out, Mask: s.mask}
		raw, err := masked.Read(ctx, prompt)
		s.reader.Resume()
		if !errors.Is(err, errMaskUnavailable) {
			return raw, err
		}
		s.logger.Debug("masked input unavailable, using plain input", "key", q.Key, "err", err)
	}
	return s.reader.ReadLine(ctx, prompt)
}

func (s *Sequencer) showMessage(q domain.Question) {
	if q.Message != "" {
		fmt.Fprintln(s.out, q.Message)
	}
	if len(q.Options) > 0 {
		opts := make([]string, len(q.Options))
		for i, o := range q.Options {
			opts[i] = o.Text()
		}
		fmt.Fprintf(s.out, "(%s)\n", strings.Join(opts, ", "))
	}
}

func (s *Sequencer) showError(err error) {
	line := err.Error()
	if s.styleError != nil {
		line = s.styleError(line)
	}
	fmt.Fprintln(s.out, line)
}

// buildPrompt renders the prompt line: "- yes/no:" for confirm questions,
// "- <key>:" otherwise, with the fallback in brackets when non-empty.
func buildPrompt(q domain.Question, fallback domain.Answer) string {
	label := q.Key
	if q.Type == domain.TypeConfirm {
		label = "yes/no"
	}
	prompt := "- " + label + ":"
	if !fallback.IsEmpty() && fallback.Text() != "" {
		prompt += " [" + fallback.Text() + "]"
	}
	return prompt + " "
}

// checkShape rejects unusable question sets before any prompting.
func checkShape(questions []domain.Question) error {
	if questions == nil {
		return fmt.Errorf("%w: nil questions", domain.ErrInvalidQuestions)
	}
	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if q.Key == "" {
			return fmt.Errorf("%w: question with blank key", domain.ErrInvalidQuestions)
		}
		if _, dup := seen[q.Key]; dup {
			return fmt.Errorf("%w: duplicate key %q", domain.ErrInvalidQuestions, q.Key)
		}
		seen[q.Key] = struct{}{}
	}
	return nil
}

// isCancellation reports whether a read error means the session was
// interrupted rather than broken: stream closed, Ctrl-C during masked
// input, or context cancellation.
func isCancellation(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, domain.ErrInterrupted) ||
		errors.Is(err, context.Canceled)
}
