package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/inquest/pkg/domain"
	"github.com/aretw0/inquest/pkg/ports"
)

// errMaskUnavailable marks a masked read that never started because the
// keystroke stream could not be acquired (no TTY, piped stdin). The
// sequencer falls back to plain line input on this error.
var errMaskUnavailable = errors.New("masked input unavailable")

// MaskedReader collects one line of text from a keystroke stream,
// echoing a mask rune per keystroke instead of the typed characters.
// The keystroke subscription is acquired for the duration of one read
// and released on every exit path.
type MaskedReader struct {
	Keys ports.KeystrokeStream
	Out  io.Writer
	Mask rune
}

// Read displays prompt and buffers keystrokes until Enter. Backspace
// shortens the buffer and rewrites the visible masked line; an interrupt
// keystroke aborts with domain.ErrInterrupted without yielding a value.
func (m *MaskedReader) Read(ctx context.Context, prompt string) (string, error) {
	events, release, err := m.Keys.Subscribe()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errMaskUnavailable, err)
	}
	defer release()

	mask := m.Mask
	if mask == 0 {
		mask = '*'
	}

	fmt.Fprint(m.Out, prompt)

	var buf []rune
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(m.Out)
			return "", ctx.Err()
		case ks, ok := <-events:
			if !ok {
				fmt.Fprintln(m.Out)
				return "", io.EOF
			}
			switch {
			case ks.Name == ports.KeyInterrupt || (ks.Ctrl && ks.Rune == 'c'):
				fmt.Fprintln(m.Out)
				return "", domain.ErrInterrupted
			case ks.Name == ports.KeyEnter:
				fmt.Fprintln(m.Out)
				return string(buf), nil
			case ks.Name == ports.KeyBackspace:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
				// Rewrite the whole line so the visible mask matches the
				// shorter buffer.
				fmt.Fprintf(m.Out, "\r\x1b[2K%s%s", prompt, strings.Repeat(string(mask), len(buf)))
			default:
				if ks.Rune == 0 {
					continue
				}
				buf = append(buf, ks.Rune)
				fmt.Fprint(m.Out, string(mask))
			}
		}
	}
}
