package ports

import "context"

// LineReader acquires one line of raw text per call. Implementations own
// the underlying input stream; the sequencer owns exactly one reader per
// session and releases it when the session ends.
type LineReader interface {
	// ReadLine displays prompt and blocks until one line of input is
	// available. It returns io.EOF once the reader has been closed or
	// the underlying stream ended; the sequencer treats that as session
	// cancellation. Context cancellation also ends the read.
	ReadLine(ctx context.Context, prompt string) (string, error)

	// Pause suspends line handling so another consumer (the masked
	// reader) can take over the input stream.
	Pause()

	// Resume re-enables line handling after a Pause.
	Resume()

	// Close releases the reader. It is idempotent and unblocks any
	// pending ReadLine with io.EOF.
	Close() error
}

// Keystroke is one raw key event with decoded metadata.
type Keystroke struct {
	// Rune is the printable character, if any.
	Rune rune
	// Name identifies special keys: "enter", "backspace", "ctrl+c".
	Name string
	// Ctrl reports whether a control modifier was held.
	Ctrl bool
}

// Keystroke name constants for special keys.
const (
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
	KeyInterrupt = "ctrl+c"
)

// KeystrokeStream exposes raw key events for masked input. Subscribe is
// a scoped acquisition: the returned release function must be called
// when the masked read finishes, success or not, so the stream can
// reattach its normal handling.
type KeystrokeStream interface {
	Subscribe() (events <-chan Keystroke, release func(), err error)
}
