// Package terminal adapts a real TTY (or any reader/writer pair) to the
// inquest I/O ports: buffered line reading for ordinary questions and a
// raw-mode keystroke stream for masked input.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/term"

	"github.com/aretw0/inquest/pkg/ports"
)

// Reader implements ports.LineReader and ports.KeystrokeStream on top of
// one input stream. Reads are request-driven: the pump goroutine only
// touches the stream while a ReadLine is in flight, so a masked read can
// safely take over the same stream in between.
type Reader struct {
	in   *bufio.Reader
	out  io.Writer
	file *os.File // underlying tty, nil when input is not a terminal
	fd   int

	requests  chan uint64
	lines     chan lineResult
	closed    chan struct{}
	closeOnce sync.Once
	paused    atomic.Bool
	seq       atomic.Uint64
}

// lineResult carries the request ID it answers, so a ReadLine abandoned
// via context cancellation cannot hand its line to the next caller.
type lineResult struct {
	id   uint64
	text string
	err  error
}

// New creates a terminal reader. Nil arguments default to the process
// stdin/stdout.
func New(in io.Reader, out io.Writer) *Reader {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	r := &Reader{
		in:       bufio.NewReader(in),
		out:      out,
		fd:       -1,
		requests: make(chan uint64),
		lines:    make(chan lineResult),
		closed:   make(chan struct{}),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.file = f
		r.fd = int(f.Fd())
	}

	go r.loop()
	return r
}

// loop serves one line per request. Keeping the stream untouched between
// requests is what lets the keystroke pump borrow it during masked reads.
func (r *Reader) loop() {
	for {
		var id uint64
		select {
		case <-r.closed:
			return
		case id = <-r.requests:
		}

		text, err := r.in.ReadString('\n')
		text = strings.TrimRight(text, "\r\n")

		res := lineResult{id: id, text: text}
		if err != nil && text == "" {
			res = lineResult{id: id, err: io.EOF}
		}

		select {
		case r.lines <- res:
		case <-r.closed:
			return
		}
		if res.err != nil {
			return
		}
	}
}

// ReadLine displays prompt and blocks until a line, close, or context
// cancellation. Lines produced for an earlier, abandoned ReadLine are
// drained and dropped, never handed to this call.
func (r *Reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if r.paused.Load() {
		return "", fmt.Errorf("line reader is paused")
	}

	fmt.Fprint(r.out, prompt)
	id := r.seq.Add(1)

	submitted := false
	for {
		if !submitted {
			select {
			case r.requests <- id:
				submitted = true
			case res := <-r.lines:
				// Stale line from an abandoned read; dropping it unblocks
				// the pump so it can accept this request. A stale error
				// still means the stream is gone.
				if res.err != nil {
					return "", res.err
				}
			case <-r.closed:
				return "", io.EOF
			case <-ctx.Done():
				return "", ctx.Err()
			}
			continue
		}

		select {
		case res := <-r.lines:
			if res.id != id {
				continue
			}
			return res.text, res.err
		case <-r.closed:
			return "", io.EOF
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// Pause suspends line handling while the keystroke stream owns the input.
func (r *Reader) Pause() { r.paused.Store(true) }

// Resume re-enables line handling.
func (r *Reader) Resume() { r.paused.Store(false) }

// Close releases the reader and unblocks any pending ReadLine. The
// process stdin itself is never closed.
func (r *Reader) Close() error {
	r.closeOnce.Do(func() {
		close(r.closed)
		if r.file != nil && r.file != os.Stdin {
			r.file.Close()
		}
	})
	return nil
}

// Subscribe switches the tty into raw mode and streams decoded
// keystrokes until released. It fails when input is not a terminal;
// callers fall back to plain line reading in that case.
func (r *Reader) Subscribe() (<-chan ports.Keystroke, func(), error) {
	if r.fd < 0 {
		return nil, nil, fmt.Errorf("masked input requires a terminal")
	}

	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	events := make(chan ports.Keystroke)
	done := make(chan struct{})
	go r.pumpKeys(events, done)

	var once sync.Once
	release := func() {
		once.Do(func() {
			close(done)
			_ = term.Restore(r.fd, oldState)
		})
	}
	return events, release, nil
}

// pumpKeys delivers keystrokes until the line is terminated. It stops on
// its own after Enter or an interrupt so no byte beyond the masked line
// is consumed from the shared stream.
func (r *Reader) pumpKeys(events chan<- ports.Keystroke, done <-chan struct{}) {
	for {
		ch, _, err := r.in.ReadRune()
		if err != nil {
			close(events)
			return
		}
		ks := decodeKeystroke(ch)
		select {
		case events <- ks:
		case <-done:
			return
		}
		if ks.Name == ports.KeyEnter || ks.Name == ports.KeyInterrupt {
			return
		}
	}
}

// decodeKeystroke maps a raw rune to a keystroke event.
func decodeKeystroke(r rune) ports.Keystroke {
	switch r {
	case '\r', '\n':
		return ports.Keystroke{Name: ports.KeyEnter}
	case 0x7f, '\b':
		return ports.Keystroke{Name: ports.KeyBackspace}
	case 0x03:
		return ports.Keystroke{Rune: 'c', Name: ports.KeyInterrupt, Ctrl: true}
	}
	if r < 0x20 {
		// Other control chords: report the letter with the Ctrl flag.
		return ports.Keystroke{Rune: r + 0x60, Ctrl: true}
	}
	return ports.Keystroke{Rune: r}
}
