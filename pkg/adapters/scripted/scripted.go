// Package scripted provides deterministic in-memory implementations of
// the inquest I/O ports. It is the adapter of choice for tests and for
// headless runs where replies are known up front.
package scripted

import (
	"context"
	"io"
	"sync"

	"github.com/aretw0/inquest/pkg/ports"
)

// Reader is a ports.LineReader fed by a fixed list of replies. An
// exhausted script behaves exactly like a closed stream: ReadLine
// returns io.EOF, which the sequencer treats as cancellation.
type Reader struct {
	mu      sync.Mutex
	replies []string
	prompts []string
	closed  bool
}

// NewReader creates a reader that will hand out the given replies in order.
func NewReader(replies ...string) *Reader {
	return &Reader{replies: replies}
}

// ReadLine pops the next scripted reply, recording the prompt that was
// displayed for it.
func (r *Reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || len(r.replies) == 0 {
		return "", io.EOF
	}
	r.prompts = append(r.prompts, prompt)
	reply := r.replies[0]
	r.replies = r.replies[1:]
	return reply, nil
}

// Pause is a no-op for scripted input.
func (r *Reader) Pause() {}

// Resume is a no-op for scripted input.
func (r *Reader) Resume() {}

// Close marks the reader closed. Subsequent reads return io.EOF.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (r *Reader) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Prompts returns the prompts displayed so far, in order.
func (r *Reader) Prompts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.prompts))
	copy(out, r.prompts)
	return out
}

// Keystrokes is a ports.KeystrokeStream replaying a fixed key sequence.
type Keystrokes struct {
	mu       sync.Mutex
	events   []ports.Keystroke
	releases int
}

// NewKeystrokes creates a stream that replays the given events once.
func NewKeystrokes(events ...ports.Keystroke) *Keystrokes {
	return &Keystrokes{events: events}
}

// TypeLine builds the keystroke sequence for typing s and pressing Enter.
func TypeLine(s string) []ports.Keystroke {
	events := make([]ports.Keystroke, 0, len(s)+1)
	for _, r := range s {
		events = append(events, ports.Keystroke{Rune: r})
	}
	return append(events, ports.Keystroke{Name: ports.KeyEnter})
}

// Subscribe hands out a buffered channel pre-filled with the scripted
// events. The channel is closed after the last event, so a reader that
// consumes past the script observes a closed stream.
func (k *Keystrokes) Subscribe() (<-chan ports.Keystroke, func(), error) {
	k.mu.Lock()
	events := k.events
	k.mu.Unlock()

	ch := make(chan ports.Keystroke, len(events))
	for _, e := range events {
		ch <- e
	}
	close(ch)

	var once sync.Once
	release := func() {
		once.Do(func() {
			k.mu.Lock()
			k.releases++
			k.mu.Unlock()
		})
	}
	return ch, release, nil
}

// Releases reports how many subscriptions have been released. Tests use
// this to assert the masked reader gives the stream back.
func (k *Keystrokes) Releases() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.releases
}
