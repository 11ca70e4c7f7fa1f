package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/inquest/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadLine(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("Bob\nsecond\n"), &out)
	defer r.Close()

	got, err := r.ReadLine(context.Background(), "- name: ")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got)
	assert.Equal(t, "- name: ", out.String())

	got, err = r.ReadLine(context.Background(), "- next: ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestReader_EOFWhenStreamEnds(t *testing.T) {
	r := New(strings.NewReader("only\n"), io.Discard)
	defer r.Close()

	_, err := r.ReadLine(context.Background(), "> ")
	require.NoError(t, err)

	_, err = r.ReadLine(context.Background(), "> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_LastLineWithoutNewline(t *testing.T) {
	r := New(strings.NewReader("no trailing newline"), io.Discard)
	defer r.Close()

	got, err := r.ReadLine(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "no trailing newline", got)
}

func TestReader_CloseUnblocksAndIsIdempotent(t *testing.T) {
	r := New(strings.NewReader(""), io.Discard)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err := r.ReadLine(context.Background(), "> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A pipe-like reader that never delivers data.
	r := New(blockingReader{}, io.Discard)
	defer r.Close()

	_, err := r.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReader_ReusableAfterAbandonedRead(t *testing.T) {
	pr, pw := io.Pipe()
	r := New(pr, io.Discard)
	defer r.Close()
	defer pw.Close()

	// First read times out with its request already submitted: the pump
	// is left waiting on the pipe.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.ReadLine(ctx, "> ")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The line answering the abandoned request arrives late and must be
	// discarded; the next line belongs to the next read.
	go pw.Write([]byte("stale\nfresh\n"))

	got, err := r.ReadLine(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}

func TestReader_SubscribeRequiresTerminal(t *testing.T) {
	r := New(strings.NewReader("x"), io.Discard)
	defer r.Close()

	_, _, err := r.Subscribe()
	assert.Error(t, err)
}

func TestDecodeKeystroke(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want ports.Keystroke
	}{
		{"carriage return", '\r', ports.Keystroke{Name: ports.KeyEnter}},
		{"newline", '\n', ports.Keystroke{Name: ports.KeyEnter}},
		{"delete", 0x7f, ports.Keystroke{Name: ports.KeyBackspace}},
		{"backspace", '\b', ports.Keystroke{Name: ports.KeyBackspace}},
		{"ctrl-c", 0x03, ports.Keystroke{Rune: 'c', Name: ports.KeyInterrupt, Ctrl: true}},
		{"ctrl-d", 0x04, ports.Keystroke{Rune: 'd', Ctrl: true}},
		{"printable", 'x', ports.Keystroke{Rune: 'x'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeKeystroke(tt.in))
		})
	}
}

// blockingReader never returns data and never errors until read is
// abandoned; it simulates a terminal with no keystrokes arriving.
type blockingReader struct{}

func (blockingReader) Read(p []byte) (int, error) {
	select {} // block forever
}
