package domain

// Hooks defines callbacks for session observability. All fields are
// optional; the sequencer emits through the nil-safe Emit* helpers.
type Hooks struct {
	// OnAsk fires when a question is about to be displayed.
	OnAsk func(key string)
	// OnSkip fires when a question is skipped because a dependency is unmet.
	OnSkip func(key string)
	// OnAnswer fires when an answer is recorded.
	OnAnswer func(key string, answer Answer)
	// OnRetry fires when a reply failed validation and the question is re-asked.
	OnRetry func(key string, reason string)
}

// EmitAsk invokes OnAsk if set.
func (h Hooks) EmitAsk(key string) {
	if h.OnAsk != nil {
		h.OnAsk(key)
	}
}

// EmitSkip invokes OnSkip if set.
func (h Hooks) EmitSkip(key string) {
	if h.OnSkip != nil {
		h.OnSkip(key)
	}
}

// EmitAnswer invokes OnAnswer if set.
func (h Hooks) EmitAnswer(key string, answer Answer) {
	if h.OnAnswer != nil {
		h.OnAnswer(key, answer)
	}
}

// EmitRetry invokes OnRetry if set.
func (h Hooks) EmitRetry(key string, reason string) {
	if h.OnRetry != nil {
		h.OnRetry(key, reason)
	}
}
