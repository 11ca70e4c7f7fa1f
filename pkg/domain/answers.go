package domain

// Answers is the insertion-ordered mapping of question key to Answer
// accumulated during one session. It is owned exclusively by one run of
// the sequencer and is not safe for concurrent use.
type Answers struct {
	keys   []string
	values map[string]Answer
}

// NewAnswers creates an empty answer set.
func NewAnswers() *Answers {
	return &Answers{values: make(map[string]Answer)}
}

// Set records an answer under a key. A key recorded twice keeps its
// original position in the insertion order.
func (a *Answers) Set(key string, v Answer) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = v
}

// Get returns the answer recorded for key, and whether one exists.
func (a *Answers) Get(key string) (Answer, bool) {
	if a == nil {
		return Empty, false
	}
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether a key has been recorded.
func (a *Answers) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of recorded answers.
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the recorded keys in insertion order.
func (a *Answers) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Map exports the answer set as a plain map of unwrapped values.
// Insertion order is lost; use Keys when order matters.
func (a *Answers) Map() map[string]any {
	out := make(map[string]any, a.Len())
	if a == nil {
		return out
	}
	for k, v := range a.values {
		out[k] = v.Value()
	}
	return out
}
