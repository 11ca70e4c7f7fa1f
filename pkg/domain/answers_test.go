package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswers_InsertionOrder(t *testing.T) {
	a := NewAnswers()
	a.Set("b", Number(2))
	a.Set("a", Number(1))
	a.Set("c", Number(3))

	assert.Equal(t, []string{"b", "a", "c"}, a.Keys())
	assert.Equal(t, 3, a.Len())
}

func TestAnswers_OverwriteKeepsPosition(t *testing.T) {
	a := NewAnswers()
	a.Set("first", String("one"))
	a.Set("second", String("two"))
	a.Set("first", String("updated"))

	assert.Equal(t, []string{"first", "second"}, a.Keys())
	got, ok := a.Get("first")
	assert.True(t, ok)
	assert.Equal(t, String("updated"), got)
}

func TestAnswers_MissingKey(t *testing.T) {
	a := NewAnswers()
	got, ok := a.Get("nope")
	assert.False(t, ok)
	assert.True(t, got.IsEmpty())
	assert.False(t, a.Has("nope"))
}

func TestAnswers_Map(t *testing.T) {
	a := NewAnswers()
	a.Set("confirmed", Bool(true))
	a.Set("count", Number(2))

	assert.Equal(t, map[string]any{"confirmed": true, "count": 2.0}, a.Map())
}
