package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/aretw0/inquest/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintAnswers_YAML(t *testing.T) {
	answers := domain.NewAnswers()
	answers.Set("name", domain.String("Bob"))
	answers.Set("confirmed", domain.Bool(true))

	var out bytes.Buffer
	require.NoError(t, printAnswers(&out, answers, false))

	assert.Contains(t, out.String(), "name: Bob")
	assert.Contains(t, out.String(), "confirmed: true")
}

func TestPrintAnswers_JSON(t *testing.T) {
	answers := domain.NewAnswers()
	answers.Set("count", domain.Number(2))

	var out bytes.Buffer
	require.NoError(t, printAnswers(&out, answers, true))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, map[string]any{"count": 2.0}, decoded)
}
