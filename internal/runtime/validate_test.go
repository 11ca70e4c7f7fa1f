package runtime

import (
	"regexp"
	"testing"

	"github.com/aretw0/inquest/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidate_EmptyAnswer(t *testing.T) {
	t.Run("rejected without default or allow-empty", func(t *testing.T) {
		q := domain.Question{Key: "name"}
		assert.Error(t, validate(q, domain.Empty))
	})

	t.Run("accepted with allow-empty", func(t *testing.T) {
		q := domain.Question{Key: "name", AllowEmpty: true}
		assert.NoError(t, validate(q, domain.Empty))
	})

	t.Run("accepted with default", func(t *testing.T) {
		q := domain.Question{Key: "name", Default: domain.Literal(domain.String("Bob"))}
		assert.NoError(t, validate(q, domain.Empty))
	})

	t.Run("empty rule wins over later constraints", func(t *testing.T) {
		// Pattern would reject "", but the empty rule applies first.
		q := domain.Question{
			Key:        "name",
			AllowEmpty: true,
			Pattern:    regexp.MustCompile(`^[a-z]+$`),
		}
		assert.NoError(t, validate(q, domain.Empty))
	})
}

func TestValidate_Pattern(t *testing.T) {
	q := domain.Question{Key: "host", Pattern: regexp.MustCompile(`^\w+\.\w+$`)}

	assert.NoError(t, validate(q, domain.String("example.com")))
	assert.Error(t, validate(q, domain.String("not a host")))

	t.Run("non-string answers match on their text form", func(t *testing.T) {
		numeric := domain.Question{Key: "port", Pattern: regexp.MustCompile(`^\d+$`)}
		assert.NoError(t, validate(numeric, domain.Number(8080)))
	})

	t.Run("pattern wins over options", func(t *testing.T) {
		// The answer is in the options list, but the pattern applies first.
		q := domain.Question{
			Key:     "pick",
			Pattern: regexp.MustCompile(`^[0-9]+$`),
			Options: []domain.Answer{domain.String("abc")},
		}
		assert.Error(t, validate(q, domain.String("abc")))
	})
}

func TestValidate_Options(t *testing.T) {
	q := domain.Question{Key: "env", Options: []domain.Answer{domain.String("dev"), domain.String("prod")}}

	assert.NoError(t, validate(q, domain.String("dev")))
	assert.Error(t, validate(q, domain.String("staging")))

	t.Run("membership is strict", func(t *testing.T) {
		q := domain.Question{Key: "n", Options: []domain.Answer{domain.Number(1)}}
		assert.Error(t, validate(q, domain.String("1")))
	})
}

func TestValidate_ConfirmType(t *testing.T) {
	q := domain.Question{Key: "sure", Type: domain.TypeConfirm}

	assert.NoError(t, validate(q, domain.Bool(true)))
	assert.NoError(t, validate(q, domain.Bool(false)))
	assert.Error(t, validate(q, domain.String("maybe")))
	assert.Error(t, validate(q, domain.Number(1)))
}

func TestValidate_DeclaredType(t *testing.T) {
	tests := []struct {
		name    string
		qtype   string
		answer  domain.Answer
		wantErr bool
	}{
		{"number accepts number", domain.TypeNumber, domain.Number(3), false},
		{"number rejects string", domain.TypeNumber, domain.String("three"), true},
		{"string accepts string", domain.TypeString, domain.String("x"), false},
		{"string rejects bool", domain.TypeString, domain.Bool(true), true},
		{"boolean accepts bool", domain.TypeBoolean, domain.Bool(false), false},
		{"password is unconstrained", domain.TypePassword, domain.Number(123), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(domain.Question{Key: "k", Type: tt.qtype}, tt.answer)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NoConstraints(t *testing.T) {
	q := domain.Question{Key: "anything"}
	assert.NoError(t, validate(q, domain.String("whatever")))
	assert.NoError(t, validate(q, domain.Number(9)))
}

func TestValidate_CustomErrorMessage(t *testing.T) {
	q := domain.Question{
		Key:          "env",
		Options:      []domain.Answer{domain.String("dev")},
		ErrorMessage: "pick a known environment",
	}
	err := validate(q, domain.String("nope"))
	assert.EqualError(t, err, "pick a known environment")
}
