package schema

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/inquest/pkg/domain"
)

// questionSpec mirrors the full YAML form of a question entry. It uses
// mapstructure tags so the decoded mapping can be bound loosely, the way
// node metadata is decoded elsewhere.
type questionSpec struct {
	Message    string         `mapstructure:"message"`
	Type       string         `mapstructure:"type"`
	Default    any            `mapstructure:"default"`
	Options    []any          `mapstructure:"options"`
	Pattern    string         `mapstructure:"pattern"`
	AllowEmpty bool           `mapstructure:"allow_empty"`
	Error      string         `mapstructure:"error"`
	DependsOn  map[string]any `mapstructure:"depends_on"`
}

// Load reads and parses a question file from disk.
func Load(path string) ([]domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into an ordered question list. The
// top-level node must be a mapping; its key order is preserved as the
// prompting order. Patterns compile here, so a broken pattern is a load
// error rather than a surprise at prompt time.
func Parse(data []byte) ([]domain.Question, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid question file: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []domain.Question{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("question file must be a mapping of key to question")
	}

	questions := make([]domain.Question, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		q, err := decodeQuestion(key, root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", key, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func decodeQuestion(key string, node *yaml.Node) (domain.Question, error) {
	if node.Kind != yaml.MappingNode {
		// Bare value shorthand: the scalar is both the message-less
		// question and its default. Normalized here, once, so lookups
		// never re-inspect the shape.
		var v any
		if err := node.Decode(&v); err != nil {
			return domain.Question{}, fmt.Errorf("invalid shorthand value: %w", err)
		}
		return domain.Question{Key: key, Default: domain.Literal(toAnswer(v))}, nil
	}

	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return domain.Question{}, fmt.Errorf("invalid configuration: %w", err)
	}

	var spec questionSpec
	if err := mapstructure.Decode(raw, &spec); err != nil {
		return domain.Question{}, fmt.Errorf("invalid configuration: %w", err)
	}

	q := domain.Question{
		Key:          key,
		Message:      spec.Message,
		Type:         spec.Type,
		AllowEmpty:   spec.AllowEmpty,
		ErrorMessage: spec.Error,
	}

	if spec.Default != nil {
		q.Default = domain.Literal(toAnswer(spec.Default))
	}

	for _, o := range spec.Options {
		q.Options = append(q.Options, toAnswer(o))
	}

	if spec.Pattern != "" {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return domain.Question{}, fmt.Errorf("invalid pattern: %w", err)
		}
		q.Pattern = re
	}

	// Sorted for deterministic evaluation order; all conditions must
	// hold anyway, so order never changes the outcome.
	for _, prior := range sortedKeys(spec.DependsOn) {
		rule, err := decodeRule(spec.DependsOn[prior])
		if err != nil {
			return domain.Question{}, fmt.Errorf("depends_on %q: %w", prior, err)
		}
		q.DependsOn = append(q.DependsOn, domain.Condition{Key: prior, Rule: rule})
	}

	return q, nil
}

func decodeRule(v any) (domain.Rule, error) {
	switch rv := v.(type) {
	case []any:
		vs := make([]domain.Answer, len(rv))
		for i, item := range rv {
			vs[i] = toAnswer(item)
		}
		return domain.OneOf(vs...), nil
	case map[string]any:
		if not, ok := rv["not"]; ok && len(rv) == 1 {
			return domain.Not(toAnswer(not)), nil
		}
		return domain.Rule{}, fmt.Errorf("unsupported rule shape (want scalar, list, or {not: value})")
	default:
		return domain.Equals(toAnswer(v)), nil
	}
}

// toAnswer maps a decoded YAML value onto the answer type system.
// Strings stay strings: a quoted "yes" in a file is a literal, not a
// boolean.
func toAnswer(v any) domain.Answer {
	switch tv := v.(type) {
	case nil:
		return domain.Empty
	case bool:
		return domain.Bool(tv)
	case int:
		return domain.Number(float64(tv))
	case int64:
		return domain.Number(float64(tv))
	case float64:
		return domain.Number(tv)
	case string:
		return domain.String(tv)
	default:
		return domain.String(fmt.Sprintf("%v", tv))
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
