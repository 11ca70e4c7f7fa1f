package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/inquest/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from an
// ordered question list. It applies semantic styling:
// - Confirm: {Rhombus}
// - Password: [[Subroutine]]
// - Everything else: [/Parallelogram/] (input)
// Consecutive questions are linked with solid arrows (the asking
// order); every depends_on condition adds a dashed labeled edge from
// the answer it inspects.
func GenerateMermaid(questions []domain.Question) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, q := range questions {
		// Sanitize ID for Mermaid
		safeID := sanitizeMermaidID(q.Key)

		// Node shape based on question type
		opener, closer := "[/", "/]"
		switch q.Type {
		case domain.TypeConfirm:
			opener, closer = "{", "}"
		case domain.TypePassword:
			opener, closer = "[[", "]]"
		}

		label := q.Key
		if q.Message != "" {
			label = fmt.Sprintf("%s <br/> %s", q.Key, escapeMermaidLabel(q.Message))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		// Asking order
		if i+1 < len(questions) {
			safeNext := sanitizeMermaidID(questions[i+1].Key)
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, safeNext))
		}

		// Dependency edges
		for _, cond := range q.DependsOn {
			safeFrom := sanitizeMermaidID(cond.Key)
			arrow := fmt.Sprintf("-. \"%s\" .->", escapeMermaidLabel(cond.Rule.String()))
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeFrom, arrow, safeID))
		}
	}

	return sb.String()
}

// escapeMermaidLabel swaps double quotes for single ones so the label
// survives Mermaid's quoted-string syntax.
func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
