package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/inquest/internal/presentation/graph"
	"github.com/aretw0/inquest/pkg/schema"
)

// RunGraph loads a question file and writes its Mermaid flowchart to w,
// showing the asking order and every depends_on edge.
func RunGraph(w io.Writer, file string) error {
	questions, err := schema.Load(file)
	if err != nil {
		return fmt.Errorf("error loading questions: %w", err)
	}

	fmt.Fprint(w, graph.GenerateMermaid(questions))
	return nil
}
