package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/inquest/internal/cli"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render a question file as a Mermaid flowchart",
	Long:  `Prints a Mermaid diagram of the question order and depends_on edges, ready to paste into any Mermaid renderer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		return cli.RunGraph(os.Stdout, file)
	},
}

func init() {
	graphCmd.Flags().StringP("file", "f", "questions.yaml", "Path to the question file")
	rootCmd.AddCommand(graphCmd)
}
