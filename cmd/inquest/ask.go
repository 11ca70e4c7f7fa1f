package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/inquest/internal/cli"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Run a prompting session from a question file",
	Long:  `Loads a YAML question file, asks each question in order on the terminal, and prints the collected answers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		asJSON, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.RunAsk(cli.AskOptions{
			File:  file,
			JSON:  asJSON,
			Debug: debug,
		})
	},
}

func init() {
	askCmd.Flags().StringP("file", "f", "questions.yaml", "Path to the question file")
	askCmd.Flags().Bool("json", false, "Print answers as JSON instead of YAML")
	rootCmd.AddCommand(askCmd)
}
