package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/inquest/internal/cli"
)

var confirmCmd = &cobra.Command{
	Use:   "confirm [message]",
	Short: "Ask a single yes/no question",
	Long:  `Asks a single confirmation question (default yes) and exits 0 on yes, 1 on no.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")

		ok, err := cli.RunConfirm(args[0], debug)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "declined")
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(confirmCmd)
}
