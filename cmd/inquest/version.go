package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/inquest"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of inquest",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inquest version %s\n", strings.TrimSpace(inquest.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
