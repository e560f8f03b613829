package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tally"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tally",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tally version %s\n", strings.TrimSpace(tally.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
