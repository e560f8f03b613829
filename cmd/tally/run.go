package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tally/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the counter walkthrough",
	Long: `Executes the canonical demonstration: start the counter at zero,
apply an increment, apply a decrement, and print the state after each step.
The caller owns the state value; each transition returns a new one.`,
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunWalkthrough(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
}
