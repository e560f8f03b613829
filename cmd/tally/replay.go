package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tally/internal/cli"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay an action script and print the trace",
	Long: `Loads a YAML script describing a starting state and a sequence of
actions, folds the reducer over it, and prints every intermediate state.
Unknown action types are no-ops, exactly as in the library.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		jsonMode, _ := cmd.Flags().GetBool("json")

		if err := cli.RunReplay(os.Stdout, cli.ReplayOptions{Path: path, JSON: jsonMode}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringP("file", "f", "tally.yaml", "Path to the action script")
	replayCmd.Flags().Bool("json", false, "Emit NDJSON steps instead of text")
}
