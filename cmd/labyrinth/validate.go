package main

import (
	"fmt"

	"github.com/aretw0/labyrinth/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the automaton for reachability problems",
	Long:  `Crawls the automaton from its initial state and reports unreachable states, dead ends and reachable accepting states.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.Validate(cmd.Context(), optionsFrom(cmd), loggerFrom(cmd), cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Automaton is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
