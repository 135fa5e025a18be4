package main

import (
	"github.com/aretw0/labyrinth/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the automaton as a Mermaid flowchart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Graph(cmd.Context(), optionsFrom(cmd), loggerFrom(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
