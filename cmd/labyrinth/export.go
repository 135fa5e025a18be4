package main

import (
	"github.com/aretw0/labyrinth/internal/cli"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the automaton as a definition file",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return cli.Export(cmd.Context(), optionsFrom(cmd), loggerFrom(cmd), format, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
}
