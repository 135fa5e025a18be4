package main

import (
	"fmt"

	"github.com/aretw0/labyrinth/internal/cli"
	"github.com/spf13/cobra"
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List the mazes available to --name",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := cli.ListMazes(cmd.Context(), optionsFrom(cmd))
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mazesCmd)
}
