package main

import (
	"github.com/aretw0/labyrinth/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a word through the automaton",
	Long: `Reads a word and prints the initial state, every transition and the verdict.
The word comes from --word, from a file argument ("-" for stdin) or defaults
to "c d p b e". Tokens are separated by spaces, newlines or commas.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, _ := cmd.Flags().GetString("word")
		jsonMode, _ := cmd.Flags().GetBool("json")
		report, _ := cmd.Flags().GetBool("report")

		opts := cli.RunOptions{
			Options: optionsFrom(cmd),
			Word:    w,
			JSON:    jsonMode,
			Report:  report,
			In:      cmd.InOrStdin(),
			Out:     cmd.OutOrStdout(),
			Logger:  loggerFrom(cmd),
		}
		if len(args) > 0 {
			opts.File = args[0]
		}
		return cli.Execute(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("word", "w", "", "Inline word, e.g. \"c,d,p,b,e\"")
	runCmd.Flags().Bool("json", false, "Print the run record as JSON")
	runCmd.Flags().Bool("report", false, "Print a rendered summary after the transcript")

	// 'run' is the default when no command is provided.
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
