package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/labyrinth/internal/cli"
	"github.com/aretw0/labyrinth/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "Labyrinth runs words through a cave automaton",
	Long: `Labyrinth simulates a deterministic finite automaton. The built-in automaton
is the wumpus cave: walk it with cima/baixo/esquerda/direita, grab the
treasure with pegar, shoot the wumpus with atirar and leave by the entrance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("maze", "", "Definition file (YAML or JSON) to load")
	rootCmd.PersistentFlags().String("dir", "", "Directory of definition files")
	rootCmd.PersistentFlags().String("name", cli.DefaultMaze, "Maze to pick from --dir or the built-in caves")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every transition")
	rootCmd.PersistentFlags().String("redis", "", "Redis URL used to persist runs (e.g. redis://localhost:6379/0)")
	rootCmd.PersistentFlags().String("runs-dir", "", "Directory where runs are kept as JSON files")
}

func optionsFrom(cmd *cobra.Command) cli.Options {
	maze, _ := cmd.Flags().GetString("maze")
	dir, _ := cmd.Flags().GetString("dir")
	name, _ := cmd.Flags().GetString("name")
	debug, _ := cmd.Flags().GetBool("debug")
	redisURL, _ := cmd.Flags().GetString("redis")
	runsDir, _ := cmd.Flags().GetString("runs-dir")
	return cli.Options{
		Maze:     maze,
		Dir:      dir,
		Name:     name,
		Debug:    debug,
		RedisURL: redisURL,
		RunsDir:  runsDir,
	}
}

func loggerFrom(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return logging.New(logging.LevelFor(debug))
}
