package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/labyrinth"
	"github.com/aretw0/labyrinth/pkg/adapters/file"
	"github.com/aretw0/labyrinth/pkg/adapters/loam"
	"github.com/aretw0/labyrinth/pkg/adapters/memory"
	"github.com/aretw0/labyrinth/pkg/adapters/redis"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/observability"
	"github.com/aretw0/labyrinth/pkg/ports"
)

// DefaultMaze is the maze picked when no name is given.
const DefaultMaze = "wumpus"

// Options selects the automaton and the ambient setup shared by every command.
type Options struct {
	// Maze is a definition file. It takes precedence over Dir and Name.
	Maze string
	// Dir is a directory of definition files. Empty means the built-in caves.
	Dir string
	// Name picks a maze from Dir or the built-in caves.
	Name     string
	Debug    bool
	RedisURL string
	// RunsDir keeps runs as JSON files. Ignored when RedisURL is set.
	RunsDir string
	// Persist keeps runs in memory when no redis URL is given.
	Persist bool
}

// openLibrary returns the maze library selected by opts.
func openLibrary(opts Options) (ports.MazeLibrary, error) {
	if opts.Dir != "" {
		return loam.Open(opts.Dir)
	}
	return memory.NewBuiltinLibrary()
}

// ListMazes returns the names available to --name.
func ListMazes(ctx context.Context, opts Options) ([]string, error) {
	lib, err := openLibrary(opts)
	if err != nil {
		return nil, err
	}
	return lib.List(ctx)
}

// NewEngine initializes an engine with standard CLI conventions.
// Extra hooks are composed after the debug logging hooks.
func NewEngine(ctx context.Context, opts Options, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*labyrinth.Engine, error) {
	engineOpts := []labyrinth.Option{labyrinth.WithLogger(logger)}

	// 1. Hooks
	if opts.Debug {
		hooks = append([]domain.LifecycleHooks{observability.LoggingHooks(logger, slog.LevelDebug)}, hooks...)
	}
	if len(hooks) > 0 {
		engineOpts = append(engineOpts, labyrinth.WithLifecycleHooks(domain.ComposeHooks(hooks...)))
	}

	// 2. Persistence
	if opts.RedisURL != "" {
		store, err := redis.NewFromURL(opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("error connecting to redis: %w", err)
		}
		if err := store.Ping(ctx); err != nil {
			return nil, fmt.Errorf("error connecting to redis: %w", err)
		}
		engineOpts = append(engineOpts, labyrinth.WithStore(store))
	} else if opts.RunsDir != "" {
		engineOpts = append(engineOpts, labyrinth.WithStore(file.New(opts.RunsDir)))
	} else if opts.Persist {
		engineOpts = append(engineOpts, labyrinth.WithStore(memory.NewStore()))
	}

	// 3. Automaton
	if opts.Maze != "" {
		engine, err := labyrinth.Load(opts.Maze, engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", opts.Maze, err)
		}
		return engine, nil
	}

	lib, err := openLibrary(opts)
	if err != nil {
		return nil, err
	}
	name := opts.Name
	if name == "" {
		name = DefaultMaze
	}
	engine, err := labyrinth.FromLibrary(ctx, lib, name, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
