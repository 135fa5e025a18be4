package ports

import (
	"context"

	"github.com/aretw0/labyrinth/pkg/schema"
)

// MazeLibrary defines where named automaton definitions come from.
type MazeLibrary interface {
	// Get loads the definition registered under name.
	Get(ctx context.Context, name string) (*schema.Definition, error)

	// List returns the available maze names, sorted.
	List(ctx context.Context) ([]string, error)
}
