package ports

import (
	"context"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// Simulator is the interface adapters (HTTP, MCP) drive. Each call to
// Simulate is an independent run over a shared, read-only automaton.
type Simulator interface {
	// Automaton returns the automaton runs are evaluated against.
	Automaton() *domain.Automaton

	// Simulate runs the word to completion and returns its record.
	Simulate(ctx context.Context, word []string) (*domain.RunRecord, error)

	// GetRun returns a stored run.
	GetRun(ctx context.Context, id string) (*domain.RunRecord, error)

	// ListRuns returns stored runs, oldest first.
	ListRuns(ctx context.Context) ([]*domain.RunRecord, error)
}
