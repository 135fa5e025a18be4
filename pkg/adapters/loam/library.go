package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/schema"
	"github.com/aretw0/loam"
)

// Library adapts a Loam repository of definition files to ports.MazeLibrary.
// Each .yaml, .yml or .json document holds one maze; its name is the file
// ID without extension. Documents are decoded with schema.Decode, so unknown
// keys are rejected.
type Library struct {
	Repo *loam.TypedRepository[map[string]any]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[map[string]any]) *Library {
	return &Library{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository rooted at dir.
func Open(dir string) (*Library, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve maze directory: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze directory %s: %w", absPath, err)
	}
	return New(loam.NewTypedRepository[map[string]any](repo)), nil
}

// Get loads the maze stored under name.
func (l *Library) Get(ctx context.Context, name string) (*schema.Definition, error) {
	doc, err := l.Repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMazeNotFound, name, err)
	}

	def, err := schema.Decode(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("maze %s: %w", name, err)
	}
	if def.Name == "" {
		def.Name = trimExtension(doc.ID)
	}
	return def, nil
}

// List returns the maze names, sorted. Two files resolving to the same
// name are reported as a collision.
func (l *Library) List(ctx context.Context) ([]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string, len(docs))
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		name := trimExtension(doc.ID)
		if existing, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected: maze '%s' is defined in both '%s' and '%s'", name, existing, doc.ID)
		}
		seen[name] = doc.ID
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
