package ports

import (
	"context"
	"time"

	"svw.info/sudogen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Add accumulates another run into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Duration += o.Duration
}

// Solver completes a board in place. On success every cell is nonzero and the
// Sudoku invariant holds; on failure the board is left partially mutated.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (Stats, error)
}

// Generator creates new puzzles with a target number of empty cells.
// Generation is deterministic for a given seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, emptyCells int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next forced placement, if one exists.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
