package solver

import (
	"context"
	"time"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/ports"
)

// Backtracking solves boards in place with depth-first search. The strategy
// chooses how the next cell is picked: NaiveSearch walks cells in row-major
// order, HeuristicSearch branches on the cell with the fewest candidates.
type Backtracking struct {
	strategy domain.Strategy
}

func New(strategy domain.Strategy) *Backtracking {
	return &Backtracking{strategy: strategy}
}

// Solve fills b in place. It returns nil when a completion was found,
// ErrUnsolvable when the search space is exhausted, and the context error on
// cancellation. On a non-nil error the board may be partially mutated; the
// search undoes its own assignments, but a board that was inconsistent on
// entry is not repaired.
func (s *Backtracking) Solve(ctx context.Context, b *domain.Board) (ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var ok bool
	switch s.strategy {
	case domain.HeuristicSearch:
		ok = solveMRV(ctx, b, &nodes)
	default:
		ok = solveRowMajor(ctx, b, 0, 0, &nodes)
	}
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		return st, domain.ErrUnsolvable
	}
	return st, nil
}

// Solve is a convenience wrapper dispatching on strategy.
func Solve(ctx context.Context, b *domain.Board, strategy domain.Strategy) (ports.Stats, error) {
	return New(strategy).Solve(ctx, b)
}
