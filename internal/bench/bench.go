package bench

import (
	"context"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/generator"
	"svw.info/sudogen/internal/ports"
	"svw.info/sudogen/internal/solver"
)

// Report aggregates solve statistics for both strategies over a batch of
// generated puzzles.
type Report struct {
	Runs       int
	EmptyCells int
	Naive      ports.Stats
	Heuristic  ports.Stats
}

// Compare generates runs puzzles with emptyCells empty cells each (seeds
// seed, seed+1, ...) and solves every puzzle with both strategies,
// accumulating nodes and wall time per strategy. Each solver gets its own
// copy of the puzzle grid.
func Compare(ctx context.Context, runs, emptyCells int, seed int64) (*Report, error) {
	if runs < 1 {
		return nil, &domain.ParamError{Name: "runs", Value: runs}
	}
	naive := solver.New(domain.NaiveSearch)
	heuristic := solver.New(domain.HeuristicSearch)
	gen := generator.NewDiagonal(heuristic)

	rep := &Report{Runs: runs, EmptyCells: emptyCells}
	for i := 0; i < runs; i++ {
		p, _, err := gen.Generate(ctx, seed+int64(i), emptyCells)
		if err != nil {
			return nil, err
		}

		nb := p.Board.Clone()
		st, err := naive.Solve(ctx, &nb)
		if err != nil {
			return nil, err
		}
		rep.Naive.Add(st)

		hb := p.Board.Clone()
		st, err = heuristic.Solve(ctx, &hb)
		if err != nil {
			return nil, err
		}
		rep.Heuristic.Add(st)
	}
	return rep, nil
}
