package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/ports"
)

// Diagonal generates puzzles by seeding the three diagonal 3x3 boxes with
// random permutations, completing the grid with the provided solver, and
// removing cells. The diagonal boxes share no row or column, so seeding them
// independently can never conflict.
//
// The puzzle left after removal is always solvable (removing values only
// relaxes constraints) but its solution is not guaranteed to be unique; this
// generator makes no uniqueness check.
type Diagonal struct {
	Solver ports.Solver
}

func NewDiagonal(s ports.Solver) *Diagonal {
	return &Diagonal{Solver: s}
}

// Generate builds one puzzle with exactly emptyCells empty cells. Generation
// is deterministic for a given seed and solver. emptyCells must lie in
// [1, 81]; anything else is rejected before any work happens.
func (g *Diagonal) Generate(ctx context.Context, seed int64, emptyCells int) (*domain.Puzzle, ports.Stats, error) {
	if emptyCells < 1 || emptyCells > 81 {
		return nil, ports.Stats{}, &domain.ParamError{Name: "emptyCells", Value: emptyCells}
	}
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	b := domain.NewBoard()
	seedDiagonalBoxes(rng, b)
	st, err := g.Solver.Solve(ctx, b)
	if err != nil {
		return nil, st, err
	}
	solution := b.Clone()

	if err := DeleteRandomCells(rng, b, emptyCells); err != nil {
		return nil, st, err
	}
	b.MarkGivens()

	p := &domain.Puzzle{
		Seed:       seed,
		EmptyCells: emptyCells,
		Board:      *b,
		Solution:   solution,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, nil
}

// seedDiagonalBoxes fills boxes 0, 4, and 8 each with an independent shuffled
// permutation of 1..9. Within-box uniqueness holds by construction.
func seedDiagonalBoxes(rng *rand.Rand, b *domain.Board) {
	for box := 0; box < 3; box++ {
		perm := rng.Perm(9)
		for i, v := range perm {
			r := box*3 + i/3
			c := box*3 + i%3
			b.Values[r][c] = uint8(v + 1)
		}
	}
}

// DeleteRandomCells zeroes n cells chosen uniformly without replacement.
// n must lie in [1, 81]; the board is untouched on error.
func DeleteRandomCells(rng *rand.Rand, b *domain.Board, n int) error {
	if n < 1 || n > 81 {
		return &domain.ParamError{Name: "n", Value: n}
	}
	for _, pos := range rng.Perm(81)[:n] {
		b.Values[pos/9][pos%9] = 0
	}
	return nil
}
