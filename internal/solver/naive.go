package solver

import (
	"context"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/validator"
)

// solveRowMajor is plain depth-first backtracking over cells in row-major
// order. Filled cells are skipped; empty cells try 1..9 ascending, recursing
// on each consistent placement and undoing it when the subtree fails. Reaching
// r == 9 means every cell was processed and the board is complete.
func solveRowMajor(ctx context.Context, b *domain.Board, r, c int, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	if r == 9 {
		return true
	}
	nr, nc := r, c+1
	if nc == 9 {
		nr, nc = r+1, 0
	}
	if b.Values[r][c] != 0 {
		return solveRowMajor(ctx, b, nr, nc, nodes)
	}
	for v := uint8(1); v <= 9; v++ {
		*nodes++
		if validator.Allowed(b, r, c, v) {
			b.Values[r][c] = v
			if solveRowMajor(ctx, b, nr, nc, nodes) {
				return true
			}
			b.Values[r][c] = 0
		}
	}
	return false
}
