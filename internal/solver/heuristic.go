package solver

import (
	"context"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/validator"
)

// solveMRV is backtracking driven by findNextCell: always branch on the most
// constrained cell. A zero-candidate cell fails without attempting a value,
// which prunes dead subtrees earlier than the row-major walk.
func solveMRV(ctx context.Context, b *domain.Board, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, n := findNextCell(b)
	if r == -1 {
		return true
	}
	if n == 0 {
		return false
	}
	for v := uint8(1); v <= 9; v++ {
		*nodes++
		if !validator.Allowed(b, r, c, v) {
			continue
		}
		b.Values[r][c] = v
		if solveMRV(ctx, b, nodes) {
			return true
		}
		b.Values[r][c] = 0
	}
	return false
}
