package hint

import (
	"context"
	"fmt"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/validator"
)

// Singles suggests naked singles: empty cells with exactly one candidate left.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in row-major order, if any exists.
func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			v, ok := soleCandidate(b, r, c)
			if !ok {
				continue
			}
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %d fits here", v),
				Cells:   []domain.CellCoord{{Row: r, Col: c}},
				Value:   v,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(b *domain.Board, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if validator.Allowed(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
