package solver

import (
	"math"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/validator"
)

// boardComplete is the candidate count reported when no empty cell remains.
const boardComplete = math.MaxInt

// findNextCell picks the empty cell with the fewest remaining candidates
// (minimum remaining values). It scans row-major and keeps the first cell
// seen with the minimum count. Two counts end the scan immediately: 1,
// because no cell can be more constrained while still being fillable, and 0,
// which signals a dead end the caller should backtrack out of. A full board
// reports (-1, -1, boardComplete).
func findNextCell(b *domain.Board) (row, col, count int) {
	row, col, count = -1, -1, boardComplete
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			n := 0
			for v := uint8(1); v <= 9; v++ {
				if validator.Allowed(b, r, c, v) {
					n++
				}
			}
			if n <= 1 {
				return r, c, n
			}
			if n < count {
				row, col, count = r, c, n
			}
		}
	}
	return row, col, count
}
