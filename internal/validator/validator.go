package validator

import (
	"context"

	"svw.info/sudogen/internal/domain"
)

// Allowed reports whether placing v at (r, c) keeps row r, column c, and the
// containing 3x3 box free of a duplicate v. The current value of (r, c) itself
// is not considered; callers query empty cells. Bounds are the caller's
// responsibility, see Check.
func Allowed(b *domain.Board, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b.Values[r][i] == v || b.Values[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b.Values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// Check is the bounds-checked form of Allowed for untrusted input. It rejects
// out-of-range coordinates or values with a ParamError before evaluating the
// placement.
func Check(b *domain.Board, r, c, v int) (bool, error) {
	if r < 0 || r > 8 {
		return false, &domain.ParamError{Name: "row", Value: r}
	}
	if c < 0 || c > 8 {
		return false, &domain.ParamError{Name: "col", Value: c}
	}
	if v < 1 || v > 9 {
		return false, &domain.ParamError{Name: "value", Value: v}
	}
	return Allowed(b, r, c, uint8(v)), nil
}

// CheckBoard rejects boards carrying cell values outside 0..9, returning a
// ParamError for the first offender. Boards built from untrusted input must
// pass this gate before reaching the solvers or the conflict scan.
func CheckBoard(b *domain.Board) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v > 9 {
				return &domain.ParamError{Name: "cell", Value: int(v)}
			}
		}
	}
	return nil
}

// Checker performs fast whole-board constraint checks.
type Checker struct{}

func New() *Checker { return &Checker{} }

// Validate scans the board once and collects every cell whose value repeats an
// earlier one in its row, column, or box. Empty cells never conflict; values
// outside 1..9 are reported as conflicts rather than tripping the scan.
func (*Checker) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	var rows, cols, boxes [9][10]bool
	conf := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			if val > 9 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			box := (r/3)*3 + c/3
			if rows[r][val] || cols[c][val] || boxes[box][val] {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			rows[r][val], cols[c][val], boxes[box][val] = true, true, true
		}
	}
	return len(conf) == 0, conf, nil
}

// Solved reports whether the board is fully populated and conflict-free,
// i.e. every row, column, and box is a permutation of 1..9.
func (v *Checker) Solved(ctx context.Context, b *domain.Board) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	ok, _, _ := v.Validate(ctx, b)
	return ok
}
