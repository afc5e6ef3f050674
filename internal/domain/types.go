package domain

import "strings"

// Board is a 9x9 grid of values in 0..9 where 0 marks an empty cell.
// Fixed records which cells are givens of the puzzle.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// NewBoard returns an all-empty board.
func NewBoard() *Board { return &Board{} }

// Clone returns a value copy; arrays copy by value so the clone is independent.
func (b *Board) Clone() Board { return *b }

// EmptyCells counts cells currently holding 0.
func (b *Board) EmptyCells() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// MarkGivens sets Fixed for every nonzero cell and clears it elsewhere.
func (b *Board) MarkGivens() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
}

// String renders the grid one row per line, '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.Values[r][c]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested next placement for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Value   uint8       `json:"value,omitempty"`
}

// Puzzle is a persisted Sudoku with its solution and metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	EmptyCells int        `json:"emptyCells,omitempty"`
	Board      Board      `json:"board"`
	Solution   Board      `json:"solution,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	EmptyCells int        `json:"emptyCells,omitempty"`
	CreatedAt  int64      `json:"createdAt"`
}
