package validator

import (
	"context"
	"errors"
	"testing"

	"svw.info/sudogen/internal/domain"
)

func TestAllowedRowColBox(t *testing.T) {
	b := domain.NewBoard()
	b.Values[0][0] = 5

	if Allowed(b, 0, 3, 5) {
		t.Error("5 already in row 0, placement at (0,3) must be rejected")
	}
	if !Allowed(b, 0, 3, 6) {
		t.Error("6 is absent from row 0, col 3, and box 1; placement must be accepted")
	}
	if Allowed(b, 4, 0, 5) {
		t.Error("5 already in col 0, placement at (4,0) must be rejected")
	}
	if Allowed(b, 2, 2, 5) {
		t.Error("5 already in box 0, placement at (2,2) must be rejected")
	}
	if !Allowed(b, 4, 4, 5) {
		t.Error("(4,4) shares no unit with (0,0), 5 must be accepted")
	}
}

func TestCheckBounds(t *testing.T) {
	b := domain.NewBoard()
	cases := []struct {
		name    string
		r, c, v int
	}{
		{"row low", -1, 0, 5},
		{"row high", 9, 0, 5},
		{"col low", 0, -1, 5},
		{"col high", 0, 9, 5},
		{"value low", 0, 0, 0},
		{"value high", 0, 0, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Check(b, tc.r, tc.c, tc.v)
			if !errors.Is(err, domain.ErrInvalidParameter) {
				t.Fatalf("Check(%d,%d,%d) err = %v, want ErrInvalidParameter", tc.r, tc.c, tc.v, err)
			}
		})
	}

	ok, err := Check(b, 0, 0, 5)
	if err != nil || !ok {
		t.Fatalf("Check on empty board = (%v, %v), want (true, nil)", ok, err)
	}
}

func TestValidateConflicts(t *testing.T) {
	ctx := context.Background()
	v := New()

	b := domain.NewBoard()
	ok, conf, err := v.Validate(ctx, b)
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("empty board: ok=%v conf=%v err=%v", ok, conf, err)
	}

	b.Values[3][1] = 7
	b.Values[3][6] = 7
	ok, conf, err = v.Validate(ctx, b)
	if err != nil || ok {
		t.Fatalf("duplicate in row: ok=%v err=%v", ok, err)
	}
	if len(conf) != 1 || conf[0] != (domain.CellCoord{Row: 3, Col: 6}) {
		t.Fatalf("conflicts = %v, want the later duplicate at (3,6)", conf)
	}
}

func TestValidateOutOfRangeValues(t *testing.T) {
	ctx := context.Background()
	b := domain.NewBoard()
	b.Values[0][0] = 10
	b.Values[4][4] = 255

	ok, conf, err := New().Validate(ctx, b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Error("board with out-of-range values reported valid")
	}
	if len(conf) != 2 {
		t.Fatalf("conflicts = %v, want both out-of-range cells", conf)
	}
}

func TestCheckBoard(t *testing.T) {
	b := domain.NewBoard()
	b.Values[2][7] = 9
	if err := CheckBoard(b); err != nil {
		t.Fatalf("CheckBoard rejected a valid board: %v", err)
	}

	b.Values[2][7] = 12
	err := CheckBoard(b)
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("CheckBoard err = %v, want ErrInvalidParameter", err)
	}
}

func TestSolved(t *testing.T) {
	ctx := context.Background()
	v := New()

	b := domain.NewBoard()
	if v.Solved(ctx, b) {
		t.Error("empty board reported solved")
	}

	// A valid completed grid.
	full := [9][9]uint8{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	b = &domain.Board{Values: full}
	if !v.Solved(ctx, b) {
		t.Error("completed valid grid reported unsolved")
	}

	b.Values[8][8] = 0
	if v.Solved(ctx, b) {
		t.Error("grid with an empty cell reported solved")
	}
}
