package bench

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudogen/internal/domain"
)

func TestCompare(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rep, err := Compare(ctx, 3, 30, 1)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if rep.Runs != 3 || rep.EmptyCells != 30 {
		t.Errorf("report shape: %+v", rep)
	}
	if rep.Naive.Nodes == 0 || rep.Heuristic.Nodes == 0 {
		t.Errorf("expected both strategies to expand nodes: naive=%d heuristic=%d",
			rep.Naive.Nodes, rep.Heuristic.Nodes)
	}
}

func TestCompareRejectsBadRuns(t *testing.T) {
	if _, err := Compare(context.Background(), 0, 30, 1); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}
