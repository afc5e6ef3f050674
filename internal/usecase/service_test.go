package usecase

import (
	"context"
	"testing"
	"time"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/generator"
	"svw.info/sudogen/internal/hint"
	"svw.info/sudogen/internal/infrastructure/storage"
	"svw.info/sudogen/internal/solver"
	"svw.info/sudogen/internal/validator"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	naive := solver.New(domain.NaiveSearch)
	heuristic := solver.New(domain.HeuristicSearch)
	return NewService(
		naive,
		heuristic,
		generator.NewDiagonal(heuristic),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
	)
}

func TestGenerateSaveLoad(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	u := newTestService(t)

	p, _, err := u.Generate(ctx, 42, 45)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if p.ID == "" {
		t.Fatal("Generate did not assign an ID")
	}
	if err := u.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := u.Load(ctx, p.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Board.Values != p.Board.Values {
		t.Error("loaded puzzle differs from the generated one")
	}

	metas, err := u.List(ctx)
	if err != nil || len(metas) != 1 || metas[0].ID != p.ID {
		t.Fatalf("List = %v, %v", metas, err)
	}
}

func TestSolveDispatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	u := newTestService(t)

	p, _, err := u.Generate(ctx, 7, 40)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, strategy := range []domain.Strategy{domain.NaiveSearch, domain.HeuristicSearch} {
		b := p.Board.Clone()
		if _, err := u.Solve(ctx, &b, strategy); err != nil {
			t.Errorf("Solve(%s) failed: %v", strategy, err)
		}
		if b.Values != p.Solution.Values {
			// Removing cells can open up alternative completions; any valid
			// one is acceptable.
			if ok, conf, _ := u.Validate(ctx, &b); !ok {
				t.Errorf("Solve(%s) produced conflicts: %v", strategy, conf)
			}
		}
	}
}

func TestNotConfigured(t *testing.T) {
	u := &Service{}
	if _, _, err := u.Generate(context.Background(), 1, 45); err != errNotConfigured {
		t.Fatalf("err = %v, want errNotConfigured", err)
	}
	if _, err := u.Solve(context.Background(), domain.NewBoard(), domain.NaiveSearch); err != errNotConfigured {
		t.Fatalf("err = %v, want errNotConfigured", err)
	}
}
