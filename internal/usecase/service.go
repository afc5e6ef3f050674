package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"svw.info/sudogen/internal/domain"
	"svw.info/sudogen/internal/ports"
)

// Service wires the core components behind one application surface.
// Naive and Heuristic are the two solver strategies; Generator owns puzzle
// creation; Storage persists puzzles with their solutions.
type Service struct {
	Naive     ports.Solver
	Heuristic ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(naive, heuristic ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Naive: naive, Heuristic: heuristic, Generator: g, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve completes b in place using the requested strategy.
func (u *Service) Solve(ctx context.Context, b *domain.Board, strategy domain.Strategy) (ports.Stats, error) {
	s := u.Heuristic
	if strategy == domain.NaiveSearch {
		s = u.Naive
	}
	if s == nil {
		return ports.Stats{}, errNotConfigured
	}
	return s.Solve(ctx, b)
}

// Generate creates a puzzle and stamps it with an ID. The puzzle is not
// persisted; use Save for that.
func (u *Service) Generate(ctx context.Context, seed int64, emptyCells int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, st, err := u.Generator.Generate(ctx, seed, emptyCells)
	if err != nil {
		return nil, st, err
	}
	p.ID = uuid.NewString()
	return p, st, nil
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
