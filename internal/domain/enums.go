package domain

import "strings"

// Strategy selects the search used by the solver.
type Strategy int

const (
	NaiveSearch     Strategy = iota // row-major backtracking, values 1..9 in order
	HeuristicSearch                 // MRV: branch on the most constrained cell first
)

func (s Strategy) String() string {
	if s == HeuristicSearch {
		return "heuristic"
	}
	return "naive"
}

// ParseStrategy maps a request string to a Strategy; unknown input
// defaults to the heuristic search.
func ParseStrategy(s string) Strategy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive", "basic", "rowmajor":
		return NaiveSearch
	default:
		return HeuristicSearch
	}
}

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// EmptyCells is the number of cells removed when generating at this difficulty.
func (d Difficulty) EmptyCells() int {
	switch d {
	case Easy:
		return 30
	case Medium:
		return 40
	case Hard:
		return 50
	default:
		return 57 // Expert
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a request string to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}
