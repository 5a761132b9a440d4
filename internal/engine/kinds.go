package engine

import "fmt"

// Kind selects which generator a request runs.
type Kind string

const (
	KindSudoku     Kind = "sudoku"
	KindKiller     Kind = "killer"
	KindWordSearch Kind = "wordsearch"
	KindCrossword  Kind = "crossword"
	KindNonogram   Kind = "nonogram"
)

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSudoku, KindKiller, KindWordSearch, KindCrossword, KindNonogram:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown puzzle kind: %q", s)
	}
}

// Difficulty labels target the tier tables below.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty: %q", s)
	}
}

// removals maps a tier to the number of cells cleared from a solved
// sudoku grid. The counts come from empirical tuning, not a uniqueness
// proof.
func (d Difficulty) removals() int {
	switch d {
	case Easy:
		return 30
	case Medium:
		return 40
	case Hard:
		return 50
	default:
		return 55 // Expert
	}
}

// cageSizeRange maps a tier to the [min, max] killer cage sizes.
func (d Difficulty) cageSizeRange() (minSize, maxSize int) {
	switch d {
	case Easy:
		return 2, 3
	case Medium:
		return 2, 4
	case Hard:
		return 2, 5
	default:
		return 2, 6 // Expert
	}
}

// wordSearchSize maps a tier to the square word-search grid size.
func (d Difficulty) wordSearchSize() int {
	switch d {
	case Easy:
		return 8
	case Medium:
		return 10
	case Hard:
		return 12
	default:
		return 14 // Expert
	}
}

// crosswordSize maps a tier to the square crossword grid size.
func (d Difficulty) crosswordSize() int {
	switch d {
	case Easy:
		return 11
	case Medium:
		return 13
	case Hard:
		return 15
	default:
		return 17 // Expert
	}
}

// nonogramSize maps a tier to the square nonogram board size.
func (d Difficulty) nonogramSize() int {
	switch d {
	case Easy:
		return 5
	case Medium:
		return 10
	case Hard:
		return 15
	default:
		return 20 // Expert
	}
}
