package nonogram

import (
	"errors"
	"fmt"
	"math/rand"
)

// maxGenerateAttempts bounds the re-roll loop. Random patterns at the
// chosen density are logic-solvable often enough that hitting this cap
// means the requested size is unreasonable.
const maxGenerateAttempts = 200

// fillDensity is the target fraction of filled cells in generated
// patterns. Dense pictures give longer runs and solve more reliably by
// line logic alone.
const fillDensity = 0.55

// ErrGenerationFailed reports that no accepted pattern was found within
// the attempt budget.
var ErrGenerationFailed = errors.New("failed to generate a logic-solvable pattern")

// Puzzle is a generated binary-image puzzle: the clue lists a solver
// sees, plus the picture they describe.
type Puzzle struct {
	RowClues [][]int  `json:"rowClues"`
	ColClues [][]int  `json:"colClues"`
	Pattern  [][]bool `json:"-"`
}

// Generate produces a size×size pattern whose clues the oracle certifies
// as solvable by line logic. It re-rolls random patterns until one passes
// Accept, up to a fixed attempt budget.
func Generate(rng *rand.Rand, size int) (*Puzzle, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrGenerationFailed, size)
	}

	for range maxGenerateAttempts {
		pattern := randomPattern(rng, size)
		report, err := Accept(pattern)
		if err != nil || !report.Solvable {
			continue
		}
		rowClues, colClues := CluesFromPattern(pattern)
		return &Puzzle{RowClues: rowClues, ColClues: colClues, Pattern: pattern}, nil
	}
	return nil, fmt.Errorf("%w: size %d after %d attempts", ErrGenerationFailed, size, maxGenerateAttempts)
}

func randomPattern(rng *rand.Rand, size int) [][]bool {
	pattern := make([][]bool, size)
	for r := range pattern {
		pattern[r] = make([]bool, size)
		for c := range pattern[r] {
			pattern[r][c] = rng.Float64() < fillDensity
		}
	}
	return pattern
}
