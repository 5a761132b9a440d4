package nonogram

import (
	"errors"
	"fmt"
)

var (
	// ErrNoClues reports missing row or column clues.
	ErrNoClues = errors.New("row and column clues must not be empty")
	// ErrEmptyPattern reports a candidate with no filled cells.
	ErrEmptyPattern = errors.New("pattern has no filled cells")
	// ErrSparsePattern reports a candidate below the minimum fill ratio.
	ErrSparsePattern = errors.New("pattern is under the minimum fill ratio")
	// ErrRaggedPattern reports rows of unequal length.
	ErrRaggedPattern = errors.New("pattern rows must all have the same length")
)

// minFillRatio rejects degenerate hand-drawn candidates before the
// expensive solve runs.
const minFillRatio = 0.1

// Report is the oracle's verdict: whether line logic alone determines
// every cell, and how many cells remained unknown if not. An exhausted
// iteration budget reports as unsolvable, never as success.
type Report struct {
	Solvable bool `json:"solvable"`
	Unsolved int  `json:"unsolvedCount"`
}

// CheckSolvability decides whether the clues determine a unique picture
// by repeated line deduction alone, with no guessing. Starting from an
// all-unknown grid it sweeps every row then every column with SolveLine,
// copying newly forced cells into the shared grid, until a full pass
// changes nothing or the pass budget (2×rows×cols) runs out.
func CheckSolvability(rowClues, colClues [][]int) (Report, error) {
	rows, cols := len(rowClues), len(colClues)
	if rows == 0 || cols == 0 {
		return Report{}, ErrNoClues
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	maxPasses := 2 * rows * cols
	for pass := 0; pass < maxPasses; pass++ {
		changed := 0

		for r := 0; r < rows; r++ {
			solved, err := SolveLine(cells[r], rowClues[r])
			if err != nil {
				if errors.Is(err, ErrLineContradiction) {
					return Report{Solvable: false, Unsolved: countUnknown(cells)}, nil
				}
				return Report{}, fmt.Errorf("row %d: %w", r, err)
			}
			for c := range solved {
				if solved[c] != cells[r][c] {
					cells[r][c] = solved[c]
					changed++
				}
			}
		}

		column := make([]Cell, rows)
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				column[r] = cells[r][c]
			}
			solved, err := SolveLine(column, colClues[c])
			if err != nil {
				if errors.Is(err, ErrLineContradiction) {
					return Report{Solvable: false, Unsolved: countUnknown(cells)}, nil
				}
				return Report{}, fmt.Errorf("column %d: %w", c, err)
			}
			for r := range solved {
				if solved[r] != cells[r][c] {
					cells[r][c] = solved[r]
					changed++
				}
			}
		}

		if changed == 0 {
			break
		}
	}

	unsolved := countUnknown(cells)
	return Report{Solvable: unsolved == 0, Unsolved: unsolved}, nil
}

// Accept is the gate for user-authored patterns: structural checks first
// (non-empty, not under ~10% filled), then the solvability oracle on the
// derived clues. A candidate is accepted only when the returned report is
// solvable and the error is nil.
func Accept(pattern [][]bool) (Report, error) {
	if err := validatePattern(pattern); err != nil {
		return Report{}, err
	}
	rowClues, colClues := CluesFromPattern(pattern)
	return CheckSolvability(rowClues, colClues)
}

// CluesFromPattern derives the row and column run-length clues of a
// picture. A line with no filled cells yields the single clue 0.
func CluesFromPattern(pattern [][]bool) (rowClues, colClues [][]int) {
	rows := len(pattern)
	cols := 0
	if rows > 0 {
		cols = len(pattern[0])
	}

	rowClues = make([][]int, rows)
	for r, line := range pattern {
		rowClues[r] = lineClues(line)
	}

	colClues = make([][]int, cols)
	column := make([]bool, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			column[r] = pattern[r][c]
		}
		colClues[c] = lineClues(column)
	}
	return rowClues, colClues
}

func lineClues(line []bool) []int {
	clues := []int{}
	run := 0
	for _, filled := range line {
		if filled {
			run++
			continue
		}
		if run > 0 {
			clues = append(clues, run)
			run = 0
		}
	}
	if run > 0 {
		clues = append(clues, run)
	}
	if len(clues) == 0 {
		return []int{0}
	}
	return clues
}

func validatePattern(pattern [][]bool) error {
	rows := len(pattern)
	if rows == 0 || len(pattern[0]) == 0 {
		return ErrEmptyPattern
	}
	cols := len(pattern[0])

	filled := 0
	for r, line := range pattern {
		if len(line) != cols {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedPattern, r, len(line), cols)
		}
		for _, f := range line {
			if f {
				filled++
			}
		}
	}
	if filled == 0 {
		return ErrEmptyPattern
	}
	if float64(filled) < minFillRatio*float64(rows*cols) {
		return fmt.Errorf("%w: %d of %d filled", ErrSparsePattern, filled, rows*cols)
	}
	return nil
}

func countUnknown(cells [][]Cell) int {
	n := 0
	for _, row := range cells {
		for _, c := range row {
			if c == Unknown {
				n++
			}
		}
	}
	return n
}
