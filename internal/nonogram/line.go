// Package nonogram implements line-logic deduction for binary-image
// puzzles with run-length clues: a single-line constraint solver, a
// fixed-point solvability oracle built on it, and pattern generation.
package nonogram

import (
	"errors"
	"fmt"
	"slices"
)

// Cell is the tri-state value used while solving. Puzzles themselves
// store only filled/empty; Unknown exists only inside deduction.
type Cell int8

const (
	Empty   Cell = -1
	Unknown Cell = 0
	Filled  Cell = 1
)

var (
	// ErrInvalidClues reports clue values that cannot describe any line.
	ErrInvalidClues = errors.New("clues must be positive (or a single 0)")
	// ErrCluesTooLong reports clues whose runs cannot fit in the line.
	ErrCluesTooLong = errors.New("clues do not fit in the line")
	// ErrLineContradiction reports known cells that no clue placement can
	// satisfy.
	ErrLineContradiction = errors.New("no clue placement matches the known cells")
)

// SolveLine returns a copy of cells with every value forced by logical
// necessity filled in. A cell is forced only when it takes the same value
// in all clue placements consistent with the already-known cells;
// anything else stays Unknown. Re-running SolveLine on its own output is
// a no-op.
func SolveLine(cells []Cell, clues []int) ([]Cell, error) {
	n := len(cells)
	out := slices.Clone(cells)

	// Degenerate case: an all-empty line.
	if len(clues) == 0 || (len(clues) == 1 && clues[0] == 0) {
		for i, c := range out {
			if c == Filled {
				return nil, fmt.Errorf("%w: cell %d filled but line is blank", ErrLineContradiction, i)
			}
			out[i] = Empty
		}
		return out, nil
	}

	total := 0
	for _, clue := range clues {
		if clue <= 0 {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidClues, clues)
		}
		total += clue
	}
	slack := n - (total + len(clues) - 1)
	if slack < 0 {
		return nil, fmt.Errorf("%w: %v in %d cells", ErrCluesTooLong, clues, n)
	}

	// Fully packed case: no slack, the layout is unique. Lay the runs
	// down left-aligned with single separators.
	if slack == 0 {
		pos := 0
		for _, clue := range clues {
			for i := 0; i < clue; i++ {
				if err := force(out, pos, Filled); err != nil {
					return nil, err
				}
				pos++
			}
			if pos < n {
				if err := force(out, pos, Empty); err != nil {
					return nil, err
				}
				pos++
			}
		}
		return out, nil
	}

	// General case: enumerate every placement consistent with the known
	// cells and keep only unanimous values.
	canFill := make([]bool, n)
	canEmpty := make([]bool, n)
	scratch := make([]bool, n)
	any := enumerate(cells, clues, 0, 0, scratch, canFill, canEmpty)
	if !any {
		return nil, fmt.Errorf("%w: clues %v", ErrLineContradiction, clues)
	}
	for i := range out {
		if out[i] != Unknown {
			continue
		}
		switch {
		case canFill[i] && !canEmpty[i]:
			out[i] = Filled
		case canEmpty[i] && !canFill[i]:
			out[i] = Empty
		}
	}
	return out, nil
}

// enumerate recursively places clues[run:] with the first run starting no
// earlier than pos. Cells before pos are already decided in scratch.
// Every complete consistent layout is merged into canFill/canEmpty;
// returns whether at least one layout was found.
func enumerate(cells []Cell, clues []int, run, pos int, scratch, canFill, canEmpty []bool) bool {
	n := len(cells)

	need := len(clues[run:]) - 1 // separators
	for _, clue := range clues[run:] {
		need += clue
	}

	found := false
	for s := pos; s+need <= n; s++ {
		// The layout leaves cells pos..s-1 empty; a known-filled cell
		// there rules out this start and every later one.
		if s > pos && cells[s-1] == Filled {
			break
		}
		length := clues[run]
		if !runFits(cells, s, length) {
			continue
		}

		for i := s; i < s+length; i++ {
			scratch[i] = true
		}
		if run == len(clues)-1 {
			if !knownFilledAfter(cells, s+length) {
				merge(scratch, canFill, canEmpty)
				found = true
			}
		} else if s+length < n && cells[s+length] != Filled {
			// A separator cell follows the run; the next run starts
			// after it at the earliest.
			if enumerate(cells, clues, run+1, s+length+1, scratch, canFill, canEmpty) {
				found = true
			}
		}
		for i := s; i < s+length; i++ {
			scratch[i] = false
		}
	}
	return found
}

// runFits reports whether a run of the given length starting at s avoids
// every known-empty cell.
func runFits(cells []Cell, s, length int) bool {
	for i := s; i < s+length; i++ {
		if cells[i] == Empty {
			return false
		}
	}
	return true
}

// knownFilledAfter reports whether any cell at or beyond pos is known
// filled; such a cell cannot be left uncovered by the final run.
func knownFilledAfter(cells []Cell, pos int) bool {
	for i := pos; i < len(cells); i++ {
		if cells[i] == Filled {
			return true
		}
	}
	return false
}

// merge records one complete layout into the unanimity accumulators.
func merge(layout, canFill, canEmpty []bool) {
	for i, filled := range layout {
		if filled {
			canFill[i] = true
		} else {
			canEmpty[i] = true
		}
	}
}

// force writes val at pos, failing on a conflicting known value.
func force(cells []Cell, pos int, val Cell) error {
	if cells[pos] != Unknown && cells[pos] != val {
		return fmt.Errorf("%w: cell %d", ErrLineContradiction, pos)
	}
	cells[pos] = val
	return nil
}
