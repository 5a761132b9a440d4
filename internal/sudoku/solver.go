package sudoku

import (
	"errors"
	"math/bits"

	"github.com/wordforge/puzzlegen/internal/board"
)

var (
	// ErrNoSolution reports a puzzle with no valid completion.
	ErrNoSolution = errors.New("puzzle has no solution")
	// ErrInvalidPuzzle reports a puzzle that already violates constraints.
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
)

// Solve completes a puzzle by constraint propagation plus MRV
// backtracking and returns the solved board. The input is not modified.
func Solve(b *board.Board) (*board.Board, error) {
	if !b.IsValid() {
		return nil, ErrInvalidPuzzle
	}
	work := b.Clone()
	if !solveFrom(work) {
		return nil, ErrNoSolution
	}
	return work, nil
}

// HasUniqueSolution reports whether a puzzle has exactly one completion.
// The reducer never calls this; it exists for callers that want the
// guarantee the difficulty tiers do not provide.
func HasUniqueSolution(b *board.Board) bool {
	return CountSolutions(b, 2) == 1
}

// CountSolutions counts completions of the puzzle, stopping once limit is
// reached. The input is not modified.
func CountSolutions(b *board.Board, limit int) int {
	if !b.IsValid() {
		return 0
	}
	count := 0
	countFrom(b.Clone(), limit, &count)
	return count
}

func solveFrom(b *board.Board) bool {
	if !propagate(b) {
		return false
	}
	if b.EmptyCount() == 0 {
		return true
	}
	pos, candidates := findMRVCell(b)
	for _, val := range candidates {
		clone := b.Clone()
		clone.SetForce(pos, val)
		if solveFrom(clone) {
			*b = *clone
			return true
		}
	}
	return false
}

func countFrom(b *board.Board, limit int, count *int) {
	if *count >= limit || !propagate(b) {
		return
	}
	if b.EmptyCount() == 0 {
		*count++
		return
	}
	pos, candidates := findMRVCell(b)
	for _, val := range candidates {
		if *count >= limit {
			return
		}
		clone := b.Clone()
		clone.SetForce(pos, val)
		countFrom(clone, limit, count)
	}
}

// propagate applies naked and hidden singles until no cell changes.
// Returns false when a contradiction is found.
func propagate(b *board.Board) bool {
	for changed := true; changed; {
		changed = false
		if applyNakedSingles(b) {
			changed = true
		}
		if applyHiddenSingles(b) {
			changed = true
		}
		if hasContradiction(b) {
			return false
		}
	}
	return true
}

// applyNakedSingles fills cells that have exactly one candidate.
func applyNakedSingles(b *board.Board) bool {
	changed := false
	for pos := range board.CellCount {
		if b.Get(pos) != board.EmptyCell {
			continue
		}
		mask := b.GetCandidatesMask(pos)
		if mask == 0 {
			break // caught by the contradiction check
		}
		if bits.OnesCount(mask) == 1 {
			b.SetForce(pos, bits.TrailingZeros(mask)+1)
			changed = true
		}
	}
	return changed
}

// applyHiddenSingles fills values that can only go in one cell of a unit.
func applyHiddenSingles(b *board.Board) bool {
	changed := false
	for unit := range board.Size {
		changed = findHiddenSingles(b, rowCells(unit)) || changed
		changed = findHiddenSingles(b, colCells(unit)) || changed
		changed = findHiddenSingles(b, boxCells(unit)) || changed
	}
	return changed
}

func findHiddenSingles(b *board.Board, cells [board.Size]int) bool {
	changed := false
	var positions [board.Size + 1][]int

	for _, pos := range cells {
		if b.Get(pos) != board.EmptyCell {
			continue
		}
		for _, val := range b.GetCandidates(pos) {
			positions[val] = append(positions[val], pos)
		}
	}
	for val := 1; val <= board.Size; val++ {
		if len(positions[val]) == 1 {
			b.SetForce(positions[val][0], val)
			changed = true
		}
	}
	return changed
}

func hasContradiction(b *board.Board) bool {
	for pos := range board.CellCount {
		if b.Get(pos) == board.EmptyCell && b.GetCandidatesMask(pos) == 0 {
			return true
		}
	}
	return false
}

// findMRVCell returns the empty cell with the fewest candidates.
func findMRVCell(b *board.Board) (int, []int) {
	bestPos := -1
	var bestCandidates []int
	for pos := range board.CellCount {
		if b.Get(pos) != board.EmptyCell {
			continue
		}
		candidates := b.GetCandidates(pos)
		if bestPos == -1 || len(candidates) < len(bestCandidates) {
			bestPos = pos
			bestCandidates = candidates
			if len(candidates) <= 1 {
				break
			}
		}
	}
	return bestPos, bestCandidates
}

func rowCells(row int) [board.Size]int {
	var cells [board.Size]int
	for col := range board.Size {
		cells[col] = board.MakePos(row, col)
	}
	return cells
}

func colCells(col int) [board.Size]int {
	var cells [board.Size]int
	for row := range board.Size {
		cells[row] = board.MakePos(row, col)
	}
	return cells
}

func boxCells(box int) [board.Size]int {
	var cells [board.Size]int
	startRow, startCol := (box/3)*3, (box%3)*3
	i := 0
	for r := startRow; r < startRow+3; r++ {
		for c := startCol; c < startCol+3; c++ {
			cells[i] = board.MakePos(r, c)
			i++
		}
	}
	return cells
}
