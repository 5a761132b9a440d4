package sudoku

import (
	"testing"

	"github.com/wordforge/puzzlegen/internal/board"
)

// A classic solvable puzzle with a unique solution.
const samplePuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestSolveSample(t *testing.T) {
	b, err := board.NewFromString(samplePuzzle)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	solved, err := Solve(b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !solved.IsComplete() {
		t.Fatal("Solve returned an incomplete or invalid grid")
	}
	// Clues must survive solving.
	for pos := 0; pos < board.CellCount; pos++ {
		if v := b.Get(pos); v != board.EmptyCell && v != solved.Get(pos) {
			t.Fatalf("clue at %d changed: %d vs %d", pos, v, solved.Get(pos))
		}
	}
}

func TestHasUniqueSolution(t *testing.T) {
	b, err := board.NewFromString(samplePuzzle)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	if !HasUniqueSolution(b) {
		t.Fatal("sample puzzle should have a unique solution")
	}
}

func TestCountSolutionsEmptyBoard(t *testing.T) {
	if got := CountSolutions(board.New(), 2); got != 2 {
		t.Fatalf("CountSolutions(empty, 2) = %d, want 2 (limit)", got)
	}
}

func TestSolveRejectsInvalidPuzzle(t *testing.T) {
	b := board.New()
	b.SetForce(board.MakePos(0, 0), 1)
	b.SetForce(board.MakePos(0, 1), 1) // duplicate in row
	if _, err := Solve(b); err == nil {
		t.Fatal("Solve accepted a contradictory board")
	}
}
