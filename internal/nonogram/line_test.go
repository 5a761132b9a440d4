package nonogram

import (
	"errors"
	"slices"
	"testing"
)

func unknownLine(n int) []Cell {
	return make([]Cell, n)
}

func TestSolveLineFullyPacked(t *testing.T) {
	cases := []struct {
		name  string
		cells []Cell
		clues []int
		want  []Cell
	}{
		{
			name:  "single run fills the line",
			cells: unknownLine(5),
			clues: []int{5},
			want:  []Cell{1, 1, 1, 1, 1},
		},
		{
			name:  "two runs with one separator",
			cells: unknownLine(5),
			clues: []int{2, 2},
			want:  []Cell{1, 1, -1, 1, 1},
		},
		{
			name:  "three singles",
			cells: unknownLine(5),
			clues: []int{1, 1, 1},
			want:  []Cell{1, -1, 1, -1, 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SolveLine(tc.cells, tc.clues)
			if err != nil {
				t.Fatalf("SolveLine failed: %v", err)
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("SolveLine = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSolveLineBlank(t *testing.T) {
	got, err := SolveLine(unknownLine(5), []int{0})
	if err != nil {
		t.Fatalf("SolveLine failed: %v", err)
	}
	want := []Cell{-1, -1, -1, -1, -1}
	if !slices.Equal(got, want) {
		t.Fatalf("SolveLine = %v, want %v", got, want)
	}
}

func TestSolveLineGeneralOverlap(t *testing.T) {
	// An 8-run in 10 cells: every placement covers cells 2-7.
	got, err := SolveLine(unknownLine(10), []int{8})
	if err != nil {
		t.Fatalf("SolveLine failed: %v", err)
	}
	for i := 2; i <= 7; i++ {
		if got[i] != Filled {
			t.Fatalf("cell %d = %v, want Filled", i, got[i])
		}
	}
	for _, i := range []int{0, 1, 8, 9} {
		if got[i] != Unknown {
			t.Fatalf("cell %d = %v, want Unknown", i, got[i])
		}
	}
}

func TestSolveLineRespectsKnownCells(t *testing.T) {
	// A single 2-run with an anchored filled cell at position 0 can only
	// occupy cells 0-1.
	cells := unknownLine(5)
	cells[0] = Filled
	got, err := SolveLine(cells, []int{2})
	if err != nil {
		t.Fatalf("SolveLine failed: %v", err)
	}
	want := []Cell{1, 1, -1, -1, -1}
	if !slices.Equal(got, want) {
		t.Fatalf("SolveLine = %v, want %v", got, want)
	}
}

func TestSolveLineIdempotent(t *testing.T) {
	cases := [][]int{{8}, {2, 3}, {1, 1}, {0}}
	for _, clues := range cases {
		first, err := SolveLine(unknownLine(10), clues)
		if err != nil {
			t.Fatalf("SolveLine(%v) failed: %v", clues, err)
		}
		second, err := SolveLine(first, clues)
		if err != nil {
			t.Fatalf("SolveLine(%v) rerun failed: %v", clues, err)
		}
		if !slices.Equal(first, second) {
			t.Fatalf("SolveLine(%v) not idempotent: %v then %v", clues, first, second)
		}
	}
}

func TestSolveLineMonotonic(t *testing.T) {
	// Adding known cells never reduces the number of forced cells.
	base, err := SolveLine(unknownLine(8), []int{3})
	if err != nil {
		t.Fatalf("SolveLine failed: %v", err)
	}
	withHint := unknownLine(8)
	withHint[0] = Filled
	hinted, err := SolveLine(withHint, []int{3})
	if err != nil {
		t.Fatalf("SolveLine failed: %v", err)
	}
	if countKnown(hinted) < countKnown(base) {
		t.Fatalf("hint reduced deductions: %d -> %d", countKnown(base), countKnown(hinted))
	}
}

func TestSolveLineErrors(t *testing.T) {
	cases := []struct {
		name  string
		cells []Cell
		clues []int
		want  error
	}{
		{"runs too long", unknownLine(4), []int{3, 2}, ErrCluesTooLong},
		{"negative clue", unknownLine(5), []int{-1}, ErrInvalidClues},
		{"filled cell on blank line", []Cell{1, 0, 0}, []int{0}, ErrLineContradiction},
		{"no consistent placement", []Cell{1, -1, 1, -1, -1, -1, -1, -1}, []int{3}, ErrLineContradiction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SolveLine(tc.cells, tc.clues)
			if !errors.Is(err, tc.want) {
				t.Fatalf("SolveLine = %v, want %v", err, tc.want)
			}
		})
	}
}

func countKnown(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if c != Unknown {
			n++
		}
	}
	return n
}
