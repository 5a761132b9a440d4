package nonogram

import (
	"errors"
	"slices"
	"testing"

	"github.com/wordforge/puzzlegen/internal/grid"
)

// diamond returns the 5×5 pattern filled where |r-2|+|c-2| <= 2.
func diamond() [][]bool {
	p := make([][]bool, 5)
	for r := range p {
		p[r] = make([]bool, 5)
		for c := range p[r] {
			p[r][c] = abs(r-2)+abs(c-2) <= 2
		}
	}
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestCheckSolvabilityDiamond(t *testing.T) {
	rowClues, colClues := CluesFromPattern(diamond())
	report, err := CheckSolvability(rowClues, colClues)
	if err != nil {
		t.Fatalf("CheckSolvability failed: %v", err)
	}
	if !report.Solvable || report.Unsolved != 0 {
		t.Fatalf("diamond: %+v, want solvable with 0 unsolved", report)
	}
}

func TestCheckSolvabilityAmbiguous(t *testing.T) {
	// One filled cell per row and per column: any permutation matrix
	// satisfies the clues, so no cell is ever forced.
	single := [][]int{{1}, {1}, {1}, {1}, {1}}
	report, err := CheckSolvability(single, single)
	if err != nil {
		t.Fatalf("CheckSolvability failed: %v", err)
	}
	if report.Solvable {
		t.Fatal("ambiguous clues reported solvable")
	}
	if report.Unsolved == 0 {
		t.Fatal("ambiguous clues reported 0 unsolved cells")
	}
}

func TestCheckSolvabilityRejectsEmptyClues(t *testing.T) {
	if _, err := CheckSolvability(nil, [][]int{{1}}); !errors.Is(err, ErrNoClues) {
		t.Fatalf("CheckSolvability = %v, want ErrNoClues", err)
	}
}

func TestCluesFromPattern(t *testing.T) {
	pattern := [][]bool{
		{true, true, false, true},
		{false, false, false, false},
		{true, true, true, true},
	}
	rowClues, colClues := CluesFromPattern(pattern)

	wantRows := [][]int{{2, 1}, {0}, {4}}
	for r, want := range wantRows {
		if !slices.Equal(rowClues[r], want) {
			t.Fatalf("row %d clues = %v, want %v", r, rowClues[r], want)
		}
	}
	wantCols := [][]int{{1, 1}, {1, 1}, {1}, {1, 1}}
	for c, want := range wantCols {
		if !slices.Equal(colClues[c], want) {
			t.Fatalf("col %d clues = %v, want %v", c, colClues[c], want)
		}
	}
}

func TestAcceptGatesDegeneratePatterns(t *testing.T) {
	cases := []struct {
		name    string
		pattern [][]bool
		want    error
	}{
		{"nil pattern", nil, ErrEmptyPattern},
		{"all empty", [][]bool{{false, false}, {false, false}}, ErrEmptyPattern},
		{"under fill ratio", sparsePattern(), ErrSparsePattern},
		{"ragged rows", [][]bool{{true, true}, {true}}, ErrRaggedPattern},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Accept(tc.pattern); !errors.Is(err, tc.want) {
				t.Fatalf("Accept = %v, want %v", err, tc.want)
			}
		})
	}
}

// sparsePattern is 6×6 with a single filled cell: under 10% filled.
func sparsePattern() [][]bool {
	p := make([][]bool, 6)
	for r := range p {
		p[r] = make([]bool, 6)
	}
	p[0][0] = true
	return p
}

func TestAcceptDiamond(t *testing.T) {
	report, err := Accept(diamond())
	if err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if !report.Solvable {
		t.Fatalf("diamond rejected: %+v", report)
	}
}

func TestGenerateProducesSolvablePuzzle(t *testing.T) {
	p, err := Generate(grid.NewRand(17), 5)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	report, err := CheckSolvability(p.RowClues, p.ColClues)
	if err != nil {
		t.Fatalf("CheckSolvability failed: %v", err)
	}
	if !report.Solvable {
		t.Fatalf("generated puzzle not solvable: %+v", report)
	}

	// Clues must describe the returned pattern.
	gotRows, gotCols := CluesFromPattern(p.Pattern)
	for r := range gotRows {
		if !slices.Equal(gotRows[r], p.RowClues[r]) {
			t.Fatalf("row %d clues mismatch", r)
		}
	}
	for c := range gotCols {
		if !slices.Equal(gotCols[c], p.ColClues[c]) {
			t.Fatalf("col %d clues mismatch", c)
		}
	}
}
