package killer

import (
	"errors"
	"testing"

	"github.com/wordforge/puzzlegen/internal/board"
	"github.com/wordforge/puzzlegen/internal/grid"
	"github.com/wordforge/puzzlegen/internal/sudoku"
)

func solvedBoard(t *testing.T, seed int64) *board.Board {
	t.Helper()
	b, err := sudoku.New(&sudoku.Options{Seed: seed}).Fill()
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	return b
}

func TestGenerateCoversBoardExactly(t *testing.T) {
	ranges := []struct {
		name             string
		minSize, maxSize int
	}{
		{"easy 2-3", 2, 3},
		{"medium 2-4", 2, 4},
		{"expert 2-6", 2, 6},
	}
	for _, tc := range ranges {
		t.Run(tc.name, func(t *testing.T) {
			solution := solvedBoard(t, 21)
			p, err := Generate(grid.NewRand(99), solution, tc.minSize, tc.maxSize)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			var covered [board.CellCount]int
			for _, cage := range p.Cages {
				for _, c := range cage.Cells {
					covered[board.MakePos(c.Row, c.Col)]++
				}
			}
			for pos, n := range covered {
				if n != 1 {
					t.Fatalf("cell %d covered %d times", pos, n)
				}
			}
		})
	}
}

func TestGenerateCageSizesAndSums(t *testing.T) {
	solution := solvedBoard(t, 5)
	p, err := Generate(grid.NewRand(7), solution, 2, 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	undersized := make(map[int]bool)
	for _, i := range p.Undersized {
		undersized[i] = true
	}

	for i, cage := range p.Cages {
		if len(cage.Cells) > 3 {
			t.Fatalf("cage %d has %d cells, above the maximum 3", i, len(cage.Cells))
		}
		if len(cage.Cells) < 2 && !undersized[i] {
			t.Fatalf("cage %d has %d cells but is not reported undersized", i, len(cage.Cells))
		}

		sum := 0
		for _, c := range cage.Cells {
			sum += solution.Get(board.MakePos(c.Row, c.Col))
		}
		if sum != cage.Sum {
			t.Fatalf("cage %d sum = %d, want %d", i, cage.Sum, sum)
		}
	}
}

func TestGenerateCagesAreConnected(t *testing.T) {
	solution := solvedBoard(t, 13)
	p, err := Generate(grid.NewRand(13), solution, 2, 6)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, cage := range p.Cages {
		if !isConnected(cage.Cells) {
			t.Fatalf("cage %d is not 4-connected: %v", i, cage.Cells)
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	solution := solvedBoard(t, 1)
	if _, err := Generate(grid.NewRand(1), solution, 3, 2); !errors.Is(err, ErrInvalidSizeRange) {
		t.Fatalf("Generate(min>max) = %v, want ErrInvalidSizeRange", err)
	}
	if _, err := Generate(grid.NewRand(1), solution, 0, 3); !errors.Is(err, ErrInvalidSizeRange) {
		t.Fatalf("Generate(min=0) = %v, want ErrInvalidSizeRange", err)
	}
	if _, err := Generate(grid.NewRand(1), board.New(), 2, 3); !errors.Is(err, ErrIncompleteBoard) {
		t.Fatalf("Generate(empty board) = %v, want ErrIncompleteBoard", err)
	}
}

// isConnected floods from the first cell over 4-neighbors.
func isConnected(cells []grid.Coord) bool {
	if len(cells) == 0 {
		return false
	}
	in := make(map[grid.Coord]bool, len(cells))
	for _, c := range cells {
		in[c] = true
	}
	seen := map[grid.Coord]bool{cells[0]: true}
	queue := []grid.Coord{cells[0]}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, nb := range grid.OrthogonalNeighbors(c, board.Size, board.Size) {
			if in[nb] && !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(seen) == len(cells)
}
