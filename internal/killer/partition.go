// Package killer partitions a solved 9×9 board into connected cages of
// randomized size and derives each cage's digit sum, producing the
// constraint layer for killer-style puzzles.
package killer

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/wordforge/puzzlegen/internal/board"
	"github.com/wordforge/puzzlegen/internal/grid"
)

var (
	// ErrInvalidSizeRange reports a malformed cage-size range.
	ErrInvalidSizeRange = errors.New("cage size range must satisfy 1 <= min <= max")
	// ErrIncompleteBoard reports a board with empty cells; cage sums are
	// only defined over a complete solution.
	ErrIncompleteBoard = errors.New("board must be completely filled")
)

// Cage is a connected set of cells sharing one sum constraint. Cells are
// listed in the order they were grown, starting from the row-major seed.
type Cage struct {
	Cells []grid.Coord `json:"cells"`
	Sum   int          `json:"sum"`
}

// Partition covers the whole board with disjoint cages. Undersized lists
// the indices of cages that came out smaller than the requested minimum
// because growth ran out of unassigned neighbors; such cages are valid,
// but callers targeting a strict difficulty tier may want to re-roll.
type Partition struct {
	Cages      []Cage `json:"cages"`
	Undersized []int  `json:"undersized,omitempty"`
}

// Generate partitions the board into cages of target size drawn uniformly
// from [minSize, maxSize]. Coordinates are scanned in row-major order;
// each unassigned coordinate seeds a new cage, which grows by repeatedly
// claiming a random unassigned orthogonal neighbor of any cell already in
// the cage. Growth that stalls before reaching its target yields a
// smaller cage rather than an error.
func Generate(rng *rand.Rand, solution *board.Board, minSize, maxSize int) (*Partition, error) {
	if minSize < 1 || minSize > maxSize {
		return nil, fmt.Errorf("%w: got [%d, %d]", ErrInvalidSizeRange, minSize, maxSize)
	}
	if solution.EmptyCount() != 0 {
		return nil, fmt.Errorf("%w: %d empty cells", ErrIncompleteBoard, solution.EmptyCount())
	}

	var assigned [board.CellCount]bool
	p := &Partition{}

	for pos := range board.CellCount {
		if assigned[pos] {
			continue
		}

		target := minSize + rng.Intn(maxSize-minSize+1)
		seed := grid.Coord{Row: board.Row(pos), Col: board.Col(pos)}
		cells := []grid.Coord{seed}
		assigned[pos] = true

		for len(cells) < target {
			next, ok := randomFrontierCell(rng, cells, &assigned)
			if !ok {
				break // boxed in; accept the smaller cage
			}
			cells = append(cells, next)
			assigned[board.MakePos(next.Row, next.Col)] = true
		}

		cage := Cage{Cells: cells}
		for _, c := range cells {
			cage.Sum += solution.Get(board.MakePos(c.Row, c.Col))
		}
		if len(cells) < minSize {
			p.Undersized = append(p.Undersized, len(p.Cages))
		}
		p.Cages = append(p.Cages, cage)
	}

	return p, nil
}

// randomFrontierCell picks a uniformly random unassigned orthogonal
// neighbor of any cell already in the cage.
func randomFrontierCell(rng *rand.Rand, cells []grid.Coord, assigned *[board.CellCount]bool) (grid.Coord, bool) {
	frontier := make([]grid.Coord, 0, 4*len(cells))
	seen := make(map[grid.Coord]bool, 4*len(cells))
	for _, c := range cells {
		for _, nb := range grid.OrthogonalNeighbors(c, board.Size, board.Size) {
			if !assigned[board.MakePos(nb.Row, nb.Col)] && !seen[nb] {
				seen[nb] = true
				frontier = append(frontier, nb)
			}
		}
	}
	if len(frontier) == 0 {
		return grid.Coord{}, false
	}
	return frontier[rng.Intn(len(frontier))], true
}
