// Package grid provides the coordinate and grid primitives shared by all
// puzzle generators: 0-indexed row-major coordinates, compass directions,
// and a small rune-grid type for word puzzles.
package grid

import (
	"fmt"
	"math/rand"
	"time"
)

// Coord identifies a cell by row and column, both 0-indexed.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row, c.Col)
}

// Translate returns the coordinate offset by (dr, dc).
func (c Coord) Translate(dr, dc int) Coord {
	return Coord{c.Row + dr, c.Col + dc}
}

// Direction is a unit step vector. Each component is -1, 0, or 1 and the
// two are never both 0.
type Direction struct {
	DRow int
	DCol int
}

// Compass holds the eight scanning directions used by word-search
// placement, clockwise from east.
var Compass = [8]Direction{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// OrthogonalNeighbors returns the in-bounds 4-connected neighbors of c on
// a rows×cols grid. A stack-local array backs the slice to avoid heap
// allocation on the hot region-growth path.
func OrthogonalNeighbors(c Coord, rows, cols int) []Coord {
	var buf [4]Coord
	n := 0
	if c.Row > 0 {
		buf[n] = Coord{c.Row - 1, c.Col}
		n++
	}
	if c.Row < rows-1 {
		buf[n] = Coord{c.Row + 1, c.Col}
		n++
	}
	if c.Col > 0 {
		buf[n] = Coord{c.Row, c.Col - 1}
		n++
	}
	if c.Col < cols-1 {
		buf[n] = Coord{c.Row, c.Col + 1}
		n++
	}
	return buf[:n]
}

// NewRand builds the random source every generator call receives
// explicitly. Seed 0 means "derive from the clock"; any other value gives
// a reproducible stream. Callers running requests in parallel must give
// each request its own source.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Runes is a rows×cols letter grid. The zero rune marks an unused cell.
type Runes struct {
	rows  int
	cols  int
	cells []rune
}

// NewRunes allocates an empty letter grid. Dimensions must be positive.
func NewRunes(rows, cols int) (*Runes, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid: dimensions must be positive, got %dx%d", rows, cols)
	}
	return &Runes{rows: rows, cols: cols, cells: make([]rune, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Runes) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Runes) Cols() int { return g.cols }

// InBounds reports whether c lies on the grid.
func (g *Runes) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the rune at c, or 0 when c is out of bounds or unset.
func (g *Runes) Get(c Coord) rune {
	if !g.InBounds(c) {
		return 0
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// Set writes r at c. Out-of-bounds writes are ignored; placement code
// checks bounds before writing.
func (g *Runes) Set(c Coord, r rune) {
	if g.InBounds(c) {
		g.cells[c.Row*g.cols+c.Col] = r
	}
}

// Lines returns the grid as a slice of strings, one per row. Unset cells
// come out as spaces.
func (g *Runes) Lines() []string {
	out := make([]string, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]rune, g.cols)
		for c := 0; c < g.cols; c++ {
			ch := g.cells[r*g.cols+c]
			if ch == 0 {
				ch = ' '
			}
			row[c] = ch
		}
		out[r] = string(row)
	}
	return out
}

// FillRandom writes a random letter from alphabet into every unset cell.
func (g *Runes) FillRandom(rng *rand.Rand, alphabet []rune) {
	for i, ch := range g.cells {
		if ch == 0 {
			g.cells[i] = alphabet[rng.Intn(len(alphabet))]
		}
	}
}
