// Package wordsearch places a word list onto a letter grid by randomized
// directional scanning and fills the leftover cells with random letters.
package wordsearch

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/wordforge/puzzlegen/internal/grid"
)

// maxAttempts is the per-word retry budget for random placements.
const maxAttempts = 100

var alphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// ErrNoWords reports an empty word list.
var ErrNoWords = errors.New("word list must not be empty")

// Placement records where a word landed: start coordinate plus a unit
// direction vector. The end coordinate is start + direction×(len-1).
type Placement struct {
	Word string         `json:"word"`
	Row  int            `json:"row"`
	Col  int            `json:"col"`
	Dir  grid.Direction `json:"dir"`
}

// Result is the outcome of a placement run. Omitted lists the words that
// exhausted their retry budget; their absence is not an error, but
// callers that need every word placed must check it.
type Result struct {
	Grid       *grid.Runes
	Placements []Placement
	Omitted    []string
}

// Generate places as many words as possible on a rows×cols grid.
// Words are uppercased and attempted longest-first, while the most space
// is free. Each attempt draws a random start cell and one of the eight
// compass directions; a placement is legal iff the whole span is in
// bounds and every covered cell is empty or already holds the same
// letter. The first legal attempt wins.
func Generate(rng *rand.Rand, words []string, rows, cols int) (*Result, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	g, err := grid.NewRunes(rows, cols)
	if err != nil {
		return nil, err
	}

	sorted := make([]string, len(words))
	for i, w := range words {
		sorted[i] = strings.ToUpper(w)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	res := &Result{Grid: g}
	for _, word := range sorted {
		if p, ok := tryPlace(rng, g, word); ok {
			res.Placements = append(res.Placements, p)
		} else {
			res.Omitted = append(res.Omitted, word)
		}
	}

	g.FillRandom(rng, alphabet)
	return res, nil
}

// tryPlace attempts up to maxAttempts random placements of word.
func tryPlace(rng *rand.Rand, g *grid.Runes, word string) (Placement, bool) {
	runes := []rune(word)
	for range maxAttempts {
		start := grid.Coord{Row: rng.Intn(g.Rows()), Col: rng.Intn(g.Cols())}
		dir := grid.Compass[rng.Intn(len(grid.Compass))]
		if !fits(g, runes, start, dir) {
			continue
		}
		for i, r := range runes {
			g.Set(start.Translate(i*dir.DRow, i*dir.DCol), r)
		}
		return Placement{Word: word, Row: start.Row, Col: start.Col, Dir: dir}, true
	}
	return Placement{}, false
}

// fits reports whether word can occupy the span from start along dir:
// every cell in bounds and either empty or holding the identical letter.
func fits(g *grid.Runes, word []rune, start grid.Coord, dir grid.Direction) bool {
	end := start.Translate((len(word)-1)*dir.DRow, (len(word)-1)*dir.DCol)
	if !g.InBounds(end) {
		return false
	}
	for i, r := range word {
		cell := g.Get(start.Translate(i*dir.DRow, i*dir.DCol))
		if cell != 0 && cell != r {
			return false
		}
	}
	return true
}

// Verify checks that every reported placement reads back correctly from
// the final grid. It exists for tests and for callers that post-process
// grids before serving them.
func (r *Result) Verify() error {
	for _, p := range r.Placements {
		for i, ch := range p.Word {
			c := grid.Coord{Row: p.Row + i*p.Dir.DRow, Col: p.Col + i*p.Dir.DCol}
			if got := r.Grid.Get(c); got != ch {
				return fmt.Errorf("wordsearch: %q letter %d at %v: got %q", p.Word, i, c, got)
			}
		}
	}
	return nil
}
