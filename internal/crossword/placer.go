// Package crossword builds crossword-style grids from word+clue lists.
// Words are placed to maximize shared letters: every word after the first
// is attached by crossing an already-placed word where the two share a
// letter, with a bounded random fallback for words that cross nothing.
package crossword

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/wordforge/puzzlegen/internal/grid"
)

// fallbackAttempts bounds the free-placement retries for a word that
// cannot cross anything already on the grid.
const fallbackAttempts = 100

var (
	// ErrNoEntries reports an empty entry list.
	ErrNoEntries = errors.New("entry list must not be empty")
	// ErrGridTooSmall reports a grid that cannot hold the longest word.
	ErrGridTooSmall = errors.New("grid cannot hold the longest word")
)

// Entry pairs an answer with its clue text.
type Entry struct {
	Word string `json:"word"`
	Clue string `json:"clue"`
}

// Placement records a word's start cell and orientation.
type Placement struct {
	Word   string `json:"word"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Across bool   `json:"across"`
}

// Result is a built crossword. Grid holds letters with 0 for blocked
// cells; Omitted lists entries whose words could not be placed.
type Result struct {
	Grid       *grid.Runes
	Placements []Placement
	Omitted    []string
}

// Generate places the entries on a rows×cols grid, longest word first.
// The longest word goes horizontally centered; each later word is crossed
// through a shared letter with a placed word when possible, otherwise
// placed freely at a random legal spot, otherwise dropped.
func Generate(rng *rand.Rand, entries []Entry, rows, cols int) (*Result, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	g, err := grid.NewRunes(rows, cols)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(entries))
	for _, e := range entries {
		w := strings.ToUpper(strings.TrimSpace(e.Word))
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, ErrNoEntries
	}
	sort.SliceStable(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	if len(words[0]) > cols && len(words[0]) > rows {
		return nil, fmt.Errorf("%w: %q on %dx%d", ErrGridTooSmall, words[0], rows, cols)
	}

	res := &Result{Grid: g}
	for i, word := range words {
		var p Placement
		var ok bool
		switch {
		case i == 0:
			p, ok = placeFirst(g, word)
		default:
			p, ok = placeCrossing(g, word, res.Placements)
			if !ok {
				p, ok = placeFree(rng, g, word)
			}
		}
		if !ok {
			res.Omitted = append(res.Omitted, word)
			continue
		}
		write(g, p)
		res.Placements = append(res.Placements, p)
	}
	return res, nil
}

// placeFirst puts the seed word horizontally in the middle of the grid.
func placeFirst(g *grid.Runes, word string) (Placement, bool) {
	if len(word) > g.Cols() {
		return Placement{}, false
	}
	return Placement{
		Word:   word,
		Row:    g.Rows() / 2,
		Col:    (g.Cols() - len(word)) / 2,
		Across: true,
	}, true
}

// placeCrossing searches, for every placed word, for a letter the new
// word shares with it, and tries the perpendicular placement that makes
// the two cross at that letter. The first legal crossing wins.
func placeCrossing(g *grid.Runes, word string, placed []Placement) (Placement, bool) {
	for _, existing := range placed {
		for j, theirs := range existing.Word {
			for i, ours := range word {
				if ours != theirs {
					continue
				}
				var p Placement
				if existing.Across {
					// Cross vertically through column existing.Col+j.
					p = Placement{Word: word, Row: existing.Row - i, Col: existing.Col + j, Across: false}
				} else {
					p = Placement{Word: word, Row: existing.Row + j, Col: existing.Col - i, Across: true}
				}
				if canPlace(g, p) {
					return p, true
				}
			}
		}
	}
	return Placement{}, false
}

// placeFree tries random positions and orientations for a word that
// shares no usable letter with the grid.
func placeFree(rng *rand.Rand, g *grid.Runes, word string) (Placement, bool) {
	for range fallbackAttempts {
		p := Placement{
			Word:   word,
			Row:    rng.Intn(g.Rows()),
			Col:    rng.Intn(g.Cols()),
			Across: rng.Intn(2) == 0,
		}
		if canPlace(g, p) {
			return p, true
		}
	}
	return Placement{}, false
}

// canPlace checks bounds and adjacency legality. A covered cell must be
// empty or hold the exact letter being written (a crossing). Cells
// written fresh must not touch parallel neighbors, and the cells
// immediately before the start and after the end must be empty, so that
// placements never extend or abut existing words accidentally.
func canPlace(g *grid.Runes, p Placement) bool {
	dr, dc := direction(p)
	n := len(p.Word)

	start := grid.Coord{Row: p.Row, Col: p.Col}
	end := start.Translate((n-1)*dr, (n-1)*dc)
	if !g.InBounds(start) || !g.InBounds(end) {
		return false
	}
	if g.Get(start.Translate(-dr, -dc)) != 0 || g.Get(end.Translate(dr, dc)) != 0 {
		return false
	}

	for i, r := range p.Word {
		c := start.Translate(i*dr, i*dc)
		cell := g.Get(c)
		if cell != 0 {
			if cell != r {
				return false
			}
			continue // legal crossing, neighbors belong to the crossed word
		}
		// Fresh cell: the two cells perpendicular to the span must be
		// empty or off-grid.
		if g.Get(c.Translate(-dc, -dr)) != 0 || g.Get(c.Translate(dc, dr)) != 0 {
			return false
		}
	}
	return true
}

func write(g *grid.Runes, p Placement) {
	dr, dc := direction(p)
	for i, r := range p.Word {
		g.Set(grid.Coord{Row: p.Row + i*dr, Col: p.Col + i*dc}, r)
	}
}

func direction(p Placement) (dr, dc int) {
	if p.Across {
		return 0, 1
	}
	return 1, 0
}
