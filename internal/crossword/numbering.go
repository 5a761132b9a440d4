package crossword

import (
	"sort"

	"github.com/wordforge/puzzlegen/internal/grid"
)

// Clue is a numbered crossword clue with its answer and start cell.
type Clue struct {
	Number int    `json:"number"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Across bool   `json:"across"`
	Text   string `json:"text"`
	Answer string `json:"answer"`
}

// Number assigns sequential clue numbers to every cell that starts an
// across or a down run, scanning the grid in row-major order, and matches
// each placed word back to its clue text by exact word match against
// entries. Entries are consumed as they match so duplicate answers each
// claim their own clue.
func (r *Result) Number(entries []Entry) []Clue {
	numbers := make(map[grid.Coord]int)
	next := 1
	for row := 0; row < r.Grid.Rows(); row++ {
		for col := 0; col < r.Grid.Cols(); col++ {
			c := grid.Coord{Row: row, Col: col}
			if r.Grid.Get(c) == 0 {
				continue
			}
			if startsRun(r.Grid, c, 0, 1) || startsRun(r.Grid, c, 1, 0) {
				numbers[c] = next
				next++
			}
		}
	}

	used := make([]bool, len(entries))
	clues := make([]Clue, 0, len(r.Placements))
	for _, p := range r.Placements {
		clues = append(clues, Clue{
			Number: numbers[grid.Coord{Row: p.Row, Col: p.Col}],
			Row:    p.Row,
			Col:    p.Col,
			Across: p.Across,
			Text:   clueFor(entries, used, p.Word),
			Answer: p.Word,
		})
	}
	sort.Slice(clues, func(i, j int) bool {
		if clues[i].Number != clues[j].Number {
			return clues[i].Number < clues[j].Number
		}
		return clues[i].Across && !clues[j].Across
	})
	return clues
}

// startsRun reports whether the letter cell c begins a run of length ≥ 2
// in the (dr, dc) direction: no letter behind it and a letter ahead.
func startsRun(g *grid.Runes, c grid.Coord, dr, dc int) bool {
	if g.Get(c.Translate(-dr, -dc)) != 0 {
		return false
	}
	return g.Get(c.Translate(dr, dc)) != 0
}

func clueFor(entries []Entry, used []bool, word string) string {
	for i, e := range entries {
		if !used[i] && equalFold(e.Word, word) {
			used[i] = true
			return e.Clue
		}
	}
	return ""
}

// equalFold compares ASCII words case-insensitively without allocating.
func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'a' <= ca && ca <= 'z' {
			ca -= 'a' - 'A'
		}
		if 'a' <= cb && cb <= 'z' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
