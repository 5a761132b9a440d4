// Package engine composes the puzzle generators behind one dispatch
// surface: a request names a kind and a difficulty tier, and the engine
// returns a (public data, solution) artifact for the persistence layer to
// store. Each request is a pure, synchronous computation with its own
// random source, so requests may run in parallel freely.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wordforge/puzzlegen/internal/board"
	"github.com/wordforge/puzzlegen/internal/crossword"
	"github.com/wordforge/puzzlegen/internal/grid"
	"github.com/wordforge/puzzlegen/internal/killer"
	"github.com/wordforge/puzzlegen/internal/nonogram"
	"github.com/wordforge/puzzlegen/internal/sudoku"
	"github.com/wordforge/puzzlegen/internal/wordsearch"
)

var (
	// ErrWordsRequired reports a word-search request without words.
	ErrWordsRequired = errors.New("word-search generation requires a word list")
	// ErrEntriesRequired reports a crossword request without entries.
	ErrEntriesRequired = errors.New("crossword generation requires word+clue entries")
)

// Request describes one generation call. Words feeds word-search
// requests, Entries feeds crossword requests, and Theme is passed through
// to the artifact untouched. Seed 0 derives a seed from the clock.
type Request struct {
	Kind       Kind
	Difficulty Difficulty
	Seed       int64
	Words      []string
	Entries    []crossword.Entry
	Theme      string
}

// Artifact is the generation result. Public contains only what a solver
// may see; Solution is the complete ground truth and must never reach end
// users before they finish (or the caller validates a submission).
// Omitted lists request inputs that could not be placed; a non-empty list
// is not an error, but callers that need completeness must check it.
type Artifact struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"kind"`
	Difficulty Difficulty `json:"difficulty"`
	Seed       int64      `json:"seed"`
	Theme      string     `json:"theme,omitempty"`
	Public     any        `json:"public"`
	Solution   any        `json:"solution"`
	Omitted    []string   `json:"omitted,omitempty"`
}

// Engine dispatches generation requests to the per-kind generators.
type Engine struct {
	log *logrus.Logger
}

// New creates an engine. A nil logger falls back to the logrus standard
// logger.
func New(log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{log: log}
}

// Generate runs the generator for the requested kind and difficulty.
func (e *Engine) Generate(req Request) (*Artifact, error) {
	start := time.Now()
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	art := &Artifact{
		ID:         uuid.NewString(),
		Kind:       req.Kind,
		Difficulty: req.Difficulty,
		Seed:       seed,
		Theme:      req.Theme,
	}

	var err error
	switch req.Kind {
	case KindSudoku:
		err = e.generateSudoku(art, seed, req.Difficulty)
	case KindKiller:
		err = e.generateKiller(art, seed, req.Difficulty)
	case KindWordSearch:
		err = e.generateWordSearch(art, seed, req)
	case KindCrossword:
		err = e.generateCrossword(art, seed, req)
	case KindNonogram:
		err = e.generateNonogram(art, seed, req.Difficulty)
	default:
		err = fmt.Errorf("unknown puzzle kind: %q", req.Kind)
	}
	if err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"kind":       art.Kind,
		"difficulty": art.Difficulty.String(),
		"seed":       art.Seed,
		"omitted":    len(art.Omitted),
		"duration":   time.Since(start).Round(time.Millisecond),
	}).Info("puzzle generated")
	return art, nil
}

// CheckLogicalSolvability exposes the nonogram oracle standalone for
// puzzle-authoring tools that want a verdict on hand-drawn clues before
// accepting them.
func (e *Engine) CheckLogicalSolvability(rowClues, colClues [][]int) (nonogram.Report, error) {
	return nonogram.CheckSolvability(rowClues, colClues)
}

// DigitGrid is a 9×9 grid of digits; zero means unknown/removed.
type DigitGrid [board.Size][board.Size]int

// SudokuPublic is the solver-visible side of a grid-fill puzzle.
type SudokuPublic struct {
	Grid DigitGrid `json:"grid"`
}

// SudokuSolution is the full solved grid.
type SudokuSolution struct {
	Grid DigitGrid `json:"grid"`
}

func (e *Engine) generateSudoku(art *Artifact, seed int64, diff Difficulty) error {
	opts := sudoku.DefaultOptions(diff.removals())
	opts.Seed = seed
	puzzle, solution, err := sudoku.New(opts).Generate()
	if err != nil {
		return err
	}
	art.Public = SudokuPublic{Grid: digitGrid(puzzle)}
	art.Solution = SudokuSolution{Grid: digitGrid(solution)}
	return nil
}

// KillerPublic is the solver-visible side of a cage puzzle: an empty grid
// plus the cage layout with sums. The cage sums alone constrain the fill.
type KillerPublic struct {
	Cages []killer.Cage `json:"cages"`
}

func (e *Engine) generateKiller(art *Artifact, seed int64, diff Difficulty) error {
	opts := sudoku.DefaultOptions(0)
	opts.Seed = seed
	gen := sudoku.New(opts)
	solution, err := gen.Fill()
	if err != nil {
		return err
	}

	minSize, maxSize := diff.cageSizeRange()
	partition, err := killer.Generate(grid.NewRand(seed+1), solution, minSize, maxSize)
	if err != nil {
		return err
	}
	for _, i := range partition.Undersized {
		art.Omitted = append(art.Omitted, fmt.Sprintf("cage %d undersized (%d cells)", i, len(partition.Cages[i].Cells)))
	}
	art.Public = KillerPublic{Cages: partition.Cages}
	art.Solution = SudokuSolution{Grid: digitGrid(solution)}
	return nil
}

// WordSearchPublic is the letter grid and the list of words to find.
type WordSearchPublic struct {
	Grid  []string `json:"grid"`
	Words []string `json:"words"`
}

// WordSearchSolution locates every placed word.
type WordSearchSolution struct {
	Placements []wordsearch.Placement `json:"placements"`
}

func (e *Engine) generateWordSearch(art *Artifact, seed int64, req Request) error {
	if len(req.Words) == 0 {
		return ErrWordsRequired
	}
	size := req.Difficulty.wordSearchSize()
	res, err := wordsearch.Generate(grid.NewRand(seed), req.Words, size, size)
	if err != nil {
		return err
	}

	placed := make([]string, len(res.Placements))
	for i, p := range res.Placements {
		placed[i] = p.Word
	}
	art.Omitted = res.Omitted
	art.Public = WordSearchPublic{Grid: res.Grid.Lines(), Words: placed}
	art.Solution = WordSearchSolution{Placements: res.Placements}
	return nil
}

// PublicClue is a crossword clue without its answer.
type PublicClue struct {
	Number int    `json:"number"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Across bool   `json:"across"`
	Text   string `json:"text"`
}

// CrosswordPublic is the blocked/letter skeleton and the clue list.
// Blocked marks cells no word passes through.
type CrosswordPublic struct {
	Rows    int          `json:"rows"`
	Cols    int          `json:"cols"`
	Blocked [][]bool     `json:"blocked"`
	Clues   []PublicClue `json:"clues"`
}

// CrosswordSolution is the filled letter grid plus the answered clues.
type CrosswordSolution struct {
	Grid  []string         `json:"grid"`
	Clues []crossword.Clue `json:"clues"`
}

func (e *Engine) generateCrossword(art *Artifact, seed int64, req Request) error {
	if len(req.Entries) == 0 {
		return ErrEntriesRequired
	}
	size := req.Difficulty.crosswordSize()
	res, err := crossword.Generate(grid.NewRand(seed), req.Entries, size, size)
	if err != nil {
		return err
	}
	clues := res.Number(req.Entries)

	blocked := make([][]bool, size)
	for r := range blocked {
		blocked[r] = make([]bool, size)
		for c := range blocked[r] {
			blocked[r][c] = res.Grid.Get(grid.Coord{Row: r, Col: c}) == 0
		}
	}
	public := make([]PublicClue, len(clues))
	for i, cl := range clues {
		public[i] = PublicClue{Number: cl.Number, Row: cl.Row, Col: cl.Col, Across: cl.Across, Text: cl.Text}
	}

	art.Omitted = res.Omitted
	art.Public = CrosswordPublic{Rows: size, Cols: size, Blocked: blocked, Clues: public}
	art.Solution = CrosswordSolution{Grid: res.Grid.Lines(), Clues: clues}
	return nil
}

// NonogramPublic is the clue lists a solver sees.
type NonogramPublic struct {
	RowClues [][]int `json:"rowClues"`
	ColClues [][]int `json:"colClues"`
}

// NonogramSolution is the picture the clues describe.
type NonogramSolution struct {
	Pattern [][]bool `json:"pattern"`
}

func (e *Engine) generateNonogram(art *Artifact, seed int64, diff Difficulty) error {
	p, err := nonogram.Generate(grid.NewRand(seed), diff.nonogramSize())
	if err != nil {
		return err
	}
	art.Public = NonogramPublic{RowClues: p.RowClues, ColClues: p.ColClues}
	art.Solution = NonogramSolution{Pattern: p.Pattern}
	return nil
}

func digitGrid(b *board.Board) DigitGrid {
	var g DigitGrid
	for pos := 0; pos < board.CellCount; pos++ {
		g[board.Row(pos)][board.Col(pos)] = b.Get(pos)
	}
	return g
}
