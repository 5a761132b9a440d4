// Package sudoku generates classic 9×9 grid-fill puzzles: a backtracking
// filler produces a complete solution and a reducer clears cells down to
// the requested difficulty.
package sudoku

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/wordforge/puzzlegen/internal/board"
	"github.com/wordforge/puzzlegen/internal/grid"
)

// defaultMaxFillSteps caps the backtracking search. A 9×9 fill from an
// empty grid finishes in a few hundred steps; hitting this cap indicates
// a programming defect, not bad luck.
const defaultMaxFillSteps = 1_000_000

var (
	// ErrFillExhausted reports that the filler ran out of search budget.
	// It cannot trigger for a correct implementation on an empty grid.
	ErrFillExhausted = errors.New("grid fill exhausted its step budget")
	// ErrInvalidRemovals reports an out-of-range removal count.
	ErrInvalidRemovals = errors.New("removal count must be between 0 and 81")
)

// Generator creates grid-fill puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultRemovals)
	}
	return &Generator{
		options: options,
		rng:     grid.NewRand(options.Seed),
	}
}

// Generate produces a puzzle and its solution. The puzzle has exactly
// Options.Removals cells cleared; the solution is complete and valid.
func (g *Generator) Generate() (puzzle, solution *board.Board, err error) {
	solution, err = g.Fill()
	if err != nil {
		return nil, nil, err
	}
	puzzle, err = g.Reduce(solution, g.options.Removals)
	if err != nil {
		return nil, nil, err
	}
	return puzzle, solution, nil
}

// frame is one level of the fill search: a cell position and the shuffled
// digit order still to try there.
type frame struct {
	pos    int
	digits [board.Size]int
	next   int
}

// Fill produces a complete valid board by depth-first search over cells
// in row-major order, trying digits in a freshly shuffled order at each
// cell. The search keeps an explicit choice stack and undoes placements
// on dead ends instead of relying on call-stack unwinding.
func (g *Generator) Fill() (*board.Board, error) {
	maxSteps := g.options.MaxFillSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxFillSteps
	}

	b := board.New()
	stack := make([]frame, 0, board.CellCount)
	stack = append(stack, g.newFrame(0))

	for steps := 0; ; steps++ {
		if steps >= maxSteps {
			return nil, fmt.Errorf("%w after %d steps", ErrFillExhausted, steps)
		}

		f := &stack[len(stack)-1]
		placed := false
		for f.next < board.Size {
			d := f.digits[f.next]
			f.next++
			if b.GetCandidatesMask(f.pos)&uint(1<<(d-1)) != 0 {
				b.SetForce(f.pos, d)
				placed = true
				break
			}
		}

		if placed {
			if f.pos == board.CellCount-1 {
				return b, nil
			}
			stack = append(stack, g.newFrame(f.pos+1))
			continue
		}

		// Dead end: drop this frame and undo the previous placement so
		// its next digit can be tried.
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return nil, ErrFillExhausted
		}
		b.Clear(stack[len(stack)-1].pos)
	}
}

func (g *Generator) newFrame(pos int) frame {
	f := frame{pos: pos}
	for i := range board.Size {
		f.digits[i] = i + 1
	}
	g.rng.Shuffle(board.Size, func(i, j int) {
		f.digits[i], f.digits[j] = f.digits[j], f.digits[i]
	})
	return f
}

// Reduce clears exactly removals cells from a copy of the solution,
// visiting positions in a random order and skipping cells that are
// already empty. No uniqueness check is performed: removal counts are
// trusted to come from tuned difficulty tiers. Callers wanting a
// guaranteed unique solution should run HasUniqueSolution on the result.
func (g *Generator) Reduce(solution *board.Board, removals int) (*board.Board, error) {
	if removals < MinRemovals || removals > MaxRemovals {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRemovals, removals)
	}

	puzzle := solution.Clone()
	cleared := 0
	for _, pos := range g.rng.Perm(board.CellCount) {
		if cleared >= removals {
			break
		}
		if puzzle.Get(pos) == board.EmptyCell {
			continue
		}
		puzzle.Clear(pos)
		cleared++
	}

	if cleared != removals {
		// Only possible when the input board had fewer filled cells than
		// the requested removal count.
		return nil, fmt.Errorf("%w: cleared %d of %d", ErrInvalidRemovals, cleared, removals)
	}
	return puzzle, nil
}
