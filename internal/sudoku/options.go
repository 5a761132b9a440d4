package sudoku

// Removal-count bounds. Removing more than 64 cells leaves fewer than 17
// clues, below the minimum for any uniquely solvable classic puzzle.
const (
	MinRemovals     = 0
	MaxRemovals     = 81
	DefaultRemovals = 40
)

// Options configures puzzle generation behavior.
type Options struct {
	// Removals is how many cells to clear from the solved grid.
	Removals int
	// Seed drives the random source (0 = derive from the clock).
	Seed int64
	// MaxFillSteps bounds the backtracking search defensively. 0 means
	// the package default.
	MaxFillSteps int
}

// DefaultOptions returns standard generator options with the removal
// count clamped to the valid range.
func DefaultOptions(removals int) *Options {
	removals = min(max(removals, MinRemovals), MaxRemovals)
	return &Options{
		Removals:     removals,
		Seed:         0,
		MaxFillSteps: defaultMaxFillSteps,
	}
}
