// Package board implements the 9×9 digit board used by the grid-fill and
// cage-partition generators. Cells are addressed by linear position
// (row*9 + col); placed digits are tracked per row, column, and 3×3 box
// with bitmasks so legality checks are O(1).
package board

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
	Size        = 9
	CellCount   = 81
)

// allNine has bits 0-8 set, one per digit.
const allNine = 511

// Board is a 9×9 Sudoku grid with incremental constraint bookkeeping.
type Board struct {
	cells [CellCount]int

	// Bit i of each mask represents digit i+1.
	rowMasks [Size]uint
	colMasks [Size]uint
	boxMasks [Size]uint

	emptyCount int
}

// New returns an empty board.
func New() *Board {
	return &Board{emptyCount: CellCount}
}

// NewFromString builds a board from an 81-character string using '.' or
// '0' for empty cells and '1'-'9' for digits.
func NewFromString(s string) (*Board, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("board: string must be exactly %d characters, got %d", CellCount, len(s))
	}
	b := New()
	for pos := range CellCount {
		ch := s[pos]
		switch {
		case ch == '.' || ch == '0':
			// already empty
		case ch >= '1' && ch <= '9':
			if err := b.Set(pos, int(ch-'0')); err != nil {
				return nil, fmt.Errorf("board: invalid grid at position %d: %w", pos, err)
			}
		default:
			return nil, fmt.Errorf("board: invalid character %q at position %d", ch, pos)
		}
	}
	return b, nil
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Set places a digit 1-9 at pos, rejecting moves that repeat the digit in
// the cell's row, column, or box.
func (b *Board) Set(pos, val int) error {
	if err := validatePosition(pos); err != nil {
		return err
	}
	if err := validateValue(val); err != nil {
		return err
	}
	if val == EmptyCell {
		return b.Clear(pos)
	}
	if b.cells[pos] != EmptyCell {
		b.Clear(pos)
	}

	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	if b.rowMasks[row]&mask != 0 {
		return fmt.Errorf("%w: digit %d already in row %d", ErrIllegalMove, val, row)
	}
	if b.colMasks[col]&mask != 0 {
		return fmt.Errorf("%w: digit %d already in column %d", ErrIllegalMove, val, col)
	}
	if b.boxMasks[box]&mask != 0 {
		return fmt.Errorf("%w: digit %d already in box %d", ErrIllegalMove, val, box)
	}

	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--
	return nil
}

// SetForce places a digit without legality checks. Use only when the move
// is already known to be valid.
func (b *Board) SetForce(pos, val int) {
	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--
}

// Clear empties the cell at pos. Clearing an already empty cell is a
// no-op.
func (b *Board) Clear(pos int) error {
	if err := validatePosition(pos); err != nil {
		return err
	}
	val := b.cells[pos]
	if val == EmptyCell {
		return nil
	}

	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = EmptyCell
	b.rowMasks[row] &^= mask
	b.colMasks[col] &^= mask
	b.boxMasks[box] &^= mask
	b.emptyCount++
	return nil
}

// Get returns the digit at pos, or InvalidCell when pos is out of bounds.
func (b *Board) Get(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return b.cells[pos]
}

// GetCandidatesMask returns the bitmask of digits still legal at pos.
// A result of 0 means the board is unsolvable from here (or pos is
// invalid).
func (b *Board) GetCandidatesMask(pos int) uint {
	if !isValidPosition(pos) {
		return 0
	}
	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	return allNine &^ b.rowMasks[row] &^ b.colMasks[col] &^ b.boxMasks[box]
}

// GetCandidates returns the digits still legal at pos in ascending order.
func (b *Board) GetCandidates(pos int) []int {
	mask := b.GetCandidatesMask(pos)
	candidates := make([]int, 0, Size)
	for d := 1; d <= Size; d++ {
		if mask&uint(1<<(d-1)) != 0 {
			candidates = append(candidates, d)
		}
	}
	return candidates
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return b.emptyCount
}

// ClueCount returns the number of filled cells.
func (b *Board) ClueCount() int {
	return CellCount - b.emptyCount
}

// String returns the board as an 81-character string with '.' for empty
// cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for _, cell := range b.cells {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}
	return sb.String()
}

// Format returns a human-readable rendering with box separators.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)
	for row := range Size {
		sb.WriteString("| ")
		for col := range Size {
			val := b.Get(MakePos(row, col))
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')
			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")
		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// MakePos converts a row and column to a linear position, or InvalidCell
// when either is out of range.
func MakePos(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return InvalidCell
	}
	return Size*row + col
}

// Row returns the row of a linear position.
func Row(pos int) int { return pos / Size }

// Col returns the column of a linear position.
func Col(pos int) int { return pos % Size }

// Precomputed position lookups.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
	posToBox [CellCount]int
)

func init() {
	for pos := range CellCount {
		posToRow[pos] = pos / Size
		posToCol[pos] = pos % Size
		posToBox[pos] = 3*(pos/27) + (pos%Size)/3
	}
}
