package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value must be between 1-9")
	ErrIllegalMove     = errors.New("move violates Sudoku constraints")
)

// IsValid reports whether the board satisfies row/column/box uniqueness.
// Empty cells are ignored.
func (b *Board) IsValid() bool {
	var rowCheck, colCheck, boxCheck [Size]uint

	for pos := range CellCount {
		val := b.Get(pos)
		if val == EmptyCell {
			continue
		}

		row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
		mask := uint(1 << (val - 1))

		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}
	return true
}

// IsComplete reports whether every cell is filled and the board is valid.
func (b *Board) IsComplete() bool {
	return b.emptyCount == 0 && b.IsValid()
}

func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}

func validatePosition(pos int) error {
	if !isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, CellCount)
	}
	return nil
}

func isValidValue(val int) bool {
	return (val >= 1 && val <= Size) || val == EmptyCell
}

func validateValue(val int) error {
	if !isValidValue(val) {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, val)
	}
	return nil
}
