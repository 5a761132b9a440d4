package board

import (
	"errors"
	"testing"
)

func TestSetAndClear(t *testing.T) {
	b := New()
	if b.EmptyCount() != CellCount {
		t.Fatalf("new board has %d empty cells, want %d", b.EmptyCount(), CellCount)
	}

	pos := MakePos(4, 4)
	if err := b.Set(pos, 5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := b.Get(pos); got != 5 {
		t.Fatalf("Get = %d, want 5", got)
	}
	if b.EmptyCount() != CellCount-1 {
		t.Fatalf("EmptyCount = %d, want %d", b.EmptyCount(), CellCount-1)
	}

	if err := b.Clear(pos); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := b.Get(pos); got != EmptyCell {
		t.Fatalf("Get after Clear = %d, want empty", got)
	}
}

func TestSetRejectsConflicts(t *testing.T) {
	cases := []struct {
		name string
		pos  int
	}{
		{"same row", MakePos(0, 8)},
		{"same column", MakePos(8, 0)},
		{"same box", MakePos(1, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			if err := b.Set(MakePos(0, 0), 7); err != nil {
				t.Fatalf("initial Set failed: %v", err)
			}
			err := b.Set(tc.pos, 7)
			if !errors.Is(err, ErrIllegalMove) {
				t.Fatalf("Set = %v, want ErrIllegalMove", err)
			}
		})
	}
}

func TestSetValidation(t *testing.T) {
	b := New()
	if err := b.Set(-1, 5); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("Set(-1) = %v, want ErrInvalidPosition", err)
	}
	if err := b.Set(0, 10); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Set(val=10) = %v, want ErrInvalidValue", err)
	}
}

func TestCandidatesShrink(t *testing.T) {
	b := New()
	pos := MakePos(4, 4)
	if got := len(b.GetCandidates(pos)); got != 9 {
		t.Fatalf("empty board candidates = %d, want 9", got)
	}
	b.SetForce(MakePos(4, 0), 1) // row
	b.SetForce(MakePos(0, 4), 2) // column
	b.SetForce(MakePos(3, 3), 3) // box
	got := b.GetCandidates(pos)
	if len(got) != 6 {
		t.Fatalf("candidates = %v, want 6 values", got)
	}
	for _, v := range got {
		if v <= 3 {
			t.Fatalf("candidates %v should exclude 1-3", got)
		}
	}
}

func TestNewFromStringRoundTrip(t *testing.T) {
	s := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	b, err := NewFromString(s)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	if b.String() != s {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", b.String(), s)
	}
	if !b.IsValid() {
		t.Fatal("known-good puzzle reported invalid")
	}
}

func TestNewFromStringRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		s    string
	}{
		{"too short", "123"},
		{"bad character", "x" + string(make([]byte, 80))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewFromString(tc.s); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	b.SetForce(0, 1)
	clone := b.Clone()
	clone.SetForce(1, 2)
	if b.Get(1) != EmptyCell {
		t.Fatal("mutating clone changed the original")
	}
	if clone.Get(0) != 1 {
		t.Fatal("clone lost original cell")
	}
}
