package core

import (
	"errors"
	"testing"
)

func TestNewBoolGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		if _, err := NewBoolGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewBoolGrid(%d,%d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestFromMatrixRejectsRaggedRows(t *testing.T) {
	_, err := FromMatrix([][]bool{
		{false, true},
		{false},
	})
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("ragged matrix err = %v, want ErrInvalidDimensions", err)
	}

	if _, err := FromMatrix(nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("nil matrix err = %v, want ErrInvalidDimensions", err)
	}
}

func TestFromMatrixCopiesCells(t *testing.T) {
	src := [][]bool{
		{true, false, true},
		{false, true, false},
	}
	g, err := FromMatrix(src)
	if err != nil {
		t.Fatalf("FromMatrix: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dimensions = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	src[0][0] = false
	if got, _ := g.State(0, 0); !got {
		t.Fatal("grid must not alias the source matrix")
	}
	if got := g.CountAlive(); got != 3 {
		t.Fatalf("CountAlive = %d, want 3", got)
	}
}

func TestStateBoundsChecked(t *testing.T) {
	g, err := NewBoolGrid(4, 6)
	if err != nil {
		t.Fatalf("NewBoolGrid: %v", err)
	}
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 6}, {-1, -1}} {
		if _, err := g.State(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("State(%d,%d) err = %v, want ErrOutOfBounds", pos[0], pos[1], err)
		}
	}
	if _, err := g.State(3, 5); err != nil {
		t.Fatalf("State(3,5): %v", err)
	}
}

func TestWrapHandlesNegativesAndOverflow(t *testing.T) {
	g, err := NewBoolGrid(3, 5)
	if err != nil {
		t.Fatalf("NewBoolGrid: %v", err)
	}
	cases := []struct {
		row, col     int
		wantR, wantC int
	}{
		{0, 0, 0, 0},
		{-1, -1, 2, 4},
		{3, 5, 0, 0},
		{4, 6, 1, 1},
		{-4, -6, 2, 4},
		{-7, -11, 2, 4},
	}
	for _, c := range cases {
		r, cc := g.Wrap(c.row, c.col)
		if r != c.wantR || cc != c.wantC {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.row, c.col, r, cc, c.wantR, c.wantC)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := NewBoolGrid(2, 2)
	g.Cells()[3] = true

	c := g.Clone()
	g.Cells()[3] = false
	if !c.Cells()[3] {
		t.Fatal("clone must not share the backing slice")
	}
	if !c.AnyAlive() {
		t.Fatal("clone lost the live cell")
	}
}

func TestMatrixReturnsCopy(t *testing.T) {
	g, _ := NewBoolGrid(2, 3)
	g.Cells()[g.Index(1, 2)] = true

	m := g.Matrix()
	if !m[1][2] {
		t.Fatal("Matrix dropped the live cell")
	}
	m[1][2] = false
	if got, _ := g.State(1, 2); !got {
		t.Fatal("Matrix must not alias grid storage")
	}
}
