package lattice

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestWrap(t *testing.T) {
	l := New(3)

	tests := []struct {
		x, y         int
		wantX, wantY int
	}{
		{0, 0, 0, 0},
		{3, 0, 0, 0},
		{-1, 0, 2, 0},
		{0, -1, 0, 2},
		{4, 5, 1, 2},
		{-4, -5, 2, 1},
	}
	for _, tt := range tests {
		gotX, gotY := l.Wrap(tt.x, tt.y)
		if gotX != tt.wantX || gotY != tt.wantY {
			t.Errorf("Wrap(%d, %d) = (%d, %d), want (%d, %d)",
				tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
		}
	}
}

func TestNeighborsOfOrigin(t *testing.T) {
	l := New(3)

	var got [][2]int
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		x, y := l.Wrap(d[0], d[1])
		got = append(got, [2]int{x, y})
	}
	want := [][2]int{{1, 0}, {2, 0}, {0, 1}, {0, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("neighbors of (0,0) = %v, want %v", got, want)
	}
}

func TestIndexRowMajor(t *testing.T) {
	l := New(4)
	if got := l.Index(3, 0); got != 3 {
		t.Errorf("Index(3, 0) = %d, want 3", got)
	}
	if got := l.Index(0, 2); got != 8 {
		t.Errorf("Index(0, 2) = %d, want 8", got)
	}

	l.Set(1, 2, 7)
	if l.Cells()[l.Index(1, 2)] != 7 {
		t.Error("Set did not write the row-major offset At reads")
	}
	if l.At(1, 2) != 7 {
		t.Errorf("At(1, 2) = %d, want 7", l.At(1, 2))
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := New(16)
	b := New(16)
	a.Randomize(5, rand.New(rand.NewPCG(42, 0)))
	b.Randomize(5, rand.New(rand.NewPCG(42, 0)))

	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Error("equal seeds should fill identical lattices")
	}
	for i, v := range a.Cells() {
		if v >= 5 {
			t.Fatalf("cell %d holds %d, want < 5", i, v)
		}
	}
}

func TestCloneIndependent(t *testing.T) {
	l := New(4)
	l.Randomize(3, rand.New(rand.NewPCG(7, 0)))

	c := l.Clone()
	if !slices.Equal(c.Cells(), l.Cells()) {
		t.Fatal("clone should copy cells")
	}
	c.Set(0, 0, (c.At(0, 0)+1)%3)
	if slices.Equal(c.Cells(), l.Cells()) {
		t.Error("mutating a clone must not touch the original")
	}
}
