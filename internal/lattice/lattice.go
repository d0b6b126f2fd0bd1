// Package lattice provides the square periodic grid the spin models live on.
package lattice

// Source yields uniform integer draws. *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Lattice is an L by L grid of byte-valued cells with periodic boundaries.
// Cells are stored row-major; (x, y) addresses column x of row y.
type Lattice struct {
	size  int
	cells []uint8
}

// New returns a zeroed lattice with side size.
func New(size int) *Lattice {
	return &Lattice{size: size, cells: make([]uint8, size*size)}
}

// Size returns the side length.
func (l *Lattice) Size() int { return l.size }

// Sites returns the total cell count.
func (l *Lattice) Sites() int { return l.size * l.size }

// Index returns the row-major offset of (x, y). Coordinates must already be
// in range.
func (l *Lattice) Index(x, y int) int { return y*l.size + x }

// Wrap maps arbitrary coordinates onto the torus. Negative values wrap
// correctly.
func (l *Lattice) Wrap(x, y int) (int, int) {
	return ((x % l.size) + l.size) % l.size, ((y % l.size) + l.size) % l.size
}

// At returns the cell at (x, y). Coordinates must be in range; use Wrap
// first when they may not be.
func (l *Lattice) At(x, y int) uint8 { return l.cells[y*l.size+x] }

// Set writes the cell at (x, y).
func (l *Lattice) Set(x, y int, v uint8) { l.cells[y*l.size+x] = v }

// Cells exposes the backing slice. Callers must treat it as read-only.
func (l *Lattice) Cells() []uint8 { return l.cells }

// Randomize fills every cell with an independent uniform draw from
// [0, states).
func (l *Lattice) Randomize(states int, src Source) {
	for i := range l.cells {
		l.cells[i] = uint8(src.IntN(states))
	}
}

// Clone returns a deep copy.
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{size: l.size, cells: make([]uint8, len(l.cells))}
	copy(c.cells, l.cells)
	return c
}
