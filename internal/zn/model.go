package zn

import (
	"fmt"
	"math"

	"github.com/san-kum/spinlab/internal/lattice"
)

// MaxStates bounds the state count. Cells are stored as bytes and the
// renderers index 256-entry palettes.
const MaxStates = 256

// Params configures a model.
type Params struct {
	Size   int     // lattice side L
	States int     // clock state count n
	Field  float64 // external field H, coupling to state 1
	Temp   float64 // initial temperature
	Seed   uint64  // draw source seed
}

func (p Params) validate() error {
	if p.Size < 1 {
		return fmt.Errorf("%w: size %d, want >= 1", ErrInvalidConfig, p.Size)
	}
	if p.States < 2 || p.States > MaxStates {
		return fmt.Errorf("%w: states %d, want 2..%d", ErrInvalidConfig, p.States, MaxStates)
	}
	if math.IsNaN(p.Temp) || p.Temp <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidTemperature, p.Temp)
	}
	return nil
}

var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Model is a Zn clock system with Metropolis dynamics. The zero value is
// not usable; construct with New or NewWithSource.
type Model struct {
	lat    *lattice.Lattice
	states int
	field  float64
	temp   float64

	energy float64
	mag    int

	src      Source
	trials   uint64
	accepted uint64
}

// New builds a model with a uniformly random lattice, drawing from the
// default PCG source seeded by p.Seed. The tracked energy and magnetization
// start from a full recomputation.
func New(p Params) (*Model, error) {
	return NewWithSource(p, NewSource(p.Seed))
}

// NewWithSource is New with a caller-supplied draw source.
func NewWithSource(p Params, src Source) (*Model, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	m := &Model{
		lat:    lattice.New(p.Size),
		states: p.States,
		field:  p.Field,
		temp:   p.Temp,
		src:    src,
	}
	m.lat.Randomize(p.States, src)
	m.energy = m.TotalEnergy()
	m.mag = m.TotalMagnetization()
	return m, nil
}

// Size returns the lattice side length.
func (m *Model) Size() int { return m.lat.Size() }

// Sites returns the total cell count.
func (m *Model) Sites() int { return m.lat.Sites() }

// States returns the clock state count.
func (m *Model) States() int { return m.states }

// Field returns the external field strength.
func (m *Model) Field() float64 { return m.field }

// Temperature returns the current temperature.
func (m *Model) Temperature() float64 { return m.temp }

// SetTemperature sets the temperature for subsequent sweeps. Non-positive
// or NaN values return ErrInvalidTemperature and leave the model unchanged.
// For the T -> 0 limit pass a tiny positive value: the acceptance
// exponential underflows and only moves with dE <= 0 survive.
func (m *Model) SetTemperature(t float64) error {
	if math.IsNaN(t) || t <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidTemperature, t)
	}
	m.temp = t
	return nil
}

// Energy returns the tracked lattice energy.
func (m *Model) Energy() float64 { return m.energy }

// Magnetization returns the tracked magnetization.
func (m *Model) Magnetization() int { return m.mag }

// Lattice exposes the live lattice. Read it between sweeps only; writing
// through it invalidates the tracked energy and magnetization.
func (m *Model) Lattice() *lattice.Lattice { return m.lat }

// Snapshot returns a deep copy of the lattice.
func (m *Model) Snapshot() *lattice.Lattice { return m.lat.Clone() }

// Trials returns the count of all trials since construction.
func (m *Model) Trials() uint64 { return m.trials }

// Accepted returns the count of accepted moves since construction.
func (m *Model) Accepted() uint64 { return m.accepted }

// AcceptRatio returns Accepted over Trials, 0 before any trial.
func (m *Model) AcceptRatio() float64 {
	if m.trials == 0 {
		return 0
	}
	return float64(m.accepted) / float64(m.trials)
}

// Contribution is the magnetization contribution of state s: +1 for state
// 1, -1 for every other state.
func Contribution(s uint8) int {
	if s == 1 {
		return 1
	}
	return -1
}

func (m *Model) interaction(x, y int, s uint8) float64 {
	same := 0
	for _, d := range neighborOffsets {
		nx, ny := m.lat.Wrap(x+d[0], y+d[1])
		if m.lat.At(nx, ny) == s {
			same++
		}
	}
	return float64(-same)
}

func (m *Model) fieldTerm(s uint8) float64 {
	if s == 1 {
		return -m.field
	}
	return m.field
}

// SiteEnergy returns the local energy of the cell at (x, y): -1 for each of
// the four toroidal neighbors sharing its state, plus the field term.
// Out-of-range coordinates wrap.
func (m *Model) SiteEnergy(x, y int) float64 {
	x, y = m.lat.Wrap(x, y)
	s := m.lat.At(x, y)
	return m.interaction(x, y, s) + m.fieldTerm(s)
}

// TotalEnergy recomputes the lattice energy from scratch. The pairwise sum
// visits every bond from both endpoints, so it is halved; the field sum is
// counted once per site, which keeps this recomputation equal to the
// tracked energy for any field strength.
func (m *Model) TotalEnergy() float64 {
	size := m.lat.Size()
	var pair, field float64
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			s := m.lat.At(x, y)
			pair += m.interaction(x, y, s)
			field += m.fieldTerm(s)
		}
	}
	return pair/2 + field
}

// TotalMagnetization recomputes the magnetization from scratch.
func (m *Model) TotalMagnetization() int {
	total := 0
	for _, s := range m.lat.Cells() {
		total += Contribution(s)
	}
	return total
}

// Sweep runs one Metropolis pass: Size*Size single-site trials with
// replacement. Each trial consumes draws in a fixed order (site x, site y,
// state shift), plus one acceptance draw taken only when the move raises
// the energy, so equal seeds replay identical trajectories.
func (m *Model) Sweep() {
	size := m.lat.Size()
	for i := 0; i < size*size; i++ {
		x := m.src.IntN(size)
		y := m.src.IntN(size)
		old := m.lat.At(x, y)
		shift := 1 + m.src.IntN(m.states-1)
		next := uint8((int(old) + shift) % m.states)

		before := m.SiteEnergy(x, y)
		m.lat.Set(x, y, next)
		delta := m.SiteEnergy(x, y) - before

		m.trials++
		if delta > 0 && m.src.Float64() >= math.Exp(-delta/m.temp) {
			m.lat.Set(x, y, old)
			continue
		}
		m.accepted++
		m.energy += delta
		m.mag += Contribution(next) - Contribution(old)
	}
}

// Verify recomputes energy and magnetization and compares them with the
// tracked values. A divergence beyond tol returns a *ConsistencyError
// wrapping ErrConsistency.
func (m *Model) Verify(tol float64) error {
	if want := m.TotalEnergy(); math.Abs(want-m.energy) > tol {
		return &ConsistencyError{Quantity: "energy", Got: m.energy, Want: want, Tol: tol}
	}
	if want := m.TotalMagnetization(); want != m.mag {
		return &ConsistencyError{Quantity: "magnetization", Got: float64(m.mag), Want: float64(want), Tol: tol}
	}
	return nil
}
