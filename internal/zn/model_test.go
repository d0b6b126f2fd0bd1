package zn

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"
)

// scriptSource replays a fixed draw sequence and fails the test when the
// engine consumes draws it should not.
type scriptSource struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *scriptSource) IntN(n int) int {
	s.t.Helper()
	if len(s.ints) == 0 {
		s.t.Fatal("script ran out of int draws")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted int draw %d out of range [0, %d)", v, n)
	}
	return v
}

func (s *scriptSource) Float64() float64 {
	s.t.Helper()
	if len(s.floats) == 0 {
		s.t.Fatal("script ran out of float draws: acceptance draw taken for a downhill move")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{"zero size", Params{Size: 0, States: 2, Temp: 1}, ErrInvalidConfig},
		{"negative size", Params{Size: -3, States: 2, Temp: 1}, ErrInvalidConfig},
		{"one state", Params{Size: 4, States: 1, Temp: 1}, ErrInvalidConfig},
		{"too many states", Params{Size: 4, States: 257, Temp: 1}, ErrInvalidConfig},
		{"zero temperature", Params{Size: 4, States: 2, Temp: 0}, ErrInvalidTemperature},
		{"negative temperature", Params{Size: 4, States: 2, Temp: -1}, ErrInvalidTemperature},
		{"nan temperature", Params{Size: 4, States: 2, Temp: math.NaN()}, ErrInvalidTemperature},
		{"valid", Params{Size: 4, States: 2, Temp: 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.params)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("New() error = %v, want nil", err)
				}
				if m == nil {
					t.Fatal("New() returned nil model without error")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
			if m != nil {
				t.Error("New() should not return a model on error")
			}
		})
	}
}

func TestNewStartsConsistent(t *testing.T) {
	m, err := New(Params{Size: 12, States: 4, Field: 0.3, Temp: 2, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.Energy(), m.TotalEnergy(); got != want {
		t.Errorf("initial energy %g, recomputation %g", got, want)
	}
	if got, want := m.Magnetization(), m.TotalMagnetization(); got != want {
		t.Errorf("initial magnetization %d, recomputation %d", got, want)
	}
}

func TestCheckerboardReference(t *testing.T) {
	m, err := New(Params{Size: 2, States: 2, Temp: 1})
	if err != nil {
		t.Fatal(err)
	}
	lat := m.Lattice()
	lat.Set(0, 0, 0)
	lat.Set(1, 0, 1)
	lat.Set(0, 1, 1)
	lat.Set(1, 1, 0)

	// Every neighbor pair is anti-aligned, so no pair contributes and the
	// field is off: both totals are exactly zero.
	if got := m.TotalEnergy(); got != 0 {
		t.Errorf("checkerboard TotalEnergy() = %g, want 0", got)
	}
	if got := m.TotalMagnetization(); got != 0 {
		t.Errorf("checkerboard TotalMagnetization() = %d, want 0", got)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := m.SiteEnergy(x, y); got != 0 {
				t.Errorf("SiteEnergy(%d, %d) = %g, want 0", x, y, got)
			}
		}
	}
}

func TestAlignedLattice(t *testing.T) {
	m, err := New(Params{Size: 3, States: 3, Field: 0.5, Temp: 1})
	if err != nil {
		t.Fatal(err)
	}
	for i := range m.Lattice().Cells() {
		m.Lattice().Cells()[i] = 2
	}

	// Nine sites with four matching neighbors each: pair sum -36, halved;
	// state 2 takes the +H field branch at every site.
	if got, want := m.TotalEnergy(), -18.0+9*0.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("aligned TotalEnergy() = %g, want %g", got, want)
	}
	if got := m.TotalMagnetization(); got != -9 {
		t.Errorf("aligned TotalMagnetization() = %d, want -9", got)
	}
	if got := m.SiteEnergy(1, 1); got != -4+0.5 {
		t.Errorf("aligned SiteEnergy(1, 1) = %g, want %g", got, -4+0.5)
	}
}

func TestSelfNeighborsSingleSite(t *testing.T) {
	// L=1: each site is its own neighbor in all four directions.
	m, err := New(Params{Size: 1, States: 2, Field: 0.25, Temp: 1})
	if err != nil {
		t.Fatal(err)
	}
	m.Lattice().Set(0, 0, 1)
	if got := m.SiteEnergy(0, 0); got != -4-0.25 {
		t.Errorf("SiteEnergy(0, 0) = %g, want %g", got, -4-0.25)
	}
	if got := m.TotalEnergy(); got != -2-0.25 {
		t.Errorf("TotalEnergy() = %g, want %g", got, -2-0.25)
	}
}

func TestSweepAcceptsDownhillWithoutDraw(t *testing.T) {
	// L=1, H=0: flipping the only cell keeps dE at 0, so the move is
	// accepted and no acceptance draw may be consumed (empty float script).
	src := &scriptSource{t: t, ints: []int{0 /* fill */, 0, 0, 0 /* trial */}}
	m, err := NewWithSource(Params{Size: 1, States: 2, Temp: 1}, src)
	if err != nil {
		t.Fatal(err)
	}
	m.Sweep()

	if got := m.Lattice().At(0, 0); got != 1 {
		t.Errorf("cell = %d, want 1", got)
	}
	if got := m.Energy(); got != -2 {
		t.Errorf("energy = %g, want -2", got)
	}
	if got := m.Magnetization(); got != 1 {
		t.Errorf("magnetization = %d, want 1", got)
	}
	if m.Accepted() != 1 || m.Trials() != 1 {
		t.Errorf("accepted/trials = %d/%d, want 1/1", m.Accepted(), m.Trials())
	}
	if err := m.Verify(1e-12); err != nil {
		t.Errorf("Verify() = %v", err)
	}
}

func TestSweepRejectionRestoresState(t *testing.T) {
	// L=1, H=1, cell in state 1: the flip raises the energy by 2H and the
	// scripted acceptance draw 0.5 >= exp(-2) forces a rejection.
	src := &scriptSource{t: t, ints: []int{1, 0, 0, 0}, floats: []float64{0.5}}
	m, err := NewWithSource(Params{Size: 1, States: 2, Field: 1, Temp: 1}, src)
	if err != nil {
		t.Fatal(err)
	}
	m.Sweep()

	if got := m.Lattice().At(0, 0); got != 1 {
		t.Errorf("cell = %d, want 1 (restored)", got)
	}
	if got := m.Energy(); got != -3 {
		t.Errorf("energy = %g, want -3 (unchanged)", got)
	}
	if got := m.Magnetization(); got != 1 {
		t.Errorf("magnetization = %d, want 1 (unchanged)", got)
	}
	if m.Accepted() != 0 || m.Trials() != 1 {
		t.Errorf("accepted/trials = %d/%d, want 0/1", m.Accepted(), m.Trials())
	}
	if err := m.Verify(1e-12); err != nil {
		t.Errorf("Verify() = %v", err)
	}
}

func TestSweepAcceptsUphillOnSmallDraw(t *testing.T) {
	// Same uphill move, but 0.01 < exp(-2) admits it.
	src := &scriptSource{t: t, ints: []int{1, 0, 0, 0}, floats: []float64{0.01}}
	m, err := NewWithSource(Params{Size: 1, States: 2, Field: 1, Temp: 1}, src)
	if err != nil {
		t.Fatal(err)
	}
	m.Sweep()

	if got := m.Lattice().At(0, 0); got != 0 {
		t.Errorf("cell = %d, want 0", got)
	}
	if got := m.Energy(); got != -1 {
		t.Errorf("energy = %g, want -1", got)
	}
	if got := m.Magnetization(); got != -1 {
		t.Errorf("magnetization = %d, want -1", got)
	}
	if m.Accepted() != 1 {
		t.Errorf("accepted = %d, want 1", m.Accepted())
	}
	if err := m.Verify(1e-12); err != nil {
		t.Errorf("Verify() = %v", err)
	}
}

func TestSweepDrawOrder(t *testing.T) {
	// L=3, n=5, all cells state 0. The first trial draws x=2, y=1, then a
	// shift draw of 2 (shift 3), accepted at T=100 with u=0.5. The eight
	// remaining trials hammer (0, 0) with u=0.99 and are all rejected.
	// Only cell (2, 1) may change; a swapped x/y would move (1, 2) instead.
	ints := make([]int, 0, 36)
	for i := 0; i < 9; i++ {
		ints = append(ints, 0) // fill
	}
	ints = append(ints, 2, 1, 2)
	floats := []float64{0.5}
	for i := 0; i < 8; i++ {
		ints = append(ints, 0, 0, 0)
		floats = append(floats, 0.99)
	}
	src := &scriptSource{t: t, ints: ints, floats: floats}
	m, err := NewWithSource(Params{Size: 3, States: 5, Temp: 100}, src)
	if err != nil {
		t.Fatal(err)
	}
	m.Sweep()

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := uint8(0)
			if x == 2 && y == 1 {
				want = 3
			}
			if got := m.Lattice().At(x, y); got != want {
				t.Errorf("cell (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if got := m.Energy(); got != -14 {
		t.Errorf("energy = %g, want -14", got)
	}
	if got := m.Magnetization(); got != -9 {
		t.Errorf("magnetization = %d, want -9", got)
	}
	if err := m.Verify(1e-12); err != nil {
		t.Errorf("Verify() = %v", err)
	}
}

func TestSweepStaysConsistentWithField(t *testing.T) {
	m, err := New(Params{Size: 16, States: 4, Field: 0.7, Temp: 1.5, Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 30; i++ {
		m.Sweep()
		if err := m.Verify(1e-8); err != nil {
			t.Fatalf("sweep %d: %v", i+1, err)
		}
	}
}

func TestZeroTemperatureLimitIsGreedy(t *testing.T) {
	m, err := New(Params{Size: 8, States: 3, Temp: 2, Seed: 99})
	if err != nil {
		t.Fatal(err)
	}
	// Tiny positive T underflows the acceptance exponential: every uphill
	// move rejects and the energy can never rise.
	if err := m.SetTemperature(1e-9); err != nil {
		t.Fatal(err)
	}
	prev := m.Energy()
	for i := 0; i < 20; i++ {
		m.Sweep()
		if m.Energy() > prev {
			t.Fatalf("sweep %d raised energy %g -> %g at near-zero T", i+1, prev, m.Energy())
		}
		prev = m.Energy()
	}
}

func TestEqualSeedsReplayTrajectories(t *testing.T) {
	p := Params{Size: 10, States: 6, Field: 0.2, Temp: 1.2, Seed: 7}
	a, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		a.Sweep()
		b.Sweep()
	}
	if a.Energy() != b.Energy() {
		t.Errorf("energies diverged: %g vs %g", a.Energy(), b.Energy())
	}
	if !slices.Equal(a.Lattice().Cells(), b.Lattice().Cells()) {
		t.Error("lattices diverged under equal seeds")
	}
}

func TestSetTemperatureRejectsInvalid(t *testing.T) {
	m, err := New(Params{Size: 4, States: 2, Temp: 2.5})
	if err != nil {
		t.Fatal(err)
	}
	for _, bad := range []float64{0, -1, math.NaN()} {
		if err := m.SetTemperature(bad); !errors.Is(err, ErrInvalidTemperature) {
			t.Errorf("SetTemperature(%g) error = %v, want ErrInvalidTemperature", bad, err)
		}
		if m.Temperature() != 2.5 {
			t.Errorf("temperature changed to %g after rejected set", m.Temperature())
		}
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	m, err := New(Params{Size: 4, States: 2, Temp: 1, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	// Writing through the exposed lattice bypasses the bookkeeping; the
	// magnetization recomputation must notice the stray flip.
	m.Lattice().Set(0, 0, 1-m.Lattice().At(0, 0))

	verr := m.Verify(1e-9)
	if verr == nil {
		t.Fatal("Verify() accepted a corrupted lattice")
	}
	if !errors.Is(verr, ErrConsistency) {
		t.Errorf("Verify() error = %v, want ErrConsistency", verr)
	}
	var ce *ConsistencyError
	if !errors.As(verr, &ce) {
		t.Fatalf("Verify() error type = %T, want *ConsistencyError", verr)
	}
	if ce.Quantity != "energy" && ce.Quantity != "magnetization" {
		t.Errorf("ConsistencyError.Quantity = %q", ce.Quantity)
	}
}

func BenchmarkSweep(b *testing.B) {
	for _, size := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("L%d", size), func(b *testing.B) {
			m, err := New(Params{Size: size, States: 4, Temp: 2, Seed: 1})
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Sweep()
			}
		})
	}
}
