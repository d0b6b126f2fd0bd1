// Package observe collects per-sweep observables and derives the
// variance-based response functions.
package observe

import "gonum.org/v1/gonum/stat"

// Accumulator records one energy/magnetization sample per sweep and derives
// specific heat and susceptibility from the population variance of the full
// history. Histories are append-only; the derived series start one sweep
// later than the primaries because a variance needs two samples, and until
// then the responses are undefined rather than zero.
type Accumulator struct {
	sites float64

	temps    []float64
	energies []float64
	mags     []float64

	heats []float64
	suscs []float64
}

// NewAccumulator sizes the intensive divisors for a lattice of sites cells.
func NewAccumulator(sites int) *Accumulator {
	return &Accumulator{sites: float64(sites)}
}

// Observe appends one sweep's temperature, energy and magnetization. From
// the second sample on it also appends specific heat Var(E)/(sites*T*T) and
// susceptibility Var(M)/(sites*T), computed over the entire history at the
// temperature just observed.
func (a *Accumulator) Observe(temp, energy float64, mag int) {
	a.temps = append(a.temps, temp)
	a.energies = append(a.energies, energy)
	a.mags = append(a.mags, float64(mag))
	if len(a.energies) < 2 {
		return
	}
	a.heats = append(a.heats, stat.PopVariance(a.energies, nil)/(a.sites*temp*temp))
	a.suscs = append(a.suscs, stat.PopVariance(a.mags, nil)/(a.sites*temp))
}

// Passes returns the number of sweeps observed.
func (a *Accumulator) Passes() int { return len(a.energies) }

// Temperatures returns the live temperature history. Callers must not
// modify it; the same holds for every history accessor below.
func (a *Accumulator) Temperatures() []float64 { return a.temps }

// Energies returns the energy history.
func (a *Accumulator) Energies() []float64 { return a.energies }

// Magnetizations returns the magnetization history. Values are integral
// but held as float64 for the variance computation.
func (a *Accumulator) Magnetizations() []float64 { return a.mags }

// SpecificHeats returns the derived specific-heat series.
func (a *Accumulator) SpecificHeats() []float64 { return a.heats }

// Susceptibilities returns the derived susceptibility series.
func (a *Accumulator) Susceptibilities() []float64 { return a.suscs }

// SpecificHeat returns the latest specific heat. ok is false until two
// sweeps have been observed.
func (a *Accumulator) SpecificHeat() (v float64, ok bool) {
	if len(a.heats) == 0 {
		return 0, false
	}
	return a.heats[len(a.heats)-1], true
}

// Susceptibility returns the latest susceptibility. ok is false until two
// sweeps have been observed.
func (a *Accumulator) Susceptibility() (v float64, ok bool) {
	if len(a.suscs) == 0 {
		return 0, false
	}
	return a.suscs[len(a.suscs)-1], true
}
