// Package zn implements Metropolis Monte Carlo dynamics for the
// two-dimensional Zn clock model on a periodic lattice.
//
// Each cell of an L by L torus holds one of n discrete states. The package
// defines the energy model and the single-site update rule:
//
//   - [Params]: lattice side, state count, external field, temperature, seed
//   - [Model]: owns the lattice plus incrementally tracked energy and
//     magnetization
//   - [Source]: the uniform draw stream a sweep consumes
//
// A site's energy counts -1 for every one of its four toroidal neighbors in
// the same state, plus a field term -H when the site is in state 1 and +H
// otherwise. One [Model.Sweep] performs L*L single-site trials: a uniformly
// chosen site is offered a uniformly chosen nonzero state shift, accepted
// outright when it does not raise the energy and with probability
// exp(-dE/T) otherwise.
//
// # Example
//
//	m, _ := zn.New(zn.Params{Size: 50, States: 2, Temp: 5.0, Seed: 1})
//	for _, t := range sched {
//		m.SetTemperature(t)
//		m.Sweep()
//	}
//
// # Thread Safety
//
// Model instances are NOT thread-safe. A single goroutine must own the
// model; the lattice may be inspected between sweeps. For concurrent
// replicas, give each its own Model.
package zn
