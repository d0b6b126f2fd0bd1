// Package anneal drives a clock model through a temperature schedule.
package anneal

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/spinlab/internal/lattice"
	"github.com/san-kum/spinlab/internal/observe"
	"github.com/san-kum/spinlab/internal/schedule"
	"github.com/san-kum/spinlab/internal/zn"
)

// Pass describes one completed sweep. Lattice is the live grid; observers
// may read it until OnPass returns and must never write it.
type Pass struct {
	Index         int // 0-based sweep index
	Temperature   float64
	Energy        float64
	Magnetization int
	AcceptRatio   float64
	Lattice       *lattice.Lattice
}

// Observer receives a notification after every sweep.
type Observer interface {
	OnPass(p Pass)
}

// Config tunes a run.
type Config struct {
	// VerifyEvery recomputes energy and magnetization every k sweeps and
	// aborts the run on divergence. Zero disables the periodic checks; the
	// final state is always verified.
	VerifyEvery int
	// VerifyTol is the recomputation tolerance. Zero means 1e-6.
	VerifyTol float64
}

// Runner owns a model and an accumulator for the duration of a run.
type Runner struct {
	model     *zn.Model
	acc       *observe.Accumulator
	cfg       Config
	observers []Observer
	logger    *log.Logger
}

// New builds a runner. A nil logger discards log output.
func New(m *zn.Model, acc *observe.Accumulator, cfg Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.VerifyTol == 0 {
		cfg.VerifyTol = 1e-6
	}
	return &Runner{model: m, acc: acc, cfg: cfg, logger: logger}
}

// AddObserver registers o for per-sweep notifications.
func (r *Runner) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

// Result summarizes a completed (or canceled) run.
type Result struct {
	Temperatures     []float64
	Energies         []float64
	Magnetizations   []float64
	SpecificHeats    []float64
	Susceptibilities []float64
	Final            *lattice.Lattice
	Sweeps           int
	AcceptRatio      float64
	Elapsed          time.Duration
}

// Run sweeps the model once per schedule temperature, recording observables
// after each sweep. Cancellation returns the partial result alongside
// ctx.Err(); a failed consistency check aborts with a nil result because
// the collected series can no longer be trusted.
func (r *Runner) Run(ctx context.Context, sched schedule.Schedule) (*Result, error) {
	if err := sched.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	r.logger.Info("run started",
		"size", r.model.Size(),
		"states", r.model.States(),
		"field", r.model.Field(),
		"sweeps", len(sched))

	for i, t := range sched {
		select {
		case <-ctx.Done():
			r.logger.Warn("run canceled", "sweep", i, "of", len(sched))
			return r.snapshot(start), ctx.Err()
		default:
		}
		if err := r.model.SetTemperature(t); err != nil {
			return nil, err
		}
		r.model.Sweep()
		r.acc.Observe(t, r.model.Energy(), r.model.Magnetization())

		if len(r.observers) > 0 {
			p := Pass{
				Index:         i,
				Temperature:   t,
				Energy:        r.model.Energy(),
				Magnetization: r.model.Magnetization(),
				AcceptRatio:   r.model.AcceptRatio(),
				Lattice:       r.model.Lattice(),
			}
			for _, o := range r.observers {
				o.OnPass(p)
			}
		}
		if r.cfg.VerifyEvery > 0 && (i+1)%r.cfg.VerifyEvery == 0 {
			if err := r.model.Verify(r.cfg.VerifyTol); err != nil {
				return nil, err
			}
		}
		r.logger.Debug("sweep done",
			"pass", i+1, "temp", t, "energy", r.model.Energy(), "mag", r.model.Magnetization())
	}
	if err := r.model.Verify(r.cfg.VerifyTol); err != nil {
		return nil, err
	}

	res := r.snapshot(start)
	r.logger.Info("run finished",
		"sweeps", res.Sweeps,
		"energy", r.model.Energy(),
		"accept", res.AcceptRatio,
		"elapsed", res.Elapsed)
	return res, nil
}

func (r *Runner) snapshot(start time.Time) *Result {
	return &Result{
		Temperatures:     append([]float64(nil), r.acc.Temperatures()...),
		Energies:         append([]float64(nil), r.acc.Energies()...),
		Magnetizations:   append([]float64(nil), r.acc.Magnetizations()...),
		SpecificHeats:    append([]float64(nil), r.acc.SpecificHeats()...),
		Susceptibilities: append([]float64(nil), r.acc.Susceptibilities()...),
		Final:            r.model.Snapshot(),
		Sweeps:           r.acc.Passes(),
		AcceptRatio:      r.model.AcceptRatio(),
		Elapsed:          time.Since(start),
	}
}
