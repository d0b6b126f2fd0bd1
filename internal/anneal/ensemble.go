package anneal

import (
	"context"
	"sync"

	"github.com/san-kum/spinlab/internal/observe"
	"github.com/san-kum/spinlab/internal/schedule"
	"github.com/san-kum/spinlab/internal/zn"
)

// Ensemble runs independent replicas of one parameter set over the same
// schedule. Replica i is seeded with Params.Seed + i and owns its own
// model, so no lattice is ever shared between goroutines.
type Ensemble struct {
	Params   zn.Params
	Replicas int
	Config   Config
}

// Run executes the replicas concurrently and returns their results in
// replica order. The first replica error is returned; results of healthy
// replicas are still populated.
func (e *Ensemble) Run(ctx context.Context, sched schedule.Schedule) ([]*Result, error) {
	n := e.Replicas
	if n < 1 {
		n = 1
	}
	results := make([]*Result, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			p := e.Params
			p.Seed += uint64(idx)
			m, err := zn.New(p)
			if err != nil {
				errs[idx] = err
				return
			}
			acc := observe.NewAccumulator(m.Sites())
			results[idx], errs[idx] = New(m, acc, e.Config, nil).Run(ctx, sched)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
