package hmapsizes

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tamirms/hmapsizes/internal/growth"
	"github.com/tamirms/hmapsizes/internal/witness"
)

// Power range of the generated table.
const (
	MinPower = growth.MinPower
	MaxPower = growth.MaxPower
)

// Generate builds the witness set and solves every power level in
// [MinPower, MaxPower].
//
// The context is checked between power levels. With WithWorkers(n > 1),
// levels are solved concurrently and written into their own slots, so the
// result does not depend on scheduling.
func Generate(ctx context.Context, opts ...GenerateOption) (*Table, error) {
	cfg := defaultGenerateConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	set := witness.Default()
	entries := make([]Entry, MaxPower-MinPower+1)
	solve := func(i int) error {
		e, err := growth.Solve(MinPower+i, set, cfg.maxRepairSteps)
		if err != nil {
			return err
		}
		entries[i] = e
		return nil
	}

	if cfg.workers <= 1 {
		for i := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := solve(i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.workers)
		for i := range entries {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return solve(i)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return &Table{witnesses: set, entries: entries}, nil
}
