package hmapsizes

import (
	"fmt"

	hmerrors "github.com/tamirms/hmapsizes/errors"
	"github.com/tamirms/hmapsizes/internal/growth"
)

// GenerateOption is a functional option for configuring Generate.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	workers        int
	maxRepairSteps int
}

func defaultGenerateConfig() *generateConfig {
	return &generateConfig{
		workers:        0, // Sequential; use WithWorkers(n) to solve levels in parallel
		maxRepairSteps: growth.DefaultMaxRepairSteps,
	}
}

// WithWorkers sets the number of goroutines solving power levels.
// 0 and 1 both mean sequential. The table is identical either way.
func WithWorkers(n int) GenerateOption {
	return func(c *generateConfig) {
		c.workers = n
	}
}

// WithMaxRepairSteps bounds the coprimality repair walk of each power level.
// A level that needs more steps fails with ErrSizeSearchExhausted.
func WithMaxRepairSteps(n int) GenerateOption {
	return func(c *generateConfig) {
		c.maxRepairSteps = n
	}
}

func (c *generateConfig) validate() error {
	if c.workers < 0 {
		return fmt.Errorf("%w: workers %d", hmerrors.ErrInvalidOption, c.workers)
	}
	if c.maxRepairSteps < 0 {
		return fmt.Errorf("%w: max repair steps %d", hmerrors.ErrInvalidOption, c.maxRepairSteps)
	}
	return nil
}
