package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/compasshud/compass/internal/catalog"
)

// Filter represents a single filtering step applied to candidate institutions.
type Filter interface {
	Name() string

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, v *catalog.Institutions) (*catalog.Institutions, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains settings consumed by the filters.
type Config struct {
	// SATMargin is how far below the school bar an applicant's SAT may be.
	SATMargin float64
	// GPAMargin is how far below the GPA bar an applicant's GPA may be.
	GPAMargin float64
}

// DefaultConfig returns the admission margins used by the matching engine.
func DefaultConfig() *Config {
	return &Config{
		SATMargin: DefaultSATMargin,
		GPAMargin: DefaultGPAMargin,
	}
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Run executes the supplied filters sequentially and returns the remaining institutions.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, v *catalog.Institutions) (*catalog.Institutions, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	for _, step := range steps {
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, info, err := step.Apply(ctx, deps, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		v = next
	}

	return v, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{Name: step.Name()})
	}
	return statuses
}
