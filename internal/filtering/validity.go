package filtering

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/compasshud/compass/internal/catalog"
)

type validityFilter struct{}

// NewValidity creates a filter that drops institutions carrying malformed
// numeric values. Missing values are kept; the scorer deals with them.
func NewValidity() Filter {
	return &validityFilter{}
}

func (f *validityFilter) Name() string { return "validity" }

func (f *validityFilter) Validate(*Config) error { return nil }

func (f *validityFilter) Apply(_ context.Context, deps Deps, v *catalog.Institutions) (*catalog.Institutions, Step, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	initial := v.Len()
	dropped := v.Keep(func(inst *catalog.Institution) bool {
		if err := checkInstitution(inst); err != nil {
			logger.Warn("skipping institution with malformed data",
				zap.Int64("institution_id", inst.ID),
				zap.String("name", inst.Name),
				zap.Error(err),
			)
			return false
		}
		return true
	})

	return v, Step{Initial: initial, Dropped: len(dropped), Left: v.Len()}, nil
}

func checkInstitution(inst *catalog.Institution) error {
	money := []struct {
		name  string
		value *float64
	}{
		{"net_price", inst.NetPrice},
		{"sticker_price", inst.StickerPrice},
		{"earnings_median", inst.Earnings},
		{"debt_median", inst.Debt},
	}
	for _, field := range money {
		if err := checkAmount(field.name, field.value); err != nil {
			return err
		}
	}

	if rate := inst.AdmissionRate; rate != nil && !finite(*rate) {
		return fmt.Errorf("admission_rate is not a number: %v", *rate)
	}

	if inst.TestScores != nil {
		for name, score := range map[string]*float64{
			"verbal_25": inst.TestScores.Verbal25,
			"verbal_75": inst.TestScores.Verbal75,
			"math_25":   inst.TestScores.Math25,
			"math_75":   inst.TestScores.Math75,
		} {
			if err := checkAmount(name, score); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkAmount(name string, value *float64) error {
	if value == nil {
		return nil
	}
	if !finite(*value) {
		return fmt.Errorf("%s is not a number: %v", name, *value)
	}
	if *value < 0 {
		return fmt.Errorf("%s is negative: %v", name, *value)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
