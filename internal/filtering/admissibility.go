package filtering

import (
	"context"
	"errors"
	"strconv"

	"github.com/compasshud/compass/internal/catalog"
)

const (
	DefaultSATMargin = 150.0
	DefaultGPAMargin = 0.2
)

type admissibilityFilter struct {
	gpa       float64
	sat       *int
	satMargin float64
	gpaMargin float64
}

// NewAdmissibility creates a filter that drops institutions the applicant is
// unlikely to be admitted to. A supplied SAT takes precedence over the GPA.
func NewAdmissibility(gpa float64, sat *int) Filter {
	return &admissibilityFilter{gpa: gpa, sat: sat}
}

func (f *admissibilityFilter) Name() string { return "admissibility" }

func (f *admissibilityFilter) Validate(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.SATMargin < 0 || cfg.GPAMargin < 0 {
		return errors.New("admission margins must not be negative")
	}
	f.satMargin = cfg.SATMargin
	f.gpaMargin = cfg.GPAMargin
	return nil
}

func (f *admissibilityFilter) Apply(_ context.Context, _ Deps, v *catalog.Institutions) (*catalog.Institutions, Step, error) {
	initial := v.Len()
	dropped := v.Keep(f.admits)
	return v, Step{Initial: initial, Dropped: len(dropped), Left: v.Len()}, nil
}

func (f *admissibilityFilter) admits(inst *catalog.Institution) bool {
	if f.sat != nil {
		bar, _ := inst.SchoolBar()
		return float64(*f.sat) >= bar-f.satMargin
	}
	return f.gpa >= inst.GPABar()-f.gpaMargin
}

func (f *admissibilityFilter) Status() Status {
	details := map[string]string{
		"gpa": strconv.FormatFloat(f.gpa, 'f', 2, 64),
	}
	if f.sat != nil {
		details["sat"] = strconv.Itoa(*f.sat)
	}
	details["sat_margin"] = strconv.FormatFloat(f.satMargin, 'f', -1, 64)
	details["gpa_margin"] = strconv.FormatFloat(f.gpaMargin, 'f', -1, 64)
	return Status{Name: f.Name(), Details: details}
}
