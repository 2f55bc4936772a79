package matching

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest is returned for a request that fails validation.
var ErrInvalidRequest = errors.New("invalid match request")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Preference is a campus-culture tag that boosts matching institutions.
type Preference string

const (
	PreferGreek     Preference = "greek"
	PreferSports    Preference = "sports"
	PreferDiversity Preference = "diversity"
	PreferHBCU      Preference = "hbcu"
	PreferResearch  Preference = "research"
)

// DefaultWeights apply to preferences the request does not weight itself.
// HBCU is a flat bonus and takes no weight.
var DefaultWeights = map[Preference]float64{
	PreferGreek:     4,
	PreferSports:    5,
	PreferDiversity: 7,
	PreferResearch:  8,
}

// Request describes one applicant looking for institutions.
type Request struct {
	GPA float64 `json:"gpa" validate:"gte=0,lte=5"`
	// SAT is the composite test score; nil means the applicant supplied none.
	SAT            *int    `json:"sat,omitempty" validate:"omitempty,gte=400,lte=1600"`
	Budget         float64 `json:"budget" validate:"gte=0"`
	OccupationCode string  `json:"occupation_code" validate:"required"`

	// Preferences with unknown tags are ignored.
	Preferences       []Preference           `json:"preferences,omitempty"`
	PreferenceWeights map[Preference]float64 `json:"preference_weights,omitempty" validate:"omitempty,dive,gte=1,lte=10"`
}

// Validate reports whether the request can be matched.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func (r Request) weight(p Preference) float64 {
	if w, ok := r.PreferenceWeights[p]; ok {
		return w
	}
	return DefaultWeights[p]
}

func (r Request) wants() map[Preference]struct{} {
	set := make(map[Preference]struct{}, len(r.Preferences))
	for _, p := range r.Preferences {
		set[p] = struct{}{}
	}
	return set
}
