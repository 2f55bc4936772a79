package catalog

import "strings"

const (
	// DefaultSchoolBar is the composite test score assumed for an institution
	// that reports no upper-quartile scores.
	DefaultSchoolBar = 1000.0
	// DefaultGPABar is the GPA equivalent of DefaultSchoolBar.
	DefaultGPABar = 2.5

	gpaScale = 400.0
)

// Carnegie basic classification codes of research universities.
const (
	ResearchVeryHigh = 15
	ResearchHigh     = 16
)

// Institution is one school of the catalog. Pointer fields are nil when the
// source has no value.
type Institution struct {
	ID      int64  `json:"id" mapstructure:"id"`
	Name    string `json:"name" mapstructure:"name"`
	Website string `json:"website,omitempty" mapstructure:"website"`

	NetPrice      *float64 `json:"net_price,omitempty" mapstructure:"net_price"`
	StickerPrice  *float64 `json:"sticker_price,omitempty" mapstructure:"sticker_price"`
	Earnings      *float64 `json:"earnings_median,omitempty" mapstructure:"earnings_median"`
	Debt          *float64 `json:"debt_median,omitempty" mapstructure:"debt_median"`
	AdmissionRate *float64 `json:"admission_rate,omitempty" mapstructure:"admission_rate"`

	TestScores *TestScores `json:"sat,omitempty" mapstructure:"sat"`
	// Programs are program classification codes; only their first two
	// characters are matched.
	Programs []string `json:"programs,omitempty" mapstructure:"programs"`
	Culture  Culture  `json:"culture" mapstructure:"culture"`
}

// TestScores are section scores at the 25th and 75th percentile of admitted students.
type TestScores struct {
	Verbal25 *float64 `json:"verbal_25,omitempty" mapstructure:"verbal_25"`
	Verbal75 *float64 `json:"verbal_75,omitempty" mapstructure:"verbal_75"`
	Math25   *float64 `json:"math_25,omitempty" mapstructure:"math_25"`
	Math75   *float64 `json:"math_75,omitempty" mapstructure:"math_75"`
}

// Culture holds optional campus-life attributes.
type Culture struct {
	HBCU           *bool    `json:"hbcu,omitempty" mapstructure:"hbcu"`
	Greek          *bool    `json:"greek,omitempty" mapstructure:"greek"`
	GreekPercent   *float64 `json:"greek_percent,omitempty" mapstructure:"greek_percent"`
	Athletics      *bool    `json:"sports,omitempty" mapstructure:"sports"`
	DiversityIndex *float64 `json:"diversity_index,omitempty" mapstructure:"diversity_index"`
	Locale         *int     `json:"locale,omitempty" mapstructure:"locale"`
	ResearchClass  *int     `json:"research_class,omitempty" mapstructure:"research_class"`
}

// HasFinancials reports whether both earnings and debt are known.
func (i *Institution) HasFinancials() bool {
	return i.Earnings != nil && i.Debt != nil
}

// OffersAny reports whether one of the institution's programs falls under a prefix of the set.
func (i *Institution) OffersAny(prefixes map[string]struct{}) bool {
	for _, program := range i.Programs {
		program = strings.TrimSpace(program)
		if len(program) < 2 {
			continue
		}
		if _, ok := prefixes[program[:2]]; ok {
			return true
		}
	}
	return false
}

// SchoolBar returns the upper-quartile composite score and whether it was
// reported. Unreported scores yield DefaultSchoolBar.
func (i *Institution) SchoolBar() (float64, bool) {
	if i.TestScores == nil || !set(i.TestScores.Verbal75) || !set(i.TestScores.Math75) {
		return DefaultSchoolBar, false
	}
	return *i.TestScores.Verbal75 + *i.TestScores.Math75, true
}

// GPABar is the GPA equivalent of the school bar.
func (i *Institution) GPABar() float64 {
	bar, reported := i.SchoolBar()
	if !reported {
		return DefaultGPABar
	}
	return bar / gpaScale
}

// Composite25 returns the lower-quartile composite score, nil when unknown.
func (i *Institution) Composite25() *float64 {
	if i.TestScores == nil || !set(i.TestScores.Verbal25) || !set(i.TestScores.Math25) {
		return nil
	}
	v := *i.TestScores.Verbal25 + *i.TestScores.Math25
	return &v
}

func set(v *float64) bool {
	return v != nil && *v != 0
}

// Institutions is an ordered collection of catalog entries.
type Institutions struct {
	Items []*Institution
}

func (v *Institutions) Len() int {
	return len(v.Items)
}

// FindByID returns the institution with the id or nil.
func (v *Institutions) FindByID(id int64) *Institution {
	for _, inst := range v.Items {
		if inst.ID == id {
			return inst
		}
	}
	return nil
}

// Keep retains the institutions accepted by keep, preserving order, and
// returns the ids of the dropped ones.
func (v *Institutions) Keep(keep func(*Institution) bool) []int64 {
	var dropped []int64
	kept := v.Items[:0]
	for _, inst := range v.Items {
		if keep(inst) {
			kept = append(kept, inst)
			continue
		}
		dropped = append(dropped, inst.ID)
	}
	for idx := len(kept); idx < len(v.Items); idx++ {
		v.Items[idx] = nil
	}
	v.Items = kept
	return dropped
}
