package scoring

import "math"

const (
	// DefaultAnnualCost stands in for an institution reporting neither a
	// sticker nor a net price, so it never looks free.
	DefaultAnnualCost = 25000.0

	repaymentShare  = 0.20
	programYears    = 4
	payoffPenalty   = 1.5
	overrunPenalty  = 100.0
	eliteAdmitRate  = 0.20
	eliteMinimumGPA = 3.5
	prestigeBar     = 1400.0
)

// Bundle carries the figures of one institution the scorer needs. A nil field
// is unknown.
type Bundle struct {
	NetPrice      *float64
	StickerPrice  *float64
	Earnings      *float64
	Debt          *float64
	AdmissionRate *float64
	// Composite75 and Composite25 are combined verbal and math test scores at
	// the 75th and 25th percentile of admitted students.
	Composite75 *float64
	Composite25 *float64
}

// Applicant is the user side of a score.
type Applicant struct {
	Budget           float64
	OccupationPrefix string
	GPA              float64
	// SAT is the composite test score, nil when the applicant supplied none.
	SAT *int
}

// Result is the outcome of scoring one institution.
type Result struct {
	Score      int    `json:"score"`
	Tier       Tier   `json:"tier"`
	DebtPayoff Payoff `json:"debt_payoff_years"`
}

// Invalid is the result for an institution without usable financial data.
func Invalid() Result {
	return Result{Score: 0, Tier: TierInvalid, DebtPayoff: Payoff{Years: -1}}
}

// EffectiveCost is the annual cost used for every affordability computation:
// the sticker price, else the net price, else DefaultAnnualCost.
func EffectiveCost(stickerPrice, netPrice *float64) float64 {
	if positive(stickerPrice) {
		return *stickerPrice
	}
	if positive(netPrice) {
		return *netPrice
	}
	return DefaultAnnualCost
}

// Score computes the weighted score of one institution for one applicant.
func Score(b Bundle, a Applicant) Result {
	if !numeric(b.Debt) || !numeric(b.Earnings) || !numeric(b.NetPrice) {
		return Invalid()
	}

	w := PersonaFor(a.OccupationPrefix).Weights()
	cost := EffectiveCost(b.StickerPrice, b.NetPrice)
	annualRepayment := repaymentShare * *b.Earnings

	payoff := InfinitePayoff()
	if annualRepayment > 0 {
		payoff = YearsPayoff(cost * programYears / annualRepayment)
	}

	roi := math.Max(0, w.ROI-loanPayoffYears(cost, a.Budget, annualRepayment)*payoffPenalty)

	var priceRatio float64
	budget := w.Budget / 2
	if a.Budget > 0 {
		priceRatio = cost / a.Budget
		budget = w.Budget
		if priceRatio > 1.0 {
			budget = math.Max(0, w.Budget-(priceRatio-1.0)*overrunPenalty)
		}
	}

	final := roi + budget + prestige(b, w)

	if a.Budget > 0 {
		if priceRatio > 1.2 {
			final *= 0.5
		}
		if priceRatio > 1.5 {
			final *= 0.1
		}
	}

	if a.SAT != nil && *a.SAT > 0 && positive(b.Composite25) {
		sat := float64(*a.SAT)
		switch {
		case sat < *b.Composite25-150:
			final *= 0.1
		case sat < *b.Composite25-50:
			final *= 0.5
		}
	}

	if positive(b.AdmissionRate) && *b.AdmissionRate < eliteAdmitRate && a.GPA > 0 && a.GPA < eliteMinimumGPA {
		final *= 0.4
	}

	if a.SAT != nil && *a.SAT > 0 && positive(b.Composite75) && a.Budget > 0 {
		if float64(*a.SAT) >= *b.Composite75 && priceRatio <= 1.0 {
			final = math.Max(final, 75)
			if priceRatio <= 0.8 {
				final = math.Max(final, 80)
			}
		}
	}

	score := int(math.Max(0, math.Min(100, final)))

	return Result{
		Score:      score,
		Tier:       TierFor(score),
		DebtPayoff: payoff,
	}
}

// loanPayoffYears is the time to repay what the budget leaves uncovered over
// the whole program. Zero means the budget covers everything.
func loanPayoffYears(cost, budget, annualRepayment float64) float64 {
	loans := math.Max(0, cost-budget) * programYears
	switch {
	case annualRepayment <= 0:
		return 99.9
	case loans == 0:
		return 0
	default:
		return loans / annualRepayment
	}
}

func prestige(b Bundle, w Weights) float64 {
	if positive(b.AdmissionRate) {
		return (1 - *b.AdmissionRate) * w.Prestige
	}
	if b.Composite75 != nil && *b.Composite75 > prestigeBar {
		return w.Prestige
	}
	return 0
}

func numeric(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func positive(v *float64) bool {
	return numeric(v) && *v > 0
}
