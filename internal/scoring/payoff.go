package scoring

import (
	"math"
	"strconv"
)

const infiniteLabel = "Infinite"

// Payoff is the number of years needed to repay a debt, or Infinite when the
// projected earnings can never cover it.
type Payoff struct {
	Years    float64
	Infinite bool
}

// InfinitePayoff is the payoff of a debt that is never repaid.
func InfinitePayoff() Payoff {
	return Payoff{Infinite: true}
}

// YearsPayoff returns a finite payoff rounded to two decimals.
func YearsPayoff(years float64) Payoff {
	return Payoff{Years: math.Round(years*100) / 100}
}

func (p Payoff) String() string {
	if p.Infinite {
		return infiniteLabel
	}
	return strconv.FormatFloat(p.Years, 'f', -1, 64)
}

// MarshalJSON renders a number, or the string "Infinite".
func (p Payoff) MarshalJSON() ([]byte, error) {
	if p.Infinite {
		return []byte(strconv.Quote(infiniteLabel)), nil
	}
	return []byte(strconv.FormatFloat(p.Years, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts the forms produced by MarshalJSON.
func (p *Payoff) UnmarshalJSON(data []byte) error {
	if s, err := strconv.Unquote(string(data)); err == nil {
		if s == infiniteLabel {
			*p = InfinitePayoff()
			return nil
		}
		data = []byte(s)
	}

	years, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*p = Payoff{Years: years}
	return nil
}
