package matching

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/compasshud/compass/internal/scoring"
)

// Match is one scored institution.
type Match struct {
	InstitutionID     int64          `json:"institution_id"`
	Name              string         `json:"name"`
	Score             int            `json:"score"`
	Tier              scoring.Tier   `json:"tier"`
	DebtPayoff        scoring.Payoff `json:"debt_payoff_years"`
	NetPrice          *float64       `json:"net_price"`
	StickerPrice      *float64       `json:"sticker_price"`
	ProjectedEarnings float64        `json:"projected_earnings"`
	Debt              *float64       `json:"debt"`
	AdmissionRate     *float64       `json:"admission_rate"`
	Website           string         `json:"website,omitempty"`
	ResearchClass     *int           `json:"research_classification,omitempty"`
	HasAthletics      bool           `json:"has_athletics"`
}

// Matches is a ranked list of matches.
type Matches struct {
	Items []*Match `json:"items"`
}

func (m *Matches) Len() int {
	return len(m.Items)
}

func (m *Matches) FindByID(id int64) *Match {
	for _, match := range m.Items {
		if match.InstitutionID == id {
			return match
		}
	}
	return nil
}

// ReportByTier groups a printable summary of every match by its tier.
func (m *Matches) ReportByTier() map[scoring.Tier][]map[string]string {
	report := make(map[scoring.Tier][]map[string]string)
	for _, match := range m.Items {
		report[match.Tier] = append(report[match.Tier], map[string]string{
			"name":               match.Name,
			"score":              strconv.Itoa(match.Score),
			"website":            match.Website,
			"cost":               money(match.StickerPrice, match.NetPrice),
			"projected earnings": fmt.Sprintf("%.0f", match.ProjectedEarnings),
			"debt payoff years":  match.DebtPayoff.String(),
		})
	}
	return report
}

// DumpToTmpFile writes the matches as indented JSON to a new temporary file
// and returns its name.
func (m *Matches) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func money(values ...*float64) string {
	for _, v := range values {
		if v != nil && *v > 0 {
			return fmt.Sprintf("%.0f", *v)
		}
	}
	return "unknown"
}
