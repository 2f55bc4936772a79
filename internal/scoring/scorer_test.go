package scoring

import (
	"encoding/json"
	"testing"
)

func f(v float64) *float64 { return &v }

func sat(v int) *int { return &v }

func TestPersonaFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix  string
		persona Persona
		weights Weights
	}{
		{prefix: "11", persona: PersonaLeader, weights: Weights{ROI: 40, Budget: 20, Prestige: 40}},
		{prefix: "13", persona: PersonaLeader, weights: Weights{ROI: 40, Budget: 20, Prestige: 40}},
		{prefix: "21", persona: PersonaCreative, weights: Weights{ROI: 20, Budget: 60, Prestige: 20}},
		{prefix: "27", persona: PersonaCreative, weights: Weights{ROI: 20, Budget: 60, Prestige: 20}},
		{prefix: "15", persona: PersonaEngineer, weights: Weights{ROI: 60, Budget: 20, Prestige: 20}},
		{prefix: "17", persona: PersonaEngineer, weights: Weights{ROI: 60, Budget: 20, Prestige: 20}},
		{prefix: "29", persona: PersonaHealer, weights: Weights{ROI: 35, Budget: 35, Prestige: 30}},
		{prefix: "51", persona: PersonaHealer, weights: Weights{ROI: 35, Budget: 35, Prestige: 30}},
		{prefix: "00", persona: PersonaBalanced, weights: Weights{ROI: 40, Budget: 30, Prestige: 30}},
		{prefix: "", persona: PersonaBalanced, weights: Weights{ROI: 40, Budget: 30, Prestige: 30}},
	}

	for _, tt := range tests {
		got := PersonaFor(tt.prefix)
		if got != tt.persona {
			t.Errorf("PersonaFor(%q) = %s, want %s", tt.prefix, got, tt.persona)
		}
		if got.Weights() != tt.weights {
			t.Errorf("%s weights = %+v, want %+v", got, got.Weights(), tt.weights)
		}
	}
}

func TestTierFor(t *testing.T) {
	t.Parallel()

	tests := map[int]Tier{
		100: TierS, 90: TierS, 89: TierA, 80: TierA, 79: TierB,
		70: TierB, 69: TierC, 50: TierC, 49: TierF, 0: TierF,
	}
	for score, want := range tests {
		if got := TierFor(score); got != want {
			t.Errorf("TierFor(%d) = %s, want %s", score, got, want)
		}
	}
}

func TestEffectiveCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sticker *float64
		net     *float64
		expect  float64
	}{
		{name: "sticker wins", sticker: f(52000), net: f(18000), expect: 52000},
		{name: "zero sticker falls back to net", sticker: f(0), net: f(18000), expect: 18000},
		{name: "missing sticker falls back to net", net: f(18000), expect: 18000},
		{name: "nothing known", expect: DefaultAnnualCost},
		{name: "zeros", sticker: f(0), net: f(0), expect: DefaultAnnualCost},
		{name: "negative is never used", sticker: f(-10), net: f(-5), expect: DefaultAnnualCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveCost(tt.sticker, tt.net); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestScoreInvalidInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bundle Bundle
	}{
		{name: "no prices", bundle: Bundle{Earnings: f(60000), Debt: f(20000)}},
		{name: "no earnings", bundle: Bundle{NetPrice: f(20000), Debt: f(20000)}},
		{name: "no debt", bundle: Bundle{NetPrice: f(20000), Earnings: f(60000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.bundle, Applicant{Budget: 30000, GPA: 3.5})
			if got.Score != 0 || got.Tier != TierInvalid || got.DebtPayoff.Years != -1 || got.DebtPayoff.Infinite {
				t.Fatalf("expected degenerate result, got %+v", got)
			}
		})
	}
}

func TestScoreFullyAffordable(t *testing.T) {
	// 40 roi + 30 budget + 0 prestige for the balanced persona.
	got := Score(Bundle{
		NetPrice:     f(15000),
		StickerPrice: f(20000),
		Earnings:     f(100000),
		Debt:         f(18000),
	}, Applicant{Budget: 40000, OccupationPrefix: "00", GPA: 3.2})

	if got.Score != 70 || got.Tier != TierB {
		t.Fatalf("expected 70/B, got %+v", got)
	}
	if got.DebtPayoff.Infinite || got.DebtPayoff.Years != 4 {
		t.Fatalf("expected display payoff of 4 years, got %+v", got.DebtPayoff)
	}
}

func TestScoreUsesEngineerWeights(t *testing.T) {
	b := Bundle{
		NetPrice:      f(15000),
		StickerPrice:  f(20000),
		Earnings:      f(100000),
		Debt:          f(18000),
		AdmissionRate: f(0.5),
	}

	// 60 roi + 20 budget + 0.5*20 prestige.
	if got := Score(b, Applicant{Budget: 20000, OccupationPrefix: "15", GPA: 3.5}); got.Score != 90 {
		t.Fatalf("expected engineer score 90, got %+v", got)
	}
	// 40 roi + 30 budget + 0.5*30 prestige, clamped.
	if got := Score(b, Applicant{Budget: 20000, OccupationPrefix: "00", GPA: 3.5}); got.Score != 85 {
		t.Fatalf("expected balanced score 85, got %+v", got)
	}
}

func TestScorePriceRatioBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sticker float64
		budget  float64
		expect  int
	}{
		// 40 roi + 30 budget, no penalty at exactly 1.0.
		{name: "ratio 1.0", sticker: 40000, budget: 40000, expect: 70},
		// 37.6 roi + 10 budget, multiplier triggers only above 1.2.
		{name: "ratio 1.2", sticker: 48000, budget: 40000, expect: 47},
		// 34 roi + 0 budget, halved above 1.2 but not cut again at exactly 1.5.
		{name: "ratio 1.5", sticker: 60000, budget: 40000, expect: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(Bundle{
				NetPrice:     f(tt.sticker / 2),
				StickerPrice: f(tt.sticker),
				Earnings:     f(100000),
				Debt:         f(20000),
			}, Applicant{Budget: tt.budget, OccupationPrefix: "00", GPA: 3.5})
			if got.Score != tt.expect {
				t.Fatalf("expected %d, got %+v", tt.expect, got)
			}
		})
	}
}

func TestScoreSevereOverrun(t *testing.T) {
	// ratio 1.6: 35.5 roi + 0 budget + 15 prestige = 50.5 before penalties.
	got := Score(Bundle{
		NetPrice:      f(30000),
		StickerPrice:  f(40000),
		Earnings:      f(100000),
		Debt:          f(20000),
		AdmissionRate: f(0.5),
	}, Applicant{Budget: 25000, OccupationPrefix: "00", GPA: 3.5})

	if got.Score != 2 || got.Tier != TierF {
		t.Fatalf("expected 2/F after both multipliers, got %+v", got)
	}
}

func TestScoreWithoutBudget(t *testing.T) {
	// zero budget: loans cover the full 20000 cost, 80000/20000 = 4 years -> 34 roi,
	// plus half the budget weight.
	got := Score(Bundle{
		NetPrice:     f(20000),
		StickerPrice: f(20000),
		Earnings:     f(100000),
		Debt:         f(20000),
	}, Applicant{Budget: 0, OccupationPrefix: "00", GPA: 3.5})

	if got.Score != 49 {
		t.Fatalf("expected 49, got %+v", got)
	}
}

func TestScoreAdmissionGatekeeper(t *testing.T) {
	t.Parallel()

	base := Bundle{
		NetPrice:     f(15000),
		StickerPrice: f(20000),
		Earnings:     f(100000),
		Debt:         f(18000),
	}

	tests := []struct {
		name   string
		p25    float64
		sat    int
		expect int
	}{
		{name: "within range", p25: 1200, sat: 1200, expect: 70},
		{name: "exactly 50 below", p25: 1250, sat: 1200, expect: 70},
		{name: "reach", p25: 1300, sat: 1200, expect: 35},
		{name: "exactly 150 below", p25: 1350, sat: 1200, expect: 35},
		{name: "out of reach replaces the looser penalty", p25: 1400, sat: 1200, expect: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base
			b.Composite25 = f(tt.p25)
			got := Score(b, Applicant{Budget: 40000, OccupationPrefix: "00", GPA: 3.5, SAT: sat(tt.sat)})
			if got.Score != tt.expect {
				t.Fatalf("expected %d, got %+v", tt.expect, got)
			}
		})
	}
}

func TestScoreEliteGPAPenalty(t *testing.T) {
	b := Bundle{
		NetPrice:      f(15000),
		StickerPrice:  f(20000),
		Earnings:      f(100000),
		Debt:          f(18000),
		AdmissionRate: f(0.1),
	}

	// 40 + 30 + 27 = 97
	if got := Score(b, Applicant{Budget: 40000, OccupationPrefix: "00", GPA: 3.5}); got.Score != 97 || got.Tier != TierS {
		t.Fatalf("expected 97/S, got %+v", got)
	}
	if got := Score(b, Applicant{Budget: 40000, OccupationPrefix: "00", GPA: 3.4}); got.Score != 38 {
		t.Fatalf("expected 38 after elite penalty, got %+v", got)
	}

	b.AdmissionRate = f(0.2)
	// 40 + 30 + 24 = 94, not elite at exactly 0.20
	if got := Score(b, Applicant{Budget: 40000, OccupationPrefix: "00", GPA: 3.0}); got.Score != 94 {
		t.Fatalf("expected 94 without elite penalty, got %+v", got)
	}
}

func TestScorePrestigeFallback(t *testing.T) {
	b := Bundle{
		NetPrice:     f(15000),
		StickerPrice: f(20000),
		Earnings:     f(100000),
		Debt:         f(18000),
		Composite75:  f(1450),
	}

	if got := Score(b, Applicant{Budget: 40000, OccupationPrefix: "00", GPA: 3.9}); got.Score != 100 {
		t.Fatalf("expected full prestige for high scores without admission rate, got %+v", got)
	}

	b.Composite75 = f(1400)
	if got := Score(b, Applicant{Budget: 40000, OccupationPrefix: "00", GPA: 3.9}); got.Score != 70 {
		t.Fatalf("expected no prestige at exactly 1400, got %+v", got)
	}
}

func TestScoreSafetyNet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sticker float64
		budget  float64
		sat     int
		expect  int
	}{
		// raw 40 + 30 + 0 = 70, comfortably affordable
		{name: "floor at 80", sticker: 40000, budget: 50000, sat: 1600, expect: 80},
		// ratio 0.9 only earns the lower floor
		{name: "floor at 75", sticker: 45000, budget: 50000, sat: 1600, expect: 75},
		{name: "exactly at the 75th percentile", sticker: 40000, budget: 50000, sat: 1400, expect: 80},
		// weak candidate keeps raw score
		{name: "not strong", sticker: 40000, budget: 50000, sat: 1390, expect: 70},
		// over budget gets no floor: 34 roi + 10 budget at ratio 1.2
		{name: "not affordable", sticker: 60000, budget: 50000, sat: 1600, expect: 44},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(Bundle{
				NetPrice:     f(30000),
				StickerPrice: f(tt.sticker),
				Earnings:     f(50000),
				Debt:         f(20000),
				Composite75:  f(1400),
			}, Applicant{Budget: tt.budget, OccupationPrefix: "00", GPA: 3.9, SAT: sat(tt.sat)})
			if got.Score != tt.expect {
				t.Fatalf("expected %d, got %+v", tt.expect, got)
			}
		})
	}
}

func TestScoreSafetyNetRunsAfterGatekeeper(t *testing.T) {
	got := Score(Bundle{
		NetPrice:     f(15000),
		StickerPrice: f(20000),
		Earnings:     f(100000),
		Debt:         f(18000),
		Composite25:  f(1500),
		Composite75:  f(1300),
	}, Applicant{Budget: 40000, OccupationPrefix: "00", GPA: 3.5, SAT: sat(1300)})

	if got.Score != 80 || got.Tier != TierA {
		t.Fatalf("expected safety net to lift the gated score to 80/A, got %+v", got)
	}
}

func TestScoreInfinitePayoff(t *testing.T) {
	got := Score(Bundle{
		NetPrice: f(15000),
		Earnings: f(0),
		Debt:     f(18000),
	}, Applicant{Budget: 40000, OccupationPrefix: "00", GPA: 3.5})

	if !got.DebtPayoff.Infinite {
		t.Fatalf("expected infinite payoff, got %+v", got.DebtPayoff)
	}
	// 99.9 years -> roi floored at 0; budget 30
	if got.Score != 30 {
		t.Fatalf("expected 30, got %+v", got)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	budgets := []float64{0, 5000, 20000, 60000}
	prices := []float64{0, 8000, 30000, 75000}
	rates := []*float64{nil, f(0.05), f(0.5), f(0.95)}
	sats := []*int{nil, sat(900), sat(1600)}

	for _, budget := range budgets {
		for _, price := range prices {
			for _, rate := range rates {
				for _, s := range sats {
					got := Score(Bundle{
						NetPrice:      f(price),
						StickerPrice:  f(price),
						Earnings:      f(45000),
						Debt:          f(25000),
						AdmissionRate: rate,
						Composite25:   f(1100),
						Composite75:   f(1300),
					}, Applicant{Budget: budget, OccupationPrefix: "15", GPA: 3.0, SAT: s})
					if got.Score < 0 || got.Score > 100 {
						t.Fatalf("score out of range: %+v", got)
					}
					if got.Tier != TierFor(got.Score) {
						t.Fatalf("tier %s inconsistent with score %d", got.Tier, got.Score)
					}
				}
			}
		}
	}
}

func TestPayoffJSON(t *testing.T) {
	data, err := json.Marshal(Result{Score: 80, Tier: TierA, DebtPayoff: InfinitePayoff()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"score":80,"tier":"A","debt_payoff_years":"Infinite"}` {
		t.Fatalf("unexpected json: %s", data)
	}

	data, err = json.Marshal(YearsPayoff(3.14159))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "3.14" {
		t.Fatalf("expected rounded years, got %s", data)
	}

	var p Payoff
	if err := json.Unmarshal([]byte(`"Infinite"`), &p); err != nil || !p.Infinite {
		t.Fatalf("expected infinite payoff, got %+v (%v)", p, err)
	}
	if err := json.Unmarshal([]byte(`12.5`), &p); err != nil || p.Infinite || p.Years != 12.5 {
		t.Fatalf("expected 12.5 years, got %+v (%v)", p, err)
	}
}
