package catalog

import "testing"

func f64(v float64) *float64 { return &v }

func TestSchoolBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scores   *TestScores
		bar      float64
		reported bool
		gpaBar   float64
	}{
		{name: "no scores", bar: 1000, gpaBar: 2.5},
		{name: "partial scores", scores: &TestScores{Verbal75: f64(700)}, bar: 1000, gpaBar: 2.5},
		{name: "zero counts as missing", scores: &TestScores{Verbal75: f64(0), Math75: f64(700)}, bar: 1000, gpaBar: 2.5},
		{name: "reported", scores: &TestScores{Verbal75: f64(700), Math75: f64(700)}, bar: 1400, reported: true, gpaBar: 3.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inst := &Institution{TestScores: tt.scores}
			bar, reported := inst.SchoolBar()
			if bar != tt.bar || reported != tt.reported {
				t.Fatalf("expected %v/%v, got %v/%v", tt.bar, tt.reported, bar, reported)
			}
			if got := inst.GPABar(); got != tt.gpaBar {
				t.Fatalf("expected gpa bar %v, got %v", tt.gpaBar, got)
			}
		})
	}
}

func TestComposite25(t *testing.T) {
	t.Parallel()

	if got := (&Institution{}).Composite25(); got != nil {
		t.Fatalf("expected nil composite, got %v", *got)
	}

	inst := &Institution{TestScores: &TestScores{Verbal25: f64(550), Math25: f64(600)}}
	got := inst.Composite25()
	if got == nil || *got != 1150 {
		t.Fatalf("expected 1150, got %v", got)
	}
}

func TestOffersAny(t *testing.T) {
	t.Parallel()

	inst := &Institution{Programs: []string{"11.0701", " 14.0901", "5"}}

	if !inst.OffersAny(prefixSet([]string{"14"})) {
		t.Fatalf("expected padded program to match")
	}
	if inst.OffersAny(prefixSet([]string{"5", "27"})) {
		t.Fatalf("expected no match for short program codes")
	}
}

func TestInstitutionsKeep(t *testing.T) {
	t.Parallel()

	v := &Institutions{Items: []*Institution{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}}

	dropped := v.Keep(func(inst *Institution) bool { return inst.ID%2 == 1 })

	if v.Len() != 2 || v.Items[0].ID != 1 || v.Items[1].ID != 3 {
		t.Fatalf("unexpected kept items: %+v", v.Items)
	}
	if len(dropped) != 2 || dropped[0] != 2 || dropped[1] != 4 {
		t.Fatalf("unexpected dropped ids: %v", dropped)
	}
	if v.FindByID(3) == nil || v.FindByID(2) != nil {
		t.Fatalf("FindByID does not reflect kept items")
	}
}
