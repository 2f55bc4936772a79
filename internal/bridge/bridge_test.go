package bridge

import (
	"reflect"
	"testing"
)

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect string
	}{
		{input: "15-1252.00", expect: "15"},
		{input: " 29-1141 ", expect: "29"},
		{input: "15", expect: "15"},
		{input: "1", expect: "1"},
		{input: "", expect: ""},
	}

	for _, tt := range tests {
		if got := Prefix(tt.input); got != tt.expect {
			t.Errorf("Prefix(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestResolve(t *testing.T) {
	table := New([]Row{
		{Program: "14", Occupation: "15"},
		{Program: "11", Occupation: "15"},
		{Program: "14", Occupation: "15"},
		{Program: "14.0901", Occupation: "17-2051"},
	}, map[string]float64{"15": 102000})

	wage, programs := table.Resolve("15-1252.00")
	if wage != 102000 {
		t.Fatalf("expected sector wage 102000, got %v", wage)
	}
	if !reflect.DeepEqual(programs, []string{"11", "14"}) {
		t.Fatalf("expected deduplicated sorted programs, got %v", programs)
	}

	wage, programs = table.Resolve("17")
	if wage != DefaultWage {
		t.Fatalf("expected default wage for sector without wage, got %v", wage)
	}
	if !reflect.DeepEqual(programs, []string{"14"}) {
		t.Fatalf("expected long codes to be truncated to prefixes, got %v", programs)
	}

	if table.Len() != 3 {
		t.Fatalf("expected 3 distinct pairs, got %d", table.Len())
	}
}

func TestResolveWithoutMapping(t *testing.T) {
	table := NewDefault(nil, nil)

	wage, programs := table.Resolve("53-3032")
	if len(programs) != 0 {
		t.Fatalf("expected no programs for unmapped sector, got %v", programs)
	}
	if wage != DefaultWage {
		t.Fatalf("expected default wage %v, got %v", DefaultWage, wage)
	}
}

func TestNewDefaultMergesExtras(t *testing.T) {
	table := NewDefault(
		[]Row{{Program: "01", Occupation: "45"}, {Program: "", Occupation: "15"}},
		map[string]float64{"15-0000": 110000, "45": 36000},
	)

	if got := table.Wage("15-1252"); got != 110000 {
		t.Fatalf("expected override wage 110000, got %v", got)
	}
	if got := table.Wage("29-1141"); got != SectorWages["29"] {
		t.Fatalf("expected default healthcare wage, got %v", got)
	}
	if got := table.Programs("45-2091"); !reflect.DeepEqual(got, []string{"01"}) {
		t.Fatalf("expected extra row to be added, got %v", got)
	}
	if got := table.Programs("15"); !reflect.DeepEqual(got, []string{"11", "14", "27", "30", "40"}) {
		t.Fatalf("unexpected engineer programs: %v", got)
	}
}

func TestSectorWagesCoverKnownSectors(t *testing.T) {
	if len(SectorWages) != 13 {
		t.Fatalf("expected 13 known sectors, got %d", len(SectorWages))
	}
}
