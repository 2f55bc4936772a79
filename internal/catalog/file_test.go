package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const yamlCatalog = `
institutions:
  - id: 100
    name: Tech Institute
    website: tech.example.edu
    net_price: 21000
    sticker_price: 58000
    earnings_median: 104000
    debt_median: 19500
    admission_rate: 0.07
    sat:
      verbal_25: 730
      verbal_75: 780
      math_25: 770
      math_75: 800
    programs: ["11.0701", "14.0901"]
    culture:
      greek: true
      greek_percent: 0.24
      sports: true
      diversity_index: 0.71
      research_class: 15
  - id: 200
    name: Broken College
    earnings_median: lots
    debt_median: 1000
    programs: ["11.0101"]
  - name: Missing Id University
    earnings_median: 40000
    debt_median: 1000
  - id: 300
    name: Community College
    net_price: "9000"
    earnings_median: 38000
    debt_median: 7000
    programs: ["51.3801"]
    culture:
      hbcu: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadFileYAML(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	path := writeFile(t, "institutions.yaml", yamlCatalog)

	mem, err := LoadFile(path, zap.New(core))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mem.Len() != 2 {
		t.Fatalf("expected 2 decoded institutions, got %d", mem.Len())
	}
	if n := logs.FilterMessage("skipping malformed catalog row").Len(); n != 2 {
		t.Fatalf("expected 2 skipped rows logged, got %d", n)
	}

	got, err := mem.Candidates(context.Background(), []string{"11", "51"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tech := got.FindByID(100)
	if tech == nil {
		t.Fatalf("expected institution 100 among candidates")
	}
	if bar, reported := tech.SchoolBar(); bar != 1580 || !reported {
		t.Fatalf("unexpected school bar %v/%v", bar, reported)
	}
	if tech.AdmissionRate == nil || *tech.AdmissionRate != 0.07 {
		t.Fatalf("unexpected admission rate %v", tech.AdmissionRate)
	}
	if tech.Culture.ResearchClass == nil || *tech.Culture.ResearchClass != ResearchVeryHigh {
		t.Fatalf("unexpected research class %v", tech.Culture.ResearchClass)
	}
	if tech.Culture.Athletics == nil || !*tech.Culture.Athletics {
		t.Fatalf("expected athletics flag")
	}

	cc := got.FindByID(300)
	if cc == nil || cc.NetPrice == nil || *cc.NetPrice != 9000 {
		t.Fatalf("expected weakly typed net price on institution 300")
	}
	if cc.Culture.HBCU == nil || !*cc.Culture.HBCU {
		t.Fatalf("expected hbcu flag on institution 300")
	}
}

func TestLoadFileJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "institutions.json", `{"institutions": [
		{"id": 1, "name": "State U", "earnings_median": 52000, "debt_median": 21000, "programs": ["52.0201"]}
	]}`)

	mem, err := LoadFile(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mem.Len() != 1 {
		t.Fatalf("expected 1 institution, got %d", mem.Len())
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := writeFile(t, "broken.yaml", "institutions: [")
	if _, err := LoadFile(path, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	t.Parallel()

	_, _, err := Open(context.Background(), Config{Driver: "duckdb"}, nil)
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestOpenFileDriver(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "institutions.yaml", yamlCatalog)

	cat, closeFn, err := Open(context.Background(), Config{Driver: "file", File: path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()

	if _, ok := cat.(*Memory); !ok {
		t.Fatalf("expected memory catalog, got %T", cat)
	}

	if _, _, err := Open(context.Background(), Config{Driver: "file"}, nil); err == nil {
		t.Fatalf("expected error when file is not configured")
	}
}
