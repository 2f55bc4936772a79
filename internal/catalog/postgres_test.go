package catalog

import (
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
)

func TestBuildCandidateQuery(t *testing.T) {
	t.Parallel()

	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := buildCandidateQuery(sb, []string{"11", "14"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{
		"SELECT DISTINCT s.unitid",
		"FROM schools s",
		"JOIN programs p ON s.unitid = p.unitid",
		"LEFT JOIN admissions a ON s.unitid = a.unitid",
		"substr(p.cipcode, 1, 2) IN ($1,$2)",
		"s.earnings_median IS NOT NULL",
		"s.debt_median IS NOT NULL",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("query %q does not contain %q", sql, fragment)
		}
	}

	if len(args) != 2 || args[0] != "11" || args[1] != "14" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestFlag(t *testing.T) {
	t.Parallel()

	one, zero := 1, 0
	if flag(nil) != nil {
		t.Fatalf("expected nil for unknown flag")
	}
	if got := flag(&one); got == nil || !*got {
		t.Fatalf("expected true for 1")
	}
	if got := flag(&zero); got == nil || *got {
		t.Fatalf("expected false for 0")
	}
}
