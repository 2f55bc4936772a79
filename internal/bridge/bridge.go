// Package bridge maps occupation sectors to the academic program families that
// feed them, and carries the baseline wage of each sector.
package bridge

import (
	"sort"
	"strings"
)

// DefaultWage is the baseline wage of a sector missing from the wage table.
const DefaultWage = 50000.0

// Row asserts that graduates of programs under Program are plausible entrants
// into the occupation sector Occupation. Both are two-character prefixes.
type Row struct {
	Program    string `mapstructure:"program" yaml:"program"`
	Occupation string `mapstructure:"occupation" yaml:"occupation"`
}

// Table is a read-only multimap from occupation prefix to program prefixes.
// Duplicate rows collapse into one entry.
type Table struct {
	programs map[string]map[string]struct{}
	wages    map[string]float64
}

// New builds a table from rows and a sector wage table. A nil wage table means
// every sector gets DefaultWage.
func New(rows []Row, wages map[string]float64) *Table {
	t := &Table{
		programs: make(map[string]map[string]struct{}),
		wages:    make(map[string]float64, len(wages)),
	}

	for prefix, wage := range wages {
		t.wages[Prefix(prefix)] = wage
	}

	t.add(rows)

	return t
}

// NewDefault builds a table from the curated rows and wages merged with the
// provided extras. Extra wages override the defaults for the same sector.
func NewDefault(extraRows []Row, extraWages map[string]float64) *Table {
	wages := make(map[string]float64, len(SectorWages)+len(extraWages))
	for prefix, wage := range SectorWages {
		wages[prefix] = wage
	}
	for prefix, wage := range extraWages {
		wages[Prefix(prefix)] = wage
	}

	rows := make([]Row, 0, len(DefaultRows)+len(extraRows))
	rows = append(rows, DefaultRows...)
	rows = append(rows, extraRows...)

	return New(rows, wages)
}

func (t *Table) add(rows []Row) {
	for _, row := range rows {
		occupation := Prefix(row.Occupation)
		program := Prefix(row.Program)
		if occupation == "" || program == "" {
			continue
		}

		set, ok := t.programs[occupation]
		if !ok {
			set = make(map[string]struct{})
			t.programs[occupation] = set
		}
		set[program] = struct{}{}
	}
}

// Prefix returns the two-character sector key of a classification code.
// Shorter codes are returned trimmed but otherwise unchanged.
func Prefix(code string) string {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return code
	}
	return code[:2]
}

// Wage returns the baseline wage of the sector the occupation code belongs to.
func (t *Table) Wage(occupationCode string) float64 {
	if wage, ok := t.wages[Prefix(occupationCode)]; ok {
		return wage
	}
	return DefaultWage
}

// Programs returns the sorted program prefixes joined to the occupation code's
// sector. The result is empty when the sector has no rows.
func (t *Table) Programs(occupationCode string) []string {
	set := t.programs[Prefix(occupationCode)]
	programs := make([]string, 0, len(set))
	for program := range set {
		programs = append(programs, program)
	}
	sort.Strings(programs)
	return programs
}

// Resolve returns the sector baseline wage and program prefixes for an
// occupation code. Only the first two characters of the code are used.
func (t *Table) Resolve(occupationCode string) (float64, []string) {
	return t.Wage(occupationCode), t.Programs(occupationCode)
}

// Len returns the number of distinct (program, occupation) pairs.
func (t *Table) Len() int {
	n := 0
	for _, set := range t.programs {
		n += len(set)
	}
	return n
}
