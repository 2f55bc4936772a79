package catalog

import "context"

// Memory is a catalog held entirely in memory.
type Memory struct {
	items []*Institution
}

// NewMemory returns a catalog over the given institutions. Order is kept.
func NewMemory(items []*Institution) *Memory {
	return &Memory{items: items}
}

// Len returns the number of institutions, including incomplete ones.
func (m *Memory) Len() int {
	return len(m.items)
}

func (m *Memory) Candidates(ctx context.Context, programPrefixes []string) (*Institutions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefixes := prefixSet(programPrefixes)
	seen := make(map[int64]struct{})
	result := &Institutions{}

	for _, inst := range m.items {
		if inst == nil || !inst.HasFinancials() || !inst.OffersAny(prefixes) {
			continue
		}
		if _, dup := seen[inst.ID]; dup {
			continue
		}
		seen[inst.ID] = struct{}{}
		result.Items = append(result.Items, inst)
	}

	return result, nil
}
