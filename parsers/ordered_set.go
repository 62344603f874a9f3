package parsers

// orderedSet accumulates strings preserving first-seen order. Deduplication
// is exact-string and case-sensitive, matching how candidates come out of
// the regexes.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) Add(value string) {
	if value == "" || s.seen[value] {
		return
	}
	s.seen[value] = true
	s.items = append(s.items, value)
}

// Values returns up to limit entries in discovery order.
func (s *orderedSet) Values(limit int) []string {
	if len(s.items) <= limit {
		return s.items
	}
	return s.items[:limit]
}
