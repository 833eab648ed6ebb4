package ontology

import (
	"cmp"
	"slices"
)

// GroupRelationships partitions relationships into role groups.
//
// Relationships with group number 0 each form their own singleton group and
// are never merged. All relationships sharing a non-zero group number form a
// single group; the number itself carries no meaning beyond the partition.
//
// The result order is fixed: singleton groups first, ordered by attribute and
// value, then numbered groups by ascending group number. Triples inside a
// group are ordered by attribute and value.
func GroupRelationships(rels []Relationship) []RoleGroup {
	var (
		singles  []RoleGroup
		numbered = make(map[int][]Triple)
	)

	for _, r := range rels {
		t := Triple{Attribute: r.Attribute, Value: r.Value, Component: r.Component}
		if r.Group == 0 {
			singles = append(singles, RoleGroup{Group: 0, Triples: []Triple{t}})
			continue
		}

		numbered[r.Group] = append(numbered[r.Group], t)
	}

	slices.SortStableFunc(singles, func(a, b RoleGroup) int {
		return compareTriples(a.Triples[0], b.Triples[0])
	})

	groups := singles

	keys := make([]int, 0, len(numbered))
	for k := range numbered {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		triples := numbered[k]
		slices.SortStableFunc(triples, compareTriples)
		groups = append(groups, RoleGroup{Group: k, Triples: triples})
	}

	return groups
}

func compareTriples(a, b Triple) int {
	return cmp.Or(
		cmp.Compare(a.Attribute, b.Attribute),
		cmp.Compare(a.Value, b.Value),
	)
}
