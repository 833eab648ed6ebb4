package ontology

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/golang/glog"

	"rf2owl/internal/common"
	"rf2owl/internal/diagnostic"
)

// AddConcreteFact attaches a concrete-domain fact to its component. Only the
// equality operator is supported; any other operator aborts ingestion.
func (b *Builder) AddConcreteFact(f ConcreteFact) error {
	if f.Operator != b.vocab.EqualityOperator {
		return &UnsupportedOperatorError{Component: f.Component, Feature: f.Feature, Operator: f.Operator}
	}

	c := b.ensure(f.Component, "concrete-domain fact")
	c.Facts = append(c.Facts, f)
	b.features[f.Feature] = struct{}{}

	return nil
}

// ancestorIndex memoizes the transitive IS-A closure per concept.
type ancestorIndex struct {
	concepts map[string]*Concept
	memo     map[string]map[string]struct{}
	visiting map[string]bool
}

func newAncestorIndex(concepts map[string]*Concept) *ancestorIndex {
	return &ancestorIndex{
		concepts: concepts,
		memo:     make(map[string]map[string]struct{}),
		visiting: make(map[string]bool),
	}
}

// ancestors returns every strict ancestor of id. A concept reached again
// while its own closure is being computed contributes nothing, so a cyclic
// hierarchy terminates.
func (a *ancestorIndex) ancestors(id string) map[string]struct{} {
	if set, ok := a.memo[id]; ok {
		return set
	}

	if a.visiting[id] {
		return nil
	}

	a.visiting[id] = true
	defer delete(a.visiting, id)

	set := make(map[string]struct{})

	if c, ok := a.concepts[id]; ok {
		for _, p := range c.Parents {
			set[p] = struct{}{}
			for q := range a.ancestors(p) {
				set[q] = struct{}{}
			}
		}
	}

	a.memo[id] = set

	return set
}

func (a *ancestorIndex) hasAncestor(id, ancestor string) bool {
	if ancestor == "" {
		return false
	}

	_, ok := a.ancestors(id)[ancestor]

	return ok
}

// resolveDatatypes types each feature by the marker found among its ancestors.
func resolveDatatypes(features map[string]struct{}, index *ancestorIndex, vocab Vocabulary,
	diags *diagnostic.Diagnostics,
) map[string]Datatype {
	out := make(map[string]Datatype, len(features))

	for _, f := range common.SortedKeys(features) {
		switch {
		case index.hasAncestor(f, vocab.FloatMarker):
			out[f] = DatatypeDecimal
		case index.hasAncestor(f, vocab.IntMarker):
			out[f] = DatatypeInteger
		default:
			out[f] = DatatypeUnknown

			diags.AddWarning(diagnostic.CodeUnknownDatatype,
				fmt.Sprintf("no datatype marker among ancestors; values of %s are written untyped", f), f)
			glog.Warningf("cannot resolve datatype of concrete-domain feature %s", f)
		}
	}

	return out
}

// sortedFacts returns a copy of facts ordered by feature, value and unit.
func sortedFacts(facts []ConcreteFact) []ConcreteFact {
	out := slices.Clone(facts)
	slices.SortStableFunc(out, func(a, b ConcreteFact) int {
		return cmp.Or(
			cmp.Compare(a.Feature, b.Feature),
			cmp.Compare(a.Value, b.Value),
			cmp.Compare(a.Unit, b.Unit),
		)
	})

	return out
}
