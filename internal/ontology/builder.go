package ontology

import (
	"fmt"

	"github.com/golang/glog"

	"rf2owl/internal/common"
	"rf2owl/internal/diagnostic"
	"rf2owl/internal/rf2"
)

// Builder accumulates concepts, hierarchy edges, relationships and concrete
// facts, then assembles them into a Model. A Builder is single-writer and must
// not be used after Build.
type Builder struct {
	vocab    Vocabulary
	concepts map[string]*Concept
	// children is the inverse of Concept.Parents.
	children map[string][]string
	features map[string]struct{}
	diags    diagnostic.Diagnostics
}

// NewBuilder creates a Builder for the given vocabulary.
func NewBuilder(vocab Vocabulary) *Builder {
	return &Builder{
		vocab:    vocab,
		concepts: make(map[string]*Concept),
		children: make(map[string][]string),
		features: make(map[string]struct{}),
	}
}

// AddConcept registers an active concept.
func (b *Builder) AddConcept(id string, primitive bool) *Concept {
	c, ok := b.concepts[id]
	if !ok {
		c = &Concept{ID: id}
		b.concepts[id] = c
	}

	c.Primitive = primitive

	return c
}

// SetLabel sets the label of a registered concept. Labels of unknown
// (inactive) concepts are ignored.
func (b *Builder) SetLabel(id, label string) {
	if c, ok := b.concepts[id]; ok {
		c.Label = label
	}
}

// AddIsA records child ⊑ parent.
func (b *Builder) AddIsA(child, parent string) {
	c := b.ensure(child, "IS-A source")

	var added bool
	if c.Parents, added = common.AppendUnique(c.Parents, parent); added {
		b.children[parent] = append(b.children[parent], child)
	}
}

// AddRelationship records a non-IS-A relationship of its component.
func (b *Builder) AddRelationship(rel Relationship) {
	c := b.ensure(rel.Component, "relationship source")
	c.Relationships = append(c.Relationships, rel)
}

// Ingest feeds a snapshot into the builder. Concepts are registered before
// labels, relationships and facts refer to them.
func (b *Builder) Ingest(s *rf2.Snapshot) error {
	for _, c := range s.Concepts {
		b.AddConcept(c.ID, c.DefinitionStatus == b.vocab.Primitive)
	}

	for _, d := range s.Descriptions {
		b.SetLabel(d.ConceptID, d.Term)
	}

	for _, r := range s.Relationships {
		if r.TypeID == b.vocab.IsA {
			b.AddIsA(r.SourceID, r.DestinationID)
			continue
		}

		b.AddRelationship(Relationship{
			Component: r.SourceID,
			Attribute: r.TypeID,
			Value:     r.DestinationID,
			Group:     r.Group,
		})
	}

	for _, v := range s.ConcreteValues {
		err := b.AddConcreteFact(ConcreteFact{
			Component: v.ComponentID,
			Feature:   v.RefsetID,
			Operator:  v.OperatorID,
			Value:     v.Value,
			Unit:      v.UnitID,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Build resolves roles and datatypes and assembles every concept definition.
// Structural problems are collected in Model.Diagnostics; only unrecoverable
// input (a cyclic role hierarchy) fails the build.
func (b *Builder) Build() (*Model, error) {
	b.ensureReferenced()

	var diags diagnostic.Diagnostics
	diags.Merge(b.diags)

	roles, err := resolveRoles(b.vocab, b.children, &diags)
	if err != nil {
		return nil, err
	}

	index := newAncestorIndex(b.concepts)

	m := &Model{
		Vocabulary:   b.vocab,
		Concepts:     b.concepts,
		Roles:        roles,
		Features:     resolveDatatypes(b.features, index, b.vocab, &diags),
		Definitions:  make(map[string]Definition, len(b.concepts)),
		neverGrouped: common.Set(b.vocab.NeverGrouped...),
	}

	asm := &assembler{model: m, diags: &diags}

	for _, id := range common.SortedKeys(b.concepts) {
		if _, isRole := roles[id]; isRole {
			continue
		}

		m.Definitions[id] = asm.define(b.concepts[id])
	}

	m.Diagnostics = diags

	glog.Infof("assembled model: %d concepts, %d roles, %d features, %d structural errors",
		len(m.Definitions), len(m.Roles), len(m.Features), len(diags.Errors))

	return m, nil
}

// ensureReferenced creates placeholders for parents, relationship values and
// units that were referenced but never registered, so every class named in an
// axiom is also declared.
func (b *Builder) ensureReferenced() {
	for _, id := range common.SortedKeys(b.concepts) {
		c := b.concepts[id]

		for _, p := range c.Parents {
			b.ensure(p, "IS-A destination")
		}

		for _, r := range c.Relationships {
			b.ensure(r.Value, "relationship value")
		}

		for _, f := range c.Facts {
			if f.Unit != "" {
				b.ensure(f.Unit, "concrete-domain unit")
			}
		}
	}
}

// ensure returns the concept id, creating a primitive placeholder when a
// relationship refers to a concept that was not registered.
func (b *Builder) ensure(id, referrer string) *Concept {
	if c, ok := b.concepts[id]; ok {
		return c
	}

	c := &Concept{ID: id, Primitive: true}
	b.concepts[id] = c

	b.diags.AddInfo(diagnostic.CodeImplicitConcept,
		fmt.Sprintf("created from %s; not in the concept file", referrer), id)
	glog.V(1).Infof("concept %s created from %s", id, referrer)

	return c
}
