package ontology

import (
	"fmt"

	"rf2owl/internal/common"
	"rf2owl/internal/diagnostic"
)

// assembler turns a concept's parents, role groups and concrete facts into
// its Definition.
type assembler struct {
	model *Model
	diags *diagnostic.Diagnostics
}

// define classifies c by its number of defining elements: each parent counts
// once, all role groups together count once, all concrete facts together count
// once.
func (a *assembler) define(c *Concept) Definition {
	groups := GroupRelationships(c.Relationships)
	hasRelations := !common.IsEmpty(groups)
	hasFacts := !common.IsEmpty(c.Facts)

	total := len(c.Parents)
	if hasRelations {
		total++
	}

	if hasFacts {
		total++
	}

	switch {
	case total == 0:
		return Definition{Kind: DefinitionUnconditioned}
	case total == 1 && common.IsSingle(c.Parents):
		return Definition{Kind: DefinitionSingleParent, Parent: c.Parents[0]}
	case total == 1 && !c.Primitive:
		what := "relationships"
		if hasFacts {
			what = "concrete-domain facts"
		}

		a.diags.AddError(diagnostic.CodeInconsistentDefinition,
			fmt.Sprintf("fully defined concept has no parent and only %s as defining elements", what), c.ID)

		return Definition{Kind: DefinitionInconsistent}
	}

	ops := make([]Expr, 0, len(c.Parents)+len(c.Facts)+len(groups))
	for _, p := range c.Parents {
		ops = append(ops, ClassRef(p))
	}

	ops = append(ops, a.factExprs(c.Facts)...)

	for _, g := range groups {
		ops = append(ops, a.groupExpr(g))
	}

	return Definition{
		Kind:       DefinitionComposite,
		Expr:       And(ops...),
		Equivalent: !c.Primitive,
	}
}

// groupExpr renders a role group. A lone triple of a never-grouped attribute
// is left bare; everything else is wrapped in the role-group property.
func (a *assembler) groupExpr(g RoleGroup) Expr {
	if common.IsSingle(g.Triples) && a.model.IsNeverGrouped(g.Triples[0].Attribute) {
		return a.tripleExpr(g.Triples[0])
	}

	ops := make([]Expr, len(g.Triples))
	for i, t := range g.Triples {
		ops[i] = a.tripleExpr(t)
	}

	return Exists(a.model.Vocabulary.RoleGroup, And(ops...))
}

func (a *assembler) tripleExpr(t Triple) Expr {
	return Exists(t.Attribute, a.valueExpr(t.Value))
}

// valueExpr refers to a relationship value. A value that carries concrete
// facts itself becomes the intersection of the class and those facts; the
// facts' own values are not expanded further.
func (a *assembler) valueExpr(value string) Expr {
	c, ok := a.model.Concepts[value]
	if !ok || len(c.Facts) == 0 {
		return ClassRef(value)
	}

	return And(append([]Expr{ClassRef(value)}, a.factExprs(c.Facts)...)...)
}

func (a *assembler) factExprs(facts []ConcreteFact) []Expr {
	out := make([]Expr, 0, len(facts))
	for _, f := range sortedFacts(facts) {
		out = append(out, a.factExpr(f))
	}

	return out
}

// factExpr renders an equality fact as ∃roleGroup.(∃unit.Unit ⊓ ∃feature.{value}).
// The unit operand is left out when the fact has no unit or no unit role is
// configured.
func (a *assembler) factExpr(f ConcreteFact) Expr {
	value := &HasValue{Feature: f.Feature, Value: f.Value, Datatype: a.model.Features[f.Feature]}

	inner := Expr(value)
	if f.Unit != "" && a.model.Vocabulary.UnitRole != "" {
		inner = And(Exists(a.model.Vocabulary.UnitRole, ClassRef(f.Unit)), value)
	}

	return Exists(a.model.Vocabulary.RoleGroup, inner)
}
