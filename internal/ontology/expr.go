package ontology

import (
	"fmt"
	"strings"
)

// Expr is a class expression built by the assembler. The concrete types are
// ClassRef, *Intersection, *Existential and *HasValue; serializers switch on them.
type Expr interface {
	fmt.Stringer
	expr()
}

// ClassRef is a named class.
type ClassRef string

func (ClassRef) expr() {}

func (c ClassRef) String() string {
	return string(c)
}

// Intersection is a concept of the form C1 ⊓ ... ⊓ Cn, n >= 2.
type Intersection struct {
	Operands []Expr
}

func (*Intersection) expr() {}

func (in *Intersection) String() string {
	parts := make([]string, len(in.Operands))
	for i, op := range in.Operands {
		parts[i] = op.String()
	}

	return "(" + strings.Join(parts, " ⊓ ") + ")"
}

// Existential is a concept of the form ∃r.C.
type Existential struct {
	Property string
	Filler   Expr
}

func (*Existential) expr() {}

func (ex *Existential) String() string {
	return fmt.Sprintf("∃%s.%v", ex.Property, ex.Filler)
}

// HasValue restricts a feature to a single literal.
type HasValue struct {
	Feature  string
	Value    string
	Datatype Datatype
}

func (*HasValue) expr() {}

func (hv *HasValue) String() string {
	if name := hv.Datatype.XSDName(); name != "" {
		return fmt.Sprintf("∃%s.{%s^^%s}", hv.Feature, hv.Value, name)
	}

	return fmt.Sprintf("∃%s.{%s}", hv.Feature, hv.Value)
}

// And returns the intersection of ops, or the single operand itself.
func And(ops ...Expr) Expr {
	if len(ops) == 1 {
		return ops[0]
	}

	return &Intersection{Operands: ops}
}

// Exists returns ∃property.filler.
func Exists(property string, filler Expr) Expr {
	return &Existential{Property: property, Filler: filler}
}
