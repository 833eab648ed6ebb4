package render

import (
	"fmt"
	"strings"

	"rf2owl/internal/ontology"
)

// functional writes OWL 2 functional-style syntax. Entities are written as
// prefixed names against the default prefix, which is the entity IRI.
type functional struct{}

func (functional) header(p *printer, h Header) error {
	return executeHeader(p, functionalHeaderTemplate, h)
}

func (functional) auxiliaryProperty(p *printer, _ *ontology.Model, id string) {
	p.line(0, "Declaration(ObjectProperty(:%s))", id)
}

func (f functional) role(p *printer, m *ontology.Model, r *ontology.Role) {
	p.line(0, "Declaration(ObjectProperty(:%s))", r.ID)
	f.label(p, m, r.ID)

	if parent, ok := r.ParentRole.Get(); ok {
		p.line(0, "SubObjectPropertyOf(:%s :%s)", r.ID, parent)
	}

	if rid, ok := r.RightIdentity.Get(); ok {
		p.line(0, "SubObjectPropertyOf(ObjectPropertyChain(:%s :%s) :%s)", r.ID, rid, r.ID)
	}
}

func (functional) feature(p *printer, _ *ontology.Model, id string, dt ontology.Datatype) {
	p.line(0, "Declaration(DataProperty(:%s))", id)

	if name := dt.XSDName(); name != "" {
		p.line(0, "DataPropertyRange(:%s xsd:%s)", id, name)
	}
}

func (f functional) class(p *printer, m *ontology.Model, id string, def ontology.Definition) {
	p.line(0, "Declaration(Class(:%s))", id)
	f.label(p, m, id)

	switch def.Kind {
	case ontology.DefinitionSingleParent:
		p.line(0, "SubClassOf(:%s :%s)", id, def.Parent)
	case ontology.DefinitionComposite:
		op := "SubClassOf"
		if def.Equivalent {
			op = "EquivalentClasses"
		}

		p.line(0, "%s(:%s %s)", op, id, f.expr(def.Expr))
	}
}

func (functional) footer(p *printer) {
	p.line(0, ")")
}

func (functional) label(p *printer, m *ontology.Model, id string) {
	if label := m.Label(id); label != "" {
		p.line(0, "AnnotationAssertion(rdfs:label :%s %s)", id, quoteLiteral(label))
	}
}

func (f functional) expr(e ontology.Expr) string {
	switch t := e.(type) {
	case ontology.ClassRef:
		return ":" + string(t)
	case *ontology.Intersection:
		parts := make([]string, len(t.Operands))
		for i, op := range t.Operands {
			parts[i] = f.expr(op)
		}

		return "ObjectIntersectionOf(" + strings.Join(parts, " ") + ")"
	case *ontology.Existential:
		return "ObjectSomeValuesFrom(:" + t.Property + " " + f.expr(t.Filler) + ")"
	case *ontology.HasValue:
		literal := quoteLiteral(t.Value)
		if name := t.Datatype.XSDName(); name != "" {
			literal += "^^xsd:" + name
		}

		return "DataHasValue(:" + t.Feature + " " + literal + ")"
	default:
		panic(fmt.Sprintf("render: unexpected expression type %T", e))
	}
}
