package render

import (
	"fmt"
	"strings"

	"rf2owl/internal/ontology"
)

// krss writes the KRSS description-logic syntax. Labels become comments.
type krss struct{}

func (krss) header(*printer, Header) error {
	return nil
}

func (krss) auxiliaryProperty(p *printer, _ *ontology.Model, id string) {
	p.line(0, "(define-primitive-role :%s)", id)
}

func (k krss) role(p *printer, m *ontology.Model, r *ontology.Role) {
	k.label(p, m, r.ID)

	var b strings.Builder
	b.WriteString("(define-primitive-role :" + r.ID)

	if parent, ok := r.ParentRole.Get(); ok {
		b.WriteString(" :parent :" + parent)
	}

	if rid, ok := r.RightIdentity.Get(); ok {
		b.WriteString(" :right-identity :" + rid)
	}

	b.WriteString(")")
	p.line(0, "%s", b.String())
}

func (krss) feature(p *printer, _ *ontology.Model, id string, _ ontology.Datatype) {
	p.line(0, "(define-concrete-domain-attribute :%s)", id)
}

func (k krss) class(p *printer, m *ontology.Model, id string, def ontology.Definition) {
	k.label(p, m, id)

	switch def.Kind {
	case ontology.DefinitionSingleParent:
		p.line(0, "(define-primitive-concept :%s :%s)", id, def.Parent)
	case ontology.DefinitionComposite:
		op := "define-primitive-concept"
		if def.Equivalent {
			op = "define-concept"
		}

		p.line(0, "(%s :%s %s)", op, id, k.expr(def.Expr))
	default:
		p.line(0, "(define-primitive-concept :%s)", id)
	}
}

func (krss) footer(*printer) {}

func (krss) label(p *printer, m *ontology.Model, id string) {
	if label := m.Label(id); label != "" {
		p.line(0, "; :%s %s", id, strings.ReplaceAll(label, "\n", " "))
	}
}

func (k krss) expr(e ontology.Expr) string {
	switch t := e.(type) {
	case ontology.ClassRef:
		return ":" + string(t)
	case *ontology.Intersection:
		parts := make([]string, len(t.Operands))
		for i, op := range t.Operands {
			parts[i] = k.expr(op)
		}

		return "(and " + strings.Join(parts, " ") + ")"
	case *ontology.Existential:
		return "(some :" + t.Property + " " + k.expr(t.Filler) + ")"
	case *ontology.HasValue:
		return "(= :" + t.Feature + " " + t.Value + ")"
	default:
		panic(fmt.Sprintf("render: unexpected expression type %T", e))
	}
}
