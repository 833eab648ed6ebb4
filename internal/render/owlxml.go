package render

import (
	"fmt"

	"rf2owl/internal/ontology"
)

const xsdNamespace = "http://www.w3.org/2001/XMLSchema#"

// owlXML writes OWL in RDF/XML with full entity IRIs.
type owlXML struct{}

func (owlXML) header(p *printer, h Header) error {
	return executeHeader(p, rdfXMLHeaderTemplate, h)
}

func (x owlXML) auxiliaryProperty(p *printer, _ *ontology.Model, id string) {
	p.line(1, `<owl:ObjectProperty rdf:about="%s"/>`, x.about(p, id))
	p.blank()
}

func (x owlXML) role(p *printer, m *ontology.Model, r *ontology.Role) {
	parent, hasParent := r.ParentRole.Get()
	rid, hasIdentity := r.RightIdentity.Get()
	label := m.Label(r.ID)

	if !hasParent && !hasIdentity && label == "" {
		x.auxiliaryProperty(p, m, r.ID)
		return
	}

	p.line(1, `<owl:ObjectProperty rdf:about="%s">`, x.about(p, r.ID))
	x.label(p, label)

	if hasParent {
		p.line(2, `<rdfs:subPropertyOf rdf:resource="%s"/>`, x.about(p, parent))
	}

	if hasIdentity {
		p.line(2, `<owl:propertyChainAxiom rdf:parseType="Collection">`)
		p.line(3, `<rdf:Description rdf:about="%s"/>`, x.about(p, r.ID))
		p.line(3, `<rdf:Description rdf:about="%s"/>`, x.about(p, rid))
		p.line(2, `</owl:propertyChainAxiom>`)
	}

	p.line(1, `</owl:ObjectProperty>`)
	p.blank()
}

func (x owlXML) feature(p *printer, _ *ontology.Model, id string, _ ontology.Datatype) {
	p.line(1, `<owl:DatatypeProperty rdf:about="%s"/>`, x.about(p, id))
	p.blank()
}

func (x owlXML) class(p *printer, m *ontology.Model, id string, def ontology.Definition) {
	label := m.Label(id)
	hasAxiom := def.Kind == ontology.DefinitionSingleParent || def.Kind == ontology.DefinitionComposite

	if !hasAxiom && label == "" {
		p.line(1, `<owl:Class rdf:about="%s"/>`, x.about(p, id))
		p.blank()

		return
	}

	p.line(1, `<owl:Class rdf:about="%s">`, x.about(p, id))
	x.label(p, label)

	switch def.Kind {
	case ontology.DefinitionSingleParent:
		p.line(2, `<rdfs:subClassOf rdf:resource="%s"/>`, x.about(p, def.Parent))
	case ontology.DefinitionComposite:
		tag := "rdfs:subClassOf"
		if def.Equivalent {
			tag = "owl:equivalentClass"
		}

		x.slot(p, 2, tag, def.Expr)
	}

	p.line(1, `</owl:Class>`)
	p.blank()
}

func (owlXML) footer(p *printer) {
	p.line(0, `</rdf:RDF>`)
}

func (owlXML) label(p *printer, label string) {
	if label != "" {
		p.line(2, `<rdfs:label>%s</rdfs:label>`, xmlEscape(label))
	}
}

func (owlXML) about(p *printer, id string) string {
	return xmlEscape(p.entity(id))
}

// slot writes e as the content of a property element. Named classes are
// written as a resource reference, anything else as a nested description.
func (x owlXML) slot(p *printer, depth int, tag string, e ontology.Expr) {
	if ref, ok := e.(ontology.ClassRef); ok {
		p.line(depth, `<%s rdf:resource="%s"/>`, tag, x.about(p, string(ref)))
		return
	}

	p.line(depth, `<%s>`, tag)
	x.expr(p, depth+1, e)
	p.line(depth, `</%s>`, tag)
}

func (x owlXML) expr(p *printer, depth int, e ontology.Expr) {
	switch t := e.(type) {
	case ontology.ClassRef:
		p.line(depth, `<rdf:Description rdf:about="%s"/>`, x.about(p, string(t)))
	case *ontology.Intersection:
		p.line(depth, `<owl:Class>`)
		p.line(depth+1, `<owl:intersectionOf rdf:parseType="Collection">`)

		for _, op := range t.Operands {
			x.expr(p, depth+2, op)
		}

		p.line(depth+1, `</owl:intersectionOf>`)
		p.line(depth, `</owl:Class>`)
	case *ontology.Existential:
		p.line(depth, `<owl:Restriction>`)
		p.line(depth+1, `<owl:onProperty rdf:resource="%s"/>`, x.about(p, t.Property))
		x.slot(p, depth+1, "owl:someValuesFrom", t.Filler)
		p.line(depth, `</owl:Restriction>`)
	case *ontology.HasValue:
		p.line(depth, `<owl:Restriction>`)
		p.line(depth+1, `<owl:onProperty rdf:resource="%s"/>`, x.about(p, t.Feature))

		if name := t.Datatype.XSDName(); name != "" {
			p.line(depth+1, `<owl:hasValue rdf:datatype="%s%s">%s</owl:hasValue>`, xsdNamespace, name, xmlEscape(t.Value))
		} else {
			p.line(depth+1, `<owl:hasValue>%s</owl:hasValue>`, xmlEscape(t.Value))
		}

		p.line(depth, `</owl:Restriction>`)
	default:
		panic(fmt.Sprintf("render: unexpected expression type %T", e))
	}
}
