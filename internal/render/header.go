package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"
)

// Header carries the ontology metadata written before the axioms of both OWL
// formats. KRSS has no metadata block.
type Header struct {
	// OntologyIRI identifies the ontology.
	OntologyIRI string
	// EntityIRI is prepended to every terminology identifier.
	EntityIRI string
	// Version is written as owl:versionInfo.
	Version string
	// Sources are the input file names quoted in the comment.
	Sources [2]string
	// GenerationID is derived from the fields above.
	GenerationID uuid.UUID
}

// NewHeader builds a Header. The generation id is a name-based UUID, so the
// same inputs always yield the same header.
func NewHeader(ontologyIRI, entityIRI, version, firstSource, secondSource string) Header {
	name := strings.Join([]string{ontologyIRI, entityIRI, version, firstSource, secondSource}, "\n")

	return Header{
		OntologyIRI:  ontologyIRI,
		EntityIRI:    entityIRI,
		Version:      version,
		Sources:      [2]string{firstSource, secondSource},
		GenerationID: uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)),
	}
}

// Comment is the descriptive ontology comment.
func (h Header) Comment() string {
	return fmt.Sprintf("Generated by rf2owl from %s and %s (generation %s)",
		h.Sources[0], h.Sources[1], h.GenerationID)
}

var headerFuncs = template.FuncMap{
	"xml":     xmlEscape,
	"literal": quoteLiteral,
}

var functionalHeaderTemplate = template.Must(template.New("functional").Funcs(headerFuncs).Parse(
	`Prefix(:=<{{.EntityIRI}}>)
Prefix(owl:=<http://www.w3.org/2002/07/owl#>)
Prefix(rdf:=<http://www.w3.org/1999/02/22-rdf-syntax-ns#>)
Prefix(xml:=<http://www.w3.org/XML/1998/namespace>)
Prefix(xsd:=<http://www.w3.org/2001/XMLSchema#>)
Prefix(rdfs:=<http://www.w3.org/2000/01/rdf-schema#>)


Ontology(<{{.OntologyIRI}}>
Annotation(rdfs:comment {{literal .Comment}})
Annotation(owl:versionInfo {{literal .Version}})

`))

var rdfXMLHeaderTemplate = template.Must(template.New("rdfxml").Funcs(headerFuncs).Parse(
	`<?xml version="1.0"?>
<rdf:RDF xmlns="{{xml .EntityIRI}}"
     xml:base="{{xml .EntityIRI}}"
     xmlns:owl="http://www.w3.org/2002/07/owl#"
     xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
     xmlns:xml="http://www.w3.org/XML/1998/namespace"
     xmlns:xsd="http://www.w3.org/2001/XMLSchema#"
     xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#">
    <owl:Ontology rdf:about="{{xml .OntologyIRI}}">
        <rdfs:comment>{{xml .Comment}}</rdfs:comment>
        <owl:versionInfo>{{xml .Version}}</owl:versionInfo>
    </owl:Ontology>

`))

func executeHeader(p *printer, tmpl *template.Template, h Header) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, h); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	p.buf.Write(buf.Bytes())

	return nil
}

// xmlEscape escapes text and attribute values.
func xmlEscape(s string) string {
	var b strings.Builder
	// EscapeText only fails on write errors, which strings.Builder never returns.
	_ = xml.EscapeText(&b, []byte(s))

	return b.String()
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quoteLiteral renders s as a functional-syntax string literal.
func quoteLiteral(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}
