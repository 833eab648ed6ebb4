package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"rf2owl/internal/ontology"
)

const testEntityIRI = "http://snomed.info/id/"

func testVocabulary() ontology.Vocabulary {
	return ontology.Vocabulary{
		IsA:              "isa",
		AttributeRoot:    "attr",
		RoleGroup:        "rg",
		Primitive:        "prim",
		EqualityOperator: "eq",
		UnitRole:         "unit",
		FloatMarker:      "float",
		IntMarker:        "int",
		NeverGrouped:     []string{"partOf"},
		RightIdentity:    map[string]string{"hasIngredient": "isModificationOf"},
	}
}

func testHeader() Header {
	return NewHeader("http://snomed.info/sct/900000000000207008", testEntityIRI, "20240101",
		"concepts.txt", "relationships.txt")
}

// fixtureModel is a small terminology with one concept per definition shape:
//
//	A     primitive, parent P, one role group {hasFinding B, hasSeverity C}
//	drug  primitive, parent P, strength = 250 mg (decimal)
//	strength  single parent float
//	N     fully defined, parent P, never-grouped partOf D
//	E     fully defined, only partOf D (inconsistent)
//	P B C D mg  unconditioned
//	attr float  unconditioned, declared only because they are referenced
func fixtureModel(t *testing.T) *ontology.Model {
	t.Helper()

	b := ontology.NewBuilder(testVocabulary())

	for _, id := range []string{"P", "A", "B", "C", "D", "drug", "mg", "strength"} {
		b.AddConcept(id, true)
	}

	b.AddConcept("N", false)
	b.AddConcept("E", false)

	b.SetLabel("P", "Parent")
	b.SetLabel("A", "Alpha")
	b.SetLabel("B", "first\nsecond")
	b.SetLabel("D", `a "b" \ <c>&`)

	for _, role := range []string{"hasFinding", "hasSeverity", "hasIngredient", "isModificationOf", "partOf"} {
		b.AddConcept(role, true)
		b.AddIsA(role, "attr")
	}

	b.AddConcept("hasSevereFinding", true)
	b.AddIsA("hasSevereFinding", "hasFinding")

	b.AddIsA("A", "P")
	b.AddRelationship(ontology.Relationship{Component: "A", Attribute: "hasFinding", Value: "B", Group: 5})
	b.AddRelationship(ontology.Relationship{Component: "A", Attribute: "hasSeverity", Value: "C", Group: 5})

	b.AddIsA("drug", "P")
	b.AddIsA("strength", "float")
	require.NoError(t, b.AddConcreteFact(ontology.ConcreteFact{
		Component: "drug", Feature: "strength", Operator: "eq", Value: "250", Unit: "mg",
	}))

	b.AddIsA("N", "P")
	b.AddRelationship(ontology.Relationship{Component: "N", Attribute: "partOf", Value: "D"})
	b.AddRelationship(ontology.Relationship{Component: "E", Attribute: "partOf", Value: "D"})

	m, err := b.Build()
	require.NoError(t, err)

	return m
}

func renderMode(t *testing.T, mode string, m *ontology.Model) string {
	t.Helper()

	s, err := New(mode)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf, m, testHeader()), spew.Sdump(m.Definitions))

	return buf.String()
}

// xmlBlock returns the top-level RDF/XML element describing id.
func xmlBlock(t *testing.T, out, element, id string) string {
	t.Helper()

	start := strings.Index(out, `<`+element+` rdf:about="`+testEntityIRI+id+`"`)
	require.GreaterOrEqual(t, start, 0, "no %s element for %s", element, id)

	end := strings.Index(out[start:], "\n\n")
	require.Greater(t, end, 0)

	return out[start : start+end]
}

var declaredClass = map[string]*regexp.Regexp{
	ModeKRSS:       regexp.MustCompile(`(?m)^\(define-(?:primitive-)?concept :([^ )]+)`),
	ModeOWL:        regexp.MustCompile(`(?m)^    <owl:Class rdf:about="` + regexp.QuoteMeta(testEntityIRI) + `([^"]+)"`),
	ModeFunctional: regexp.MustCompile(`Declaration\(Class\(:([^)]+)\)\)`),
}

func declaredClasses(mode, out string) []string {
	var ids []string
	for _, match := range declaredClass[mode].FindAllStringSubmatch(out, -1) {
		ids = append(ids, match[1])
	}

	return ids
}
