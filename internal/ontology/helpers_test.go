package ontology

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func testVocabulary() Vocabulary {
	return Vocabulary{
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

// mustBuild builds b and dumps the model when assembly fails.
func mustBuild(t *testing.T, b *Builder) *Model {
	t.Helper()

	m, err := b.Build()
	require.NoError(t, err, spew.Sdump(b.concepts))

	return m
}

func rel(component, attribute, value string, group int) Relationship {
	return Relationship{Component: component, Attribute: attribute, Value: value, Group: group}
}
