package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rf2owl/internal/common"
	"rf2owl/internal/diagnostic"
)

func TestResolveRoles_Hierarchy(t *testing.T) {
	b := NewBuilder(testVocabulary())
	b.AddIsA("attr", "root")
	b.AddIsA("hasIngredient", "attr")
	b.AddIsA("hasActiveIngredient", "hasIngredient")
	b.AddIsA("partOf", "attr")
	b.AddIsA("heart", "root")

	m := mustBuild(t, b)

	assert.Equal(t, []string{"hasActiveIngredient", "hasIngredient", "partOf"}, m.RoleIDs())

	assert.Equal(t, &Role{
		ID:            "hasIngredient",
		ParentRole:    common.None[string](),
		RightIdentity: common.Some("isModificationOf"),
	}, m.Roles["hasIngredient"])

	assert.Equal(t, &Role{
		ID:         "hasActiveIngredient",
		ParentRole: common.Some("hasIngredient"),
	}, m.Roles["hasActiveIngredient"])

	// Neither the root nor concepts outside its subtree are roles.
	assert.NotContains(t, m.Roles, "attr")
	assert.NotContains(t, m.Roles, "heart")

	// Roles get no class definition.
	assert.NotContains(t, m.Definitions, "hasIngredient")
	assert.Contains(t, m.Definitions, "heart")
	assert.Contains(t, m.Definitions, "attr")
}

func TestResolveRoles_ParentConflict(t *testing.T) {
	b := NewBuilder(testVocabulary())
	b.AddIsA("a", "attr")
	b.AddIsA("b", "attr")
	b.AddIsA("c", "b")
	b.AddIsA("c", "a")

	m := mustBuild(t, b)

	// First visit in sorted order wins: attr -> a -> c.
	parent, ok := m.Roles["c"].ParentRole.Get()
	require.True(t, ok)
	assert.Equal(t, "a", parent)

	assert.Equal(t, []string{"c"}, m.Diagnostics.Subjects(diagnostic.CodeRoleParentConflict))
}

func TestResolveRoles_SharedSubtreeVisitedOnce(t *testing.T) {
	b := NewBuilder(testVocabulary())
	b.AddIsA("a", "attr")
	b.AddIsA("b", "attr")
	b.AddIsA("c", "a")
	b.AddIsA("c", "b")
	b.AddIsA("d", "c")

	m := mustBuild(t, b)

	assert.Len(t, m.Roles, 4)
	assert.Equal(t, common.Some("c"), m.Roles["d"].ParentRole)
	assert.Len(t, m.Diagnostics.Errors, 1)
}

func TestResolveRoles_Cycle(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]string
		role  string
	}{
		{
			name:  "between roles",
			edges: [][2]string{{"a", "attr"}, {"b", "a"}, {"a", "b"}},
			role:  "a",
		},
		{
			name:  "back to root",
			edges: [][2]string{{"a", "attr"}, {"attr", "a"}},
			role:  "attr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(testVocabulary())
			for _, e := range tt.edges {
				b.AddIsA(e[0], e[1])
			}

			_, err := b.Build()
			require.ErrorIs(t, err, ErrRoleCycle)

			var cycle *CycleError
			require.ErrorAs(t, err, &cycle)
			assert.Equal(t, tt.role, cycle.Role)
		})
	}
}

func TestResolveRoles_NoAttributeRoot(t *testing.T) {
	vocab := testVocabulary()
	vocab.AttributeRoot = ""

	b := NewBuilder(vocab)
	b.AddIsA("a", "attr")

	m := mustBuild(t, b)
	assert.Empty(t, m.Roles)
}
