package ontology

import (
	"rf2owl/internal/common"
	"rf2owl/internal/diagnostic"
)

// Vocabulary names the terminology concepts with a fixed meaning, plus the
// two fixed tables seeded before ingestion.
type Vocabulary struct {
	// IsA is the relationship type of hierarchy edges.
	IsA string
	// AttributeRoot is the concept whose descendants are roles.
	AttributeRoot string
	// RoleGroup is the property that wraps grouped relationships.
	RoleGroup string
	// Primitive is the definition status of primitive concepts.
	Primitive string
	// EqualityOperator is the only supported concrete-domain operator.
	EqualityOperator string
	// UnitRole links a concrete value to its unit concept.
	UnitRole string
	// FloatMarker and IntMarker are ancestors that type a feature as decimal or integer.
	FloatMarker string
	IntMarker   string
	// NeverGrouped lists attributes that are never wrapped in a role group when alone.
	NeverGrouped []string
	// RightIdentity maps an attribute r to s such that r ∘ s ⊑ r.
	RightIdentity map[string]string
}

// Concept is a terminology concept with everything attached to it during the build.
type Concept struct {
	ID    string
	Label string
	// Primitive concepts get necessary-only definitions, others necessary and sufficient.
	Primitive bool
	// Parents in input order.
	Parents []string
	// Relationships are the outgoing non-IS-A relationships.
	Relationships []Relationship
	// Facts are the concrete-domain facts attached to this concept.
	Facts []ConcreteFact
}

// Role is a concept found below the attribute root.
type Role struct {
	ID            string
	ParentRole    common.Optional[string]
	RightIdentity common.Optional[string]
}

// Relationship is an attribute-value pair of a component, with its group number.
type Relationship struct {
	Component string
	Attribute string
	Value     string
	Group     int
}

// Triple is a grouped attribute-value pair.
type Triple struct {
	Attribute string
	Value     string
	Component string
}

// RoleGroup is a set of triples that must hold together.
type RoleGroup struct {
	// Group is the source group number; 0 groups always hold a single triple.
	Group   int
	Triples []Triple
}

// ConcreteFact binds a feature of a component to a literal value.
type ConcreteFact struct {
	Component string
	Feature   string
	Operator  string
	Value     string
	Unit      string
}

// Datatype is the resolved literal type of a concrete-domain feature.
type Datatype int

const (
	DatatypeUnknown Datatype = iota
	DatatypeDecimal
	DatatypeInteger
)

// XSDName returns the local name of the XML Schema datatype, or "" when unknown.
func (d Datatype) XSDName() string {
	switch d {
	case DatatypeDecimal:
		return "decimal"
	case DatatypeInteger:
		return "integer"
	default:
		return ""
	}
}

// String returns a human-readable datatype name.
func (d Datatype) String() string {
	if name := d.XSDName(); name != "" {
		return name
	}

	return common.UnknownStr
}

//go:generate go tool stringer -type=DefinitionKind -trimprefix=Definition -output=definitionkind_string.go

// DefinitionKind selects how a concept's axiom is rendered.
type DefinitionKind int

const (
	// DefinitionUnconditioned concepts get a declaration and label only.
	DefinitionUnconditioned DefinitionKind = iota
	// DefinitionSingleParent concepts get one subclass axiom to Parent.
	DefinitionSingleParent
	// DefinitionComposite concepts get a subclass or equivalence axiom to Expr.
	DefinitionComposite
	// DefinitionInconsistent concepts were reported and get no axiom.
	DefinitionInconsistent
)

// Definition is the assembled axiom of one concept.
type Definition struct {
	Kind DefinitionKind
	// Parent is set for DefinitionSingleParent.
	Parent string
	// Expr is set for DefinitionComposite.
	Expr Expr
	// Equivalent selects the equivalence form over the subclass form.
	Equivalent bool
}

// Model is the assembled ontology. It is read-only once Build returns and may
// be shared by any number of serializers.
type Model struct {
	Vocabulary Vocabulary
	Concepts   map[string]*Concept
	Roles      map[string]*Role
	// Features maps every concrete-domain feature to its resolved datatype.
	Features map[string]Datatype
	// Definitions holds one entry per non-role concept.
	Definitions map[string]Definition
	// Diagnostics collects structural errors and advisory warnings.
	Diagnostics diagnostic.Diagnostics

	neverGrouped map[string]struct{}
}

// ConceptIDs returns the identifiers of all non-role concepts in lexicographic order.
func (m *Model) ConceptIDs() []string {
	return common.SortedKeys(m.Definitions)
}

// RoleIDs returns the role identifiers in lexicographic order.
func (m *Model) RoleIDs() []string {
	return common.SortedKeys(m.Roles)
}

// FeatureIDs returns the feature identifiers in lexicographic order.
func (m *Model) FeatureIDs() []string {
	return common.SortedKeys(m.Features)
}

// Label returns the label of id, or "" when none was read.
func (m *Model) Label(id string) string {
	if c, ok := m.Concepts[id]; ok {
		return c.Label
	}

	return ""
}

// IsNeverGrouped reports whether attribute is rendered without a role group when alone.
func (m *Model) IsNeverGrouped(attribute string) bool {
	_, ok := m.neverGrouped[attribute]
	return ok
}

// AuxiliaryProperties returns the object properties that are used in axioms
// but are not roles of the terminology: the role-group property and, when any
// concrete fact exists, the unit role.
func (m *Model) AuxiliaryProperties() []string {
	var out []string

	if _, ok := m.Roles[m.Vocabulary.RoleGroup]; !ok && m.Vocabulary.RoleGroup != "" {
		out = append(out, m.Vocabulary.RoleGroup)
	}

	if _, ok := m.Roles[m.Vocabulary.UnitRole]; !ok && m.Vocabulary.UnitRole != "" && len(m.Features) > 0 {
		out = append(out, m.Vocabulary.UnitRole)
	}

	return out
}
