package rf2

import "fmt"

// Concept is an active row of the concept snapshot.
type Concept struct {
	ID               string
	DefinitionStatus string
}

// Description is an active description row of a retained type.
type Description struct {
	ID        string
	ConceptID string
	TypeID    string
	Term      string
}

// Relationship is an active row of the relationship snapshot. IS-A rows are
// included; the model builder routes them by TypeID.
type Relationship struct {
	ID                 string
	SourceID           string
	DestinationID      string
	Group              int
	TypeID             string
	CharacteristicType string
}

// ConcreteValue is an active concrete-domain row. RefsetID identifies the feature.
type ConcreteValue struct {
	RefsetID    string
	ComponentID string
	UnitID      string
	OperatorID  string
	Value       string
}

// Snapshot holds every record read from one RF2 release.
type Snapshot struct {
	Concepts       []Concept
	Descriptions   []Description
	Relationships  []Relationship
	ConcreteValues []ConcreteValue
}

// Source names the four snapshot files.
type Source struct {
	Concepts        string
	Descriptions    string
	Relationships   string
	ConcreteDomains string
}

// Options filters rows while reading.
type Options struct {
	// DescriptionType keeps only descriptions of this type (the fully specified name).
	DescriptionType string
	// ExcludedCharacteristicTypes drops relationships with any of these characteristic types.
	ExcludedCharacteristicTypes []string
}

// ParseError reports a malformed row.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}
