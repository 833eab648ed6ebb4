package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"rf2owl/internal/common"
	"rf2owl/internal/ontology"
)

// Output modes.
const (
	ModeKRSS       = "krss"
	ModeOWL        = "owl"
	ModeFunctional = "owlf"
)

// ErrUnknownMode is returned by New for a mode that is not one of Modes.
var ErrUnknownMode = errors.New("unknown output mode")

// Serializer renders an assembled model in one concrete syntax.
type Serializer interface {
	// Name returns the mode the serializer is selected by.
	Name() string
	// Render writes the complete ontology for m to w.
	Render(w io.Writer, m *ontology.Model, h Header) error
}

// Modes returns the supported output modes.
func Modes() []string {
	return []string{ModeKRSS, ModeOWL, ModeFunctional}
}

// New returns the serializer for mode (case-insensitive).
func New(mode string) (Serializer, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))

	switch normalized {
	case ModeKRSS:
		return newSerializer(ModeKRSS, krss{}), nil
	case ModeOWL:
		return newSerializer(ModeOWL, owlXML{}), nil
	case ModeFunctional:
		return newSerializer(ModeFunctional, functional{}), nil
	default:
		if guess, ok := common.Closest(normalized, Modes(), 1); ok {
			return nil, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownMode, mode, guess)
		}

		return nil, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownMode, mode, strings.Join(Modes(), ", "))
	}
}

// syntax is implemented by each backend. The shared driver decides what is
// written and in which order; a syntax only decides how.
type syntax interface {
	header(p *printer, h Header) error
	auxiliaryProperty(p *printer, m *ontology.Model, id string)
	role(p *printer, m *ontology.Model, r *ontology.Role)
	feature(p *printer, m *ontology.Model, id string, dt ontology.Datatype)
	class(p *printer, m *ontology.Model, id string, def ontology.Definition)
	footer(p *printer)
}

type serializer struct {
	name   string
	syntax syntax
}

func newSerializer(name string, s syntax) *serializer {
	return &serializer{name: name, syntax: s}
}

func (s *serializer) Name() string {
	return s.name
}

// Render visits auxiliary properties, roles, features and concepts, each in
// lexicographic identifier order, so output is byte-identical across runs.
func (s *serializer) Render(w io.Writer, m *ontology.Model, h Header) error {
	if h.EntityIRI == "" {
		return errors.New("render: header entity IRI is empty")
	}

	p := &printer{iri: h.EntityIRI}

	if err := s.syntax.header(p, h); err != nil {
		return fmt.Errorf("rendering %s header: %w", s.name, err)
	}

	for _, id := range m.AuxiliaryProperties() {
		s.syntax.auxiliaryProperty(p, m, id)
	}

	for _, id := range m.RoleIDs() {
		s.syntax.role(p, m, m.Roles[id])
	}

	for _, id := range m.FeatureIDs() {
		s.syntax.feature(p, m, id, m.Features[id])
	}

	for _, id := range m.ConceptIDs() {
		s.syntax.class(p, m, id, m.Definitions[id])
	}

	s.syntax.footer(p)

	if _, err := w.Write(p.buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s output: %w", s.name, err)
	}

	return nil
}

// printer accumulates output lines.
type printer struct {
	buf bytes.Buffer
	iri string
}

// line writes one indented line; depth counts four-space steps.
func (p *printer) line(depth int, format string, args ...any) {
	p.buf.WriteString(strings.Repeat("    ", depth))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *printer) blank() {
	p.buf.WriteByte('\n')
}

// entity returns the full IRI of a terminology identifier.
func (p *printer) entity(id string) string {
	return p.iri + id
}
