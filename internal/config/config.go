package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"rf2owl/internal/common"
	"rf2owl/internal/ontology"
)

// Environment variables that override file values.
const (
	EnvOntologyIRI   = "RF2OWL_ONTOLOGY_IRI"
	EnvEntityIRI     = "RF2OWL_ENTITY_IRI"
	EnvVersion       = "RF2OWL_VERSION"
	EnvAttributeRoot = "RF2OWL_ATTRIBUTE_ROOT"
)

// Config holds the identifiers and fixed tables that drive a translation run.
type Config struct {
	Ontology   OntologyConfig   `yaml:"ontology"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Input      InputConfig      `yaml:"input"`
	// NeverGrouped lists attributes rendered without a role group when alone.
	NeverGrouped []string `yaml:"never_grouped"`
	// RightIdentity maps an attribute to its right-identity attribute.
	RightIdentity map[string]string `yaml:"right_identity"`
}

// OntologyConfig describes the emitted ontology header.
type OntologyConfig struct {
	// IRI identifies the ontology itself.
	IRI string `yaml:"iri"`
	// EntityIRI is the namespace every concept identifier is appended to.
	EntityIRI string `yaml:"entity_iri"`
	// Version is written as owl:versionInfo.
	Version string `yaml:"version"`
}

// VocabularyConfig names the concepts with a fixed meaning in the terminology.
type VocabularyConfig struct {
	IsA                string `yaml:"is_a"`
	AttributeRoot      string `yaml:"attribute_root"`
	RoleGroup          string `yaml:"role_group"`
	FullySpecifiedName string `yaml:"fully_specified_name"`
	Primitive          string `yaml:"primitive"`
	EqualityOperator   string `yaml:"equality_operator"`
	UnitRole           string `yaml:"unit_role"`
	FloatMarker        string `yaml:"float_marker"`
	IntMarker          string `yaml:"int_marker"`
}

// InputConfig filters the RF2 rows before they reach the model builder.
type InputConfig struct {
	// ExcludedCharacteristicTypes drops relationships with these characteristic types.
	ExcludedCharacteristicTypes []string `yaml:"excluded_characteristic_types,omitempty"`
}

// Default returns the configuration for the SNOMED CT international edition.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads an optional .env file, the YAML file at path (defaults when path
// is empty), applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	var (
		cfg *Config
		err error
	)

	if path == "" {
		cfg = Default()
	} else {
		cfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Omitted fields take default values.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	override := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	override(EnvOntologyIRI, &c.Ontology.IRI)
	override(EnvEntityIRI, &c.Ontology.EntityIRI)
	override(EnvVersion, &c.Ontology.Version)
	override(EnvAttributeRoot, &c.Vocabulary.AttributeRoot)
}

// Validate reports missing identifiers the pipeline cannot run without.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"ontology.entity_iri", c.Ontology.EntityIRI},
		{"vocabulary.is_a", c.Vocabulary.IsA},
		{"vocabulary.attribute_root", c.Vocabulary.AttributeRoot},
		{"vocabulary.role_group", c.Vocabulary.RoleGroup},
		{"vocabulary.fully_specified_name", c.Vocabulary.FullySpecifiedName},
		{"vocabulary.primitive", c.Vocabulary.Primitive},
		{"vocabulary.equality_operator", c.Vocabulary.EqualityOperator},
	}

	var errs []error

	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.name))
		}
	}

	for _, attr := range common.SortedKeys(c.RightIdentity) {
		if rid := c.RightIdentity[attr]; attr == "" || rid == "" {
			errs = append(errs, fmt.Errorf("right_identity entry %q: %q is incomplete", attr, rid))
		}
	}

	return errors.Join(errs...)
}

// MarkerWarning describes the problem when concrete-domain rows are present
// but neither datatype marker is configured, so every feature would be written
// untyped. It returns "" otherwise.
func (c *Config) MarkerWarning(concreteRows int) string {
	if concreteRows == 0 || c.Vocabulary.FloatMarker != "" || c.Vocabulary.IntMarker != "" {
		return ""
	}

	return fmt.Sprintf("%d concrete-domain rows but vocabulary.float_marker and vocabulary.int_marker are unset; "+
		"all values are written without a datatype", concreteRows)
}

// OntologyVocabulary converts the configuration into the model builder's vocabulary.
func (c *Config) OntologyVocabulary() ontology.Vocabulary {
	return ontology.Vocabulary{
		IsA:              c.Vocabulary.IsA,
		AttributeRoot:    c.Vocabulary.AttributeRoot,
		RoleGroup:        c.Vocabulary.RoleGroup,
		Primitive:        c.Vocabulary.Primitive,
		EqualityOperator: c.Vocabulary.EqualityOperator,
		UnitRole:         c.Vocabulary.UnitRole,
		FloatMarker:      c.Vocabulary.FloatMarker,
		IntMarker:        c.Vocabulary.IntMarker,
		NeverGrouped:     append([]string(nil), c.NeverGrouped...),
		RightIdentity:    maps.Clone(c.RightIdentity),
	}
}

// applyDefaults fills in default values for omitted fields.
func applyDefaults(c *Config) {
	setDefault := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}

	setDefault(&c.Ontology.IRI, "http://snomed.info/sct/900000000000207008")
	setDefault(&c.Ontology.EntityIRI, "http://snomed.info/id/")
	setDefault(&c.Ontology.Version, "unversioned")

	setDefault(&c.Vocabulary.IsA, "116680003")
	setDefault(&c.Vocabulary.AttributeRoot, "410662002")
	setDefault(&c.Vocabulary.RoleGroup, "609096000")
	setDefault(&c.Vocabulary.FullySpecifiedName, "900000000000003001")
	setDefault(&c.Vocabulary.Primitive, "900000000000074008")
	setDefault(&c.Vocabulary.EqualityOperator, "276136004")
	setDefault(&c.Vocabulary.UnitRole, "246514001")

	if c.NeverGrouped == nil {
		// part of, laterality, has active ingredient, has dose form
		c.NeverGrouped = []string{"123005000", "272741003", "127489000", "411116001"}
	}

	if c.RightIdentity == nil {
		// direct substance and has active ingredient compose with "is modification of"
		c.RightIdentity = map[string]string{
			"363701004": "738774007",
			"127489000": "738774007",
		}
	}
}
