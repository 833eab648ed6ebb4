// Package config loads the run configuration: the ontology header values, the
// terminology identifiers with a fixed meaning (IS-A, attribute root, role
// group, equality operator, datatype markers) and the two fixed tables
// (never-grouped attributes and right identities).
//
// Configuration is layered:
//
//  1. built-in defaults for the SNOMED CT international edition;
//  2. an optional YAML file, where omitted fields keep their defaults;
//  3. environment variables (optionally from a .env file).
//
// Example:
//
//	ontology:
//	  iri: http://snomed.info/sct/900000000000207008
//	  version: "20240101"
//	vocabulary:
//	  float_marker: "999000011000001104"
//	  int_marker: "999000021000001108"
//	input:
//	  excluded_characteristic_types: ["900000000000227009"]
//	never_grouped: [123005000, 272741003]
//	right_identity:
//	  "363701004": "738774007"
package config
