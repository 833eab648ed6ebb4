// Package render serializes an assembled ontology model.
//
// Three syntaxes are supported: KRSS, OWL RDF/XML and OWL functional-style
// syntax. All of them are driven by the same traversal, so they always emit
// the same set of entities and axioms in the same order: auxiliary object
// properties, roles, concrete-domain features, then concepts, each sorted by
// identifier.
//
// Only the OWL formats carry a metadata header. Output is built in memory
// and written in one call, so a failure never leaves a partial document.
package render
