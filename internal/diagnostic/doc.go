// Package diagnostic provides structured warnings and errors collected while
// an ontology model is built.
//
// Structural problems (a fully defined concept without enough defining
// elements, a role reached from two different parent roles) are recorded per
// subject so the pipeline can finish every unaffected concept and report all
// offenders at the end. Advisory findings, such as a concrete-domain feature
// whose datatype cannot be resolved, are recorded as warnings.
package diagnostic
