// Package ontology builds a description-logic model from terminology records.
//
// A Builder collects concepts, IS-A edges, attribute relationships and
// concrete-domain facts. Build then runs the remaining stages over the fully
// populated tables:
//
//   - roles: every descendant of the attribute root becomes a role with an
//     optional parent role and an optional right identity (r ∘ s ⊑ r);
//   - grouping: relationships are partitioned into role groups, where group
//     number 0 never merges two relationships;
//   - datatypes: each concrete-domain feature is typed decimal or integer by a
//     marker concept among its ancestors;
//   - assembly: each non-role concept gets a Definition. Concepts without
//     defining elements are only declared, a single parent gives one subclass
//     axiom, and everything else becomes an intersection of parents, concrete
//     facts and role groups in subclass (primitive) or equivalence form.
//
// The resulting Model holds the class expressions as a small AST (ClassRef,
// Intersection, Existential, HasValue) so every output syntax renders the
// same logical content.
package ontology
