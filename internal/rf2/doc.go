// Package rf2 reads SNOMED CT RF2 snapshot files into typed records.
//
// Every file is tab-delimited with a header row. Inactive rows are dropped,
// descriptions are narrowed to one type (normally the fully specified name),
// relationships can be filtered by characteristic type. Concrete-domain rows
// carry their feature as the reference-set id. Load reads the four files concurrently and returns
// only after all of them have been read.
package rf2
