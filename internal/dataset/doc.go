// Package dataset loads task records and derives the items the engine
// filters.
//
// Supported inputs, chosen by file extension:
//   - .json: decoded with member order preserved (ir.DecodeJSON)
//   - .yaml, .yml: decoded through yaml.v3 nodes, mapping order preserved
//   - .cue: evaluated with the CUE SDK, fields in declaration order
//
// The decoded document is either the record list itself or an object that
// holds the list under a rows-like member (see Rows). Any other shape is an
// empty dataset, not an error. Records are never validated against a
// schema; whatever fields they carry are available to queries.
package dataset
