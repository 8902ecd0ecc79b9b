// Package queryir provides the intermediate representation of a parsed
// filter query.
//
// A query is an ordered list of Conditions combined by conjunction only.
// The query package produces them from text; the engine package evaluates
// them against records.
//
// SEALED INTERFACES:
//
// Condition and Literal are sealed interfaces using the marker method
// pattern. Only types in this package implement them, so consumers can
// switch exhaustively:
//
//	switch c := cond.(type) {
//	case Flag:
//	    // bare completed / !completed keyword
//	case Binary:
//	    // field op value
//	}
//
// Literals never carry booleans. A query such as "completed = true" holds
// the literal String("true"), and the comparator decides what it means.
//
// The virtual field "completed" (alias "done") never reads from a record.
// Evaluators route it to the completion snapshot; IsCompletedField is the
// single place that decides which names are virtual.
package queryir
