// Package query parses filter query text into queryir conditions.
//
// Grammar (informal):
//
//	query     = [ "select" "*" "where" | "where" ] clause { "and" clause }
//	clause    = flag | field op value
//	flag      = [ "!" ] ( "completed" | "done" )
//	field     = [A-Za-z0-9_.]+
//	op        = "==" | "!=" | ">=" | "<=" | "=" | ">" | "<"
//	value     = quoted | number | bare
//
// Parsing is best-effort: a clause that fits neither form is dropped and
// parsing continues. No function in this package returns an error.
package query
