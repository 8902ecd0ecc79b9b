// Package engine evaluates parsed queries against dataset items.
//
// The engine is pure: it reads items, conditions and a completion snapshot,
// and never mutates any of them. Evaluating the same inputs twice yields the
// same output in the same order.
//
// Evaluation Flow:
// 1. Each Condition is checked in order; the first false one rejects the item
// 2. Flag conditions and Binary conditions on completed/done read the
//    completion snapshot keyed by the item's ID
// 3. Other Binary conditions resolve the field on the record (Resolve) and
//    compare it to the literal (Compare)
//
// An empty condition list accepts every item.
//
// The record's own "completed" member is never consulted: completion is
// user state kept outside the dataset.
package engine
