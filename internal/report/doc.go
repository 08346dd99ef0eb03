// Package report renders linked-set analysis results.
//
// The text format is the canonical human-readable report:
//
//	Linked Sets
//	<one line per linked set, names sorted and joined by ", ">
//	Free Variables
//	<free variable names sorted and joined by ", ", possibly empty>
//	Total: <N>
//	<M> variables in <K> sets
//	free <F>
//
// JSON and YAML carry the same data for machine consumption.
package report
