// Package linkage finds columns that encode the same identity.
//
// Two columns are linked when their observed values are in one-to-one
// correspondence across every row. The analysis runs in three stages:
//
//  1. CountFrequencies counts each (value, value) combination for every
//     ordered pair of distinct columns.
//  2. Classify applies the bijection predicate to one ordered pair: the number
//     of distinct value pairs must equal the number of distinct values on
//     each side.
//  3. BuildGraph and PartitionColumns turn the bijective pairs into linked
//     sets and leave every other column as a free variable.
//
// # Ordering
//
// Ordered pairs are enumerated in permutation order: header order for the
// first column, then header order skipping it for the second. Adjacency
// lists keep that order, and PartitionColumns visits sources in the order
// their first edge was created. Output is a pure function of the input.
//
// # One-hop merge
//
// PartitionColumns merges a source with its direct neighbors only. It does
// not compute a transitive closure; on consistent data bijection is already
// an equivalence relation, so every member of a set appears in the first
// member's adjacency list.
package linkage
