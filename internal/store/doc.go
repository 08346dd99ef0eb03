// Package store provides SQLite-backed history of linkset runs.
//
// Each run records the analyzed source, the content hashes of the dataset
// and of the report, and the full report as JSON. Linked columns are also
// stored one row per (run, set, column) so runs can be searched by column.
//
// # Ordering
//
//   - Runs are ordered by seq INTEGER (insertion order), NEVER timestamps
//   - All list queries use ORDER BY seq ASC, id ASC COLLATE BINARY
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Run IDs come from a RunIDGenerator; content hashes come from internal/ir.
package store
