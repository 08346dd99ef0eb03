// Package ir provides the shared result types for linkset.
//
// This package contains type definitions and content-addressed identity
// only. All other internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - All JSON and YAML tags use snake_case
//   - Column lists inside a Report are always sorted
//   - Identity hashes use canonical JSON, never encoding/json output
package ir
