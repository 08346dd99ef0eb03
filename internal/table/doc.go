// Package table loads whitespace-separated tabular text into memory.
//
// Input format:
//   - A comment marker (default "#") starts a comment running to end of line
//   - Lines that are blank after comment stripping are ignored
//   - The first remaining line is the header naming each column
//   - Every following line is a row of whitespace-separated tokens
//
// Rows are matched to the header positionally. A short row covers only the
// leading columns it supplies; extra tokens past the header are ignored.
// StrictRows turns both cases into errors.
package table
