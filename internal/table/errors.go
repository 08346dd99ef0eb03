package table

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrNotFound        = errors.New("input not found")
	ErrUnreadable      = errors.New("input unreadable")
	ErrNoHeader        = errors.New("input has no header")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrRowArity        = errors.New("row arity does not match header")
)

// Error code constants for load failures.
const (
	ErrCodeNotFound        = "E001" // Input path not found
	ErrCodeUnreadable      = "E002" // Input could not be read
	ErrCodeNoHeader        = "E003" // No non-blank line to use as header
	ErrCodeDuplicateColumn = "E004" // Header names a column twice
	ErrCodeRowArity        = "E005" // Row width differs from header (strict mode)
)

// LoadError represents an error that occurred while loading a table.
type LoadError struct {
	Code    string
	Message string
	Line    int   // 1-based source line, 0 if not applicable
	Err     error // sentinel or underlying cause
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
