package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/linkset/internal/table"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Analysis failure (degenerate column pair)
	ExitCommandError = 2 // Command error (input not found, bad config, database failure, etc.)
)

// Error code constants for failures outside the table loader.
// Loader failures reuse the table package codes (E001-E005).
const (
	ErrCodeGeneric    = "E000" // Generic/unknown error
	ErrCodeDegenerate = "E101" // Column pair with no co-occurring values
	ErrCodeConfig     = "E201" // Config file invalid
	ErrCodeStore      = "E301" // Run history database failure
	ErrCodeRunMissing = "E302" // Requested run not in history
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes structured command results and errors.
// Text rendering is done by each command; the formatter covers JSON and YAML.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI errors.
type CLIResponse struct {
	Status string    `json:"status" yaml:"status"`                   // "ok" or "error"
	Data   any       `json:"data,omitempty" yaml:"data,omitempty"`   // success payload
	Error  *CLIError `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code" yaml:"code"`       // "E001", "E101", etc.
	Message string `json:"message" yaml:"message"` // human-readable message
}

// Encode writes v in the configured structured format.
func (f *OutputFormatter) Encode(v any) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not structured", f.Format)
	}
}

// Error writes an error envelope for structured formats. Text format
// writes nothing: the diagnostic is reported on stderr by the caller.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format != "json" && f.Format != "yaml" {
		return nil
	}
	return f.Encode(CLIResponse{
		Status: "error",
		Error:  &CLIError{Code: code, Message: message},
	})
}

// fail reports err through the formatter and returns it as an ExitError.
// The code prefixes the message unless err is a load error already naming it.
func (f *OutputFormatter) fail(exitCode int, code, message string, err error) error {
	_ = f.Error(code, fmt.Sprintf("%s: %v", message, err))

	var loadErr *table.LoadError
	if errors.As(err, &loadErr) && loadErr.Code == code {
		return WrapExitError(exitCode, message, err)
	}
	return WrapExitError(exitCode, fmt.Sprintf("%s: %s", code, message), err)
}
