package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/linkset/internal/ir"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// IsValidFormat checks if format is one of ValidFormats.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Write renders r in the given format.
func Write(w io.Writer, r *ir.Report, format string) error {
	switch format {
	case FormatText, "":
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("unknown report format %q: must be one of %v", format, ValidFormats)
	}
}

// WriteText writes the plain-text report.
func WriteText(w io.Writer, r *ir.Report) error {
	var b strings.Builder
	b.WriteString("Linked Sets\n")
	for _, set := range r.LinkedSets {
		b.WriteString(strings.Join(set, ", "))
		b.WriteByte('\n')
	}
	b.WriteString("Free Variables\n")
	b.WriteString(strings.Join(r.FreeVariables, ", "))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Total: %d\n", r.Total)
	fmt.Fprintf(&b, "%d variables in %d sets\n", r.LinkedCount, r.SetCount)
	fmt.Fprintf(&b, "free %d\n", r.FreeCount)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *ir.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML.
func WriteYAML(w io.Writer, r *ir.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
