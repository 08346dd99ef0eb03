package table

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/text/unicode/norm"
)

// DefaultComment is the comment marker used when Options.Comment is empty.
const DefaultComment = "#"

// Options controls how input text is turned into a Table.
type Options struct {
	Comment    string // comment marker; defaults to DefaultComment
	StrictRows bool   // reject rows whose width differs from the header
	Normalize  bool   // NFC-normalize header names and tokens
}

func (o Options) comment() string {
	if o.Comment == "" {
		return DefaultComment
	}
	return o.Comment
}

// Load reads the table at location through afs, so local paths and any
// registered afs scheme (file://, mem://, ...) are accepted.
func Load(ctx context.Context, location string, opts Options) (*Table, error) {
	fs := afs.New()

	exists, err := fs.Exists(ctx, location)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeUnreadable, Message: fmt.Sprintf("checking %s: %v", location, err), Err: ErrUnreadable}
	}
	if !exists {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("input not found: %s", location), Err: ErrNotFound}
	}

	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeUnreadable, Message: fmt.Sprintf("reading %s: %v", location, err), Err: ErrUnreadable}
	}

	t, err := Parse(bytes.NewReader(data), opts)
	if err != nil {
		return nil, err
	}
	t.Source = location
	return t, nil
}

// Parse reads all of r and splits it into header and rows.
func Parse(r io.Reader, opts Options) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeUnreadable, Message: fmt.Sprintf("reading input: %v", err), Err: ErrUnreadable}
	}

	marker := opts.comment()
	t := &Table{}
	for i, raw := range strings.Split(string(data), "\n") {
		line := raw
		if idx := strings.Index(line, marker); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if opts.Normalize {
			line = norm.NFC.String(line)
		}

		fields := strings.Fields(line)
		if t.Header == nil {
			if err := checkHeader(fields, i+1); err != nil {
				return nil, err
			}
			t.Header = fields
			continue
		}

		t.Rows = append(t.Rows, fields)
		t.lines = append(t.lines, i+1)
	}

	if t.Header == nil {
		return nil, &LoadError{Code: ErrCodeNoHeader, Message: "no header line: input is empty after removing comments and blank lines", Err: ErrNoHeader}
	}
	if opts.StrictRows {
		if err := t.checkArity(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// checkArity fails on the first row whose width differs from the header.
func (t *Table) checkArity() error {
	for i, row := range t.Rows {
		if len(row) != t.Width() {
			return &LoadError{
				Code:    ErrCodeRowArity,
				Message: fmt.Sprintf("row has %d token(s), header has %d", len(row), t.Width()),
				Line:    t.Line(i),
				Err:     ErrRowArity,
			}
		}
	}
	return nil
}

func checkHeader(names []string, line int) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return &LoadError{
				Code:    ErrCodeDuplicateColumn,
				Message: fmt.Sprintf("column %q appears more than once in header", name),
				Line:    line,
				Err:     ErrDuplicateColumn,
			}
		}
		seen[name] = true
	}
	return nil
}
