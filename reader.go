package chemkit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chemkit/chemkit/smiles"
)

// Record is one chemical entry produced by a ChemReader.
type Record struct {
	Format Format
	// Name is the record's title, when the format carries one.
	Name string
	// Text is the raw text the record was read from.
	Text string
	// Molecule is the parsed structure, for readers that build one.
	Molecule *smiles.Molecule
}

// ChemReader is the uniform handle for format-specific readers. The
// dispatcher constructs one from a single Source and otherwise knows
// nothing about the reader's internals.
type ChemReader interface {
	// Format returns the format this reader consumes.
	Format() Format

	// Read returns the next record, or io.EOF when the stream is
	// exhausted.
	Read() (*Record, error)
}

// DummyReader is returned for formats that are recognized but have no
// registered reader. It lets callers tell "format known, no parser" apart
// from "format unknown": detection succeeds and yields a handle, but
// reading fails with ErrNotImplemented.
type DummyReader struct {
	format Format
	src    Source
}

// Format returns the recognized format.
func (d *DummyReader) Format() Format { return d.format }

// Source returns the unconsumed input, positioned at the start of content,
// so a caller-supplied parser can take over.
func (d *DummyReader) Source() Source { return d.src }

// Read always fails with ErrNotImplemented.
func (d *DummyReader) Read() (*Record, error) {
	return nil, &DetectError{Op: "read", Format: d.format, Err: ErrNotImplemented}
}

// SMILESReader reads a SMILES file: one record per non-blank line, a
// SMILES string optionally followed by a title.
type SMILESReader struct {
	scanner *bufio.Scanner
	lineNo  int
}

// NewSMILESReader constructs a SMILES reader over src.
func NewSMILESReader(src Source) ChemReader {
	return &SMILESReader{scanner: bufio.NewScanner(src)}
}

// Format returns FormatSMILES.
func (r *SMILESReader) Format() Format { return FormatSMILES }

// Read returns the next molecule, or io.EOF at end of input. Blank lines
// are skipped; a malformed line is an error.
func (r *SMILESReader) Read() (*Record, error) {
	for r.scanner.Scan() {
		r.lineNo++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		notation, name, _ := strings.Cut(line, " ")
		mol, err := smiles.Parse(notation)
		if err != nil {
			return nil, &DetectError{
				Op:     "read",
				Format: FormatSMILES,
				Err:    fmt.Errorf("line %d: %w", r.lineNo, err),
			}
		}
		return &Record{
			Format:   FormatSMILES,
			Name:     strings.TrimSpace(name),
			Text:     line,
			Molecule: mol,
		}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
