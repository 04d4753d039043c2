package chemkit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Source is an input stream with bounded look-ahead. Peek must return the
// next n bytes without advancing the read position, so the detector can
// inspect a header prefix and still hand the complete content to the
// selected reader. A *bufio.Reader satisfies Source; its buffer size is the
// look-ahead limit.
type Source interface {
	io.Reader
	Peek(n int) ([]byte, error)
}

// NewSource wraps r in a Source able to peek at least headerLength bytes.
// If r is already a *bufio.Reader with a large enough buffer it is returned
// unchanged.
func NewSource(r io.Reader, headerLength int) Source {
	if headerLength < 1 {
		headerLength = DefaultHeaderLength
	}
	if br, ok := r.(*bufio.Reader); ok && br.Size() >= headerLength {
		return br
	}
	return bufio.NewReaderSize(r, headerLength)
}

// headerWindow is an immutable copy of up to headerLength bytes from the
// start of a source. All classification work reads the window, never the
// source, so the source stays positioned at the start of content.
type headerWindow struct {
	data  []byte
	lines []string
}

// captureWindow peeks up to n bytes from src into an owned buffer. The
// source is not advanced. A source that cannot buffer n bytes fails with
// ErrUnsupportedSource; I/O faults propagate.
func captureWindow(src Source, n int) (*headerWindow, error) {
	data, err := src.Peek(n)
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			// Input shorter than the header length; the window is the
			// whole input.
		case errors.Is(err, bufio.ErrBufferFull):
			return nil, fmt.Errorf("%w: cannot peek %d bytes", ErrUnsupportedSource, n)
		default:
			return nil, fmt.Errorf("chemkit: capture header window: %w", err)
		}
	}
	w := &headerWindow{data: append([]byte(nil), data...)}
	w.lines = splitWindowLines(w.data)
	return w, nil
}

// splitWindowLines splits the window into lines, accepting both LF and CRLF
// endings. A final line truncated by the window boundary is still a line.
func splitWindowLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	raw := strings.Split(string(data), "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	for i, line := range raw {
		raw[i] = strings.TrimSuffix(line, "\r")
	}
	return raw
}

// firstLine returns the window's first line, if the window has any content.
func (w *headerWindow) firstLine() (string, bool) {
	if len(w.lines) == 0 {
		return "", false
	}
	return w.lines[0], true
}
