package chemkit

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultHeaderLength is how many bytes of the input are inspected for
// classification when no option overrides it.
const DefaultHeaderLength = 65536

// UndeterminedName is the display name reported by GuessFormat when no
// format was recognized.
const UndeterminedName = "Format undetermined"

// ReaderFactory detects the chemical file format of an input stream and
// constructs the matching reader. A factory holds only immutable
// configuration and the optional, internally locked detection cache; it is
// safe for concurrent use as long as each call supplies its own stream.
type ReaderFactory struct {
	headerLength int
	log          *logrus.Logger
	cache        *detectCache
}

// NewReaderFactory creates a factory that detects the format in the first
// DefaultHeaderLength bytes unless configured otherwise.
func NewReaderFactory(opts ...Option) *ReaderFactory {
	f := &ReaderFactory{
		headerLength: DefaultHeaderLength,
		log:          logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateReader detects the format of a raw byte stream and returns a
// reader seeded with the full content. Gzip input is detected and
// transparently decompressed first. The input may be any io.Reader; it is
// buffered internally.
//
// An unrecognized format returns ErrUndetermined. A recognized format
// without a registered parser returns a *DummyReader, not an error.
func (f *ReaderFactory) CreateReader(input io.Reader) (ChemReader, error) {
	src, err := f.prepare(input)
	if err != nil {
		return nil, err
	}
	return f.createFromSource(src)
}

// CreateTextReader is the text entry point: it skips compression detection
// and requires input that already supports bounded look-ahead. Input that
// does not satisfy Source fails with ErrUnsupportedSource before any byte
// is read. Use CreateReader, or wrap the input with NewSource, when in
// doubt.
func (f *ReaderFactory) CreateTextReader(input io.Reader) (ChemReader, error) {
	src, err := f.requireSource(input)
	if err != nil {
		return nil, err
	}
	return f.createFromSource(src)
}

// DetectFormat classifies a raw byte stream without constructing a reader.
// FormatUndetermined with a nil error is a valid outcome meaning no format
// was recognized.
func (f *ReaderFactory) DetectFormat(input io.Reader) (Format, error) {
	src, err := f.prepare(input)
	if err != nil {
		return FormatUndetermined, err
	}
	return f.detect(src)
}

// DetectTextFormat classifies a text stream that supports bounded
// look-ahead; see CreateTextReader for the source requirement.
func (f *ReaderFactory) DetectTextFormat(input io.Reader) (Format, error) {
	src, err := f.requireSource(input)
	if err != nil {
		return FormatUndetermined, err
	}
	return f.detect(src)
}

// GuessFormat returns the display name of the detected format, or
// UndeterminedName when nothing matched.
func (f *ReaderFactory) GuessFormat(input io.Reader) (string, error) {
	format, err := f.DetectFormat(input)
	if err != nil {
		return "", err
	}
	if format == FormatUndetermined {
		return UndeterminedName, nil
	}
	return format.Name(), nil
}

// prepare is the byte entry: buffer the input and sniff for compression.
func (f *ReaderFactory) prepare(input io.Reader) (Source, error) {
	if input == nil {
		return nil, &DetectError{Op: "detect", Err: ErrInvalidInput}
	}
	return f.maybeDecompress(NewSource(input, f.headerLength)), nil
}

// requireSource is the text entry: the capability must already be there.
func (f *ReaderFactory) requireSource(input io.Reader) (Source, error) {
	if input == nil {
		return nil, &DetectError{Op: "detect", Err: ErrInvalidInput}
	}
	if src, ok := input.(Source); ok {
		return src, nil
	}
	return nil, &DetectError{Op: "detect", Err: ErrUnsupportedSource}
}

func (f *ReaderFactory) createFromSource(src Source) (ChemReader, error) {
	format, err := f.detect(src)
	if err != nil {
		return nil, err
	}
	return newReader(format, src)
}

// detect runs the classification pipeline: capture the header window, scan
// the line rules, fall back to the probes on the first line. The source is
// never advanced, so the eventual reader sees the complete content.
func (f *ReaderFactory) detect(src Source) (Format, error) {
	w, err := captureWindow(src, f.headerLength)
	if err != nil {
		return FormatUndetermined, err
	}

	if f.cache != nil {
		if format, ok := f.cache.lookup(w.data); ok {
			f.log.WithField("format", format.String()).Debug("chemkit: detection cache hit")
			return format, nil
		}
	}

	format := classify(w)
	if format == FormatUndetermined {
		if line, ok := w.firstLine(); ok {
			format = runProbes(line)
		}
	}

	if format == FormatUndetermined {
		f.log.Debug("chemkit: format undetermined")
	} else {
		f.log.WithField("format", format.String()).Debugf("chemkit: %s detected", format.Name())
	}

	if f.cache != nil {
		f.cache.store(w.data, format)
	}
	return format, nil
}

// CacheStats returns detection cache metrics; the zero value when no cache
// is configured.
func (f *ReaderFactory) CacheStats() CacheStatistics {
	if f.cache == nil {
		return CacheStatistics{}
	}
	return f.cache.stats()
}
