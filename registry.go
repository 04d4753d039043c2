package chemkit

import "sync"

// ReaderConstructor builds a format-specific reader from a source
// positioned at the start of content.
type ReaderConstructor func(src Source) ChemReader

var (
	readerMu           sync.RWMutex
	readerConstructors = map[Format]ReaderConstructor{
		FormatSMILES: NewSMILESReader,
	}
)

// RegisterReader registers a reader constructor for a format. Formats
// without a constructor dispatch to a *DummyReader. Passing a nil
// constructor unregisters the format. Callers typically register their own
// parser packages here at init time.
func RegisterReader(f Format, ctor ReaderConstructor) {
	readerMu.Lock()
	defer readerMu.Unlock()
	if ctor == nil {
		delete(readerConstructors, f)
		return
	}
	readerConstructors[f] = ctor
}

// Implemented reports whether a reader constructor is registered for f.
func Implemented(f Format) bool {
	readerMu.RLock()
	defer readerMu.RUnlock()
	return readerConstructors[f] != nil
}

// newReader dispatches a detected format to its reader, seeding it with
// the original, unconsumed source. An undetermined format yields
// ErrUndetermined; a recognized format without a constructor yields a
// DummyReader, not an error.
func newReader(f Format, src Source) (ChemReader, error) {
	if f == FormatUndetermined {
		return nil, &DetectError{Op: "dispatch", Err: ErrUndetermined}
	}
	readerMu.RLock()
	ctor := readerConstructors[f]
	readerMu.RUnlock()
	if ctor == nil {
		return &DummyReader{format: f, src: src}, nil
	}
	return ctor(src), nil
}
