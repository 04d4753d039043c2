package chemkit

import (
	"compress/gzip"
	"io"
)

// gzip member header magic
const (
	gzipMagic0 = 0x1F
	gzipMagic1 = 0x8B
)

// maybeDecompress peeks at the first bytes of src and, when they carry the
// gzip magic, returns a decompressing source. Detection degrades to "not
// compressed" on short input or peek failure; it is never fatal. Either
// way the returned source is positioned at the logical start of content.
func (f *ReaderFactory) maybeDecompress(src Source) Source {
	magic, err := src.Peek(4)
	if err != nil && err != io.EOF {
		f.log.WithError(err).Debug("chemkit: compression sniff failed, assuming uncompressed")
		return src
	}
	if len(magic) < 4 || magic[0] != gzipMagic0 || magic[1] != gzipMagic1 {
		return src
	}
	gz, err := gzip.NewReader(src)
	if err != nil {
		f.log.WithError(err).Debug("chemkit: gzip header rejected, assuming uncompressed")
		return src
	}
	f.log.Debug("chemkit: gzip input detected")
	return NewSource(gz, f.headerLength)
}
