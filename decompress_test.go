package chemkit

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeDecompressPassthrough(t *testing.T) {
	factory := NewReaderFactory()

	// Plain text passes through untouched and unconsumed.
	src := NewSource(strings.NewReader("HEADER    TEST\n"), DefaultHeaderLength)
	out := factory.maybeDecompress(src)
	assert.Same(t, src, out)

	data, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, "HEADER    TEST\n", string(data))
}

func TestMaybeDecompressShortInput(t *testing.T) {
	factory := NewReaderFactory()

	// Fewer than four bytes never count as compressed, even when they
	// start with the gzip magic.
	src := NewSource(strings.NewReader("\x1f\x8b"), DefaultHeaderLength)
	out := factory.maybeDecompress(src)
	assert.Same(t, src, out)

	data, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, "\x1f\x8b", string(data))
}

func TestMaybeDecompressCorruptHeaderDegrades(t *testing.T) {
	factory := NewReaderFactory()

	// Magic bytes followed by a broken gzip header degrade to "not
	// compressed" rather than failing detection outright.
	raw := "\x1f\x8b\xffgarbage"
	src := NewSource(strings.NewReader(raw), DefaultHeaderLength)
	out := factory.maybeDecompress(src)
	assert.Same(t, src, out)
}

func TestMaybeDecompressEmptyInput(t *testing.T) {
	factory := NewReaderFactory()

	src := NewSource(strings.NewReader(""), DefaultHeaderLength)
	assert.Same(t, src, factory.maybeDecompress(src))
}
