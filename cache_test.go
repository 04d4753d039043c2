package chemkit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCacheLookupStore(t *testing.T) {
	cache := newDetectCache(8)

	window := []byte("HEADER    TEST\n")
	_, ok := cache.lookup(window)
	assert.False(t, ok)

	cache.store(window, FormatPDB)
	format, ok := cache.lookup(window)
	assert.True(t, ok)
	assert.Equal(t, FormatPDB, format)

	stats := cache.stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestDetectCacheBounded(t *testing.T) {
	cache := newDetectCache(4)

	for i := 0; i < 20; i++ {
		cache.store([]byte(fmt.Sprintf("window-%d", i)), FormatXYZ)
	}
	assert.LessOrEqual(t, cache.stats().Size, 4)
}

func TestFactoryWithCache(t *testing.T) {
	factory := NewReaderFactory(WithCache(16))
	content := "HEADER    TEST\nATOM      1  N\n"

	format, err := factory.DetectFormat(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, FormatPDB, format)

	// Second pass over identical content hits the cache and returns the
	// same classification.
	format, err = factory.DetectFormat(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, FormatPDB, format)

	stats := factory.CacheStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestFactoryWithoutCacheStats(t *testing.T) {
	assert.Zero(t, NewReaderFactory().CacheStats())
}
