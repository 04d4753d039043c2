package chemkit

import (
	"github.com/sirupsen/logrus"
)

// Option configures a ReaderFactory
type Option func(*ReaderFactory)

// WithHeaderLength sets how many bytes of the input are eligible for
// classification. It affects only how much of the stream is inspected,
// never which reader is chosen once content is seen.
func WithHeaderLength(n int) Option {
	return func(f *ReaderFactory) {
		if n > 0 {
			f.headerLength = n
		}
	}
}

// WithLogger sets the logger used for detection logging
func WithLogger(log *logrus.Logger) Option {
	return func(f *ReaderFactory) {
		if log != nil {
			f.log = log
		}
	}
}

// WithCache enables the detection cache with the given maximum number of
// entries; size <= 0 uses DefaultCacheSize
func WithCache(size int) Option {
	return func(f *ReaderFactory) {
		f.cache = newDetectCache(size)
	}
}

// FromConfig applies an environment-loaded Config
func FromConfig(cfg *Config) Option {
	return func(f *ReaderFactory) {
		if cfg == nil {
			return
		}
		if cfg.HeaderLength > 0 {
			f.headerLength = cfg.HeaderLength
		}
		if cfg.CacheEnabled {
			f.cache = newDetectCache(cfg.CacheSize)
		}
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			f.log.SetLevel(level)
		}
	}
}
