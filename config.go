package chemkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Header inspection length in bytes
	HeaderLength int `env:"CHEMKIT_HEADER_LENGTH,default:65536"`

	// Detection cache settings
	CacheEnabled bool `env:"CHEMKIT_CACHE_ENABLED,default:false"`
	CacheSize    int  `env:"CHEMKIT_CACHE_SIZE,default:1024"`

	// Log level for detection logging (logrus level names)
	LogLevel string `env:"CHEMKIT_LOG_LEVEL,default:info"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
