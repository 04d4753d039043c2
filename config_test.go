package chemkit

import (
	"testing"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				HeaderLength: 65536,
				CacheEnabled: false,
				CacheSize:    1024,
				LogLevel:     "info",
			},
		},
		{
			name: "custom header length",
			envVars: map[string]string{
				"BEAVER_CHEMKIT_HEADER_LENGTH": "4096",
			},
			want: Config{
				HeaderLength: 4096,
				CacheSize:    1024,
				LogLevel:     "info",
			},
		},
		{
			name: "cache enabled",
			envVars: map[string]string{
				"BEAVER_CHEMKIT_CACHE_ENABLED": "true",
				"BEAVER_CHEMKIT_CACHE_SIZE":    "256",
				"BEAVER_CHEMKIT_LOG_LEVEL":     "debug",
			},
			want: Config{
				HeaderLength: 65536,
				CacheEnabled: true,
				CacheSize:    256,
				LogLevel:     "debug",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			got, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("GetConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
