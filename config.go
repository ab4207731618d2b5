package fieldvalidation

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// DefaultMaxMemory is the default amount of a multipart body kept in memory
// (32 MB); larger parts are stored in temporary files.
const DefaultMaxMemory = 32 << 20

// ErrParsingConfig is returned when the environment holds invalid settings.
var ErrParsingConfig = errors.New("failed to parse request config")

// RequestConfig holds the limits used when extracting input from requests.
type RequestConfig struct {
	// MaxMemory is passed to [http.Request.ParseMultipartForm].
	MaxMemory int64 `env:"FIELDVALIDATION_MAX_MEMORY" envDefault:"33554432"`
	// MaxJSONBytes limits JSON request bodies, 0 means no limit.
	MaxJSONBytes int64 `env:"FIELDVALIDATION_MAX_JSON_BYTES" envDefault:"0"`
}

// DefaultRequestConfig returns the built-in defaults.
func DefaultRequestConfig() RequestConfig {
	return RequestConfig{MaxMemory: DefaultMaxMemory}
}

// LoadRequestConfig reads a RequestConfig from the environment.
//
// Example:
//
//	cfg, err := fieldvalidation.LoadRequestConfig()
//	if err != nil {
//		// Handle error
//	}
//	v.SetRequestConfig(cfg)
func LoadRequestConfig() (RequestConfig, error) {
	cfg, err := env.ParseAs[RequestConfig]()
	if err != nil {
		return RequestConfig{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.MaxMemory <= 0 {
		cfg.MaxMemory = DefaultMaxMemory
	}
	return cfg, nil
}
