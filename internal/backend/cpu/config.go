package cpu

import "sync/atomic"

// Config controls kernel dispatch.
type Config struct {
	// BLASThreshold is the m*k*n work size at and above which MatMul calls
	// blas64.Gemm instead of the simple loop. Zero routes every product to BLAS.
	BLASThreshold int
}

// DefaultConfig returns the dispatch settings used at startup.
func DefaultConfig() Config {
	return Config{
		BLASThreshold: 32 * 32 * 32, // Below this the call overhead dominates.
	}
}

var current atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig()
	current.Store(&cfg)
}

// SetConfig replaces the active configuration.
func SetConfig(cfg Config) {
	if cfg.BLASThreshold < 0 {
		cfg.BLASThreshold = 0
	}
	current.Store(&cfg)
}

// CurrentConfig returns a copy of the active configuration.
func CurrentConfig() Config {
	return *current.Load()
}
