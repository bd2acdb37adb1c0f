// Copyright 2026 Nexum Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the dispatch settings of the CPU kernels used by the
// Nexum tensor engine.
//
// Example:
//
//	cfg := cpu.CurrentConfig()
//	cfg.BLASThreshold = 0 // always use BLAS for MatMul
//	cpu.SetConfig(cfg)
package cpu

import (
	internalcpu "github.com/nexum-ml/nexum/internal/backend/cpu"
)

// Config controls kernel dispatch.
type Config = internalcpu.Config

// DefaultConfig returns the dispatch settings used at startup.
func DefaultConfig() Config {
	return internalcpu.DefaultConfig()
}

// SetConfig replaces the active configuration.
func SetConfig(cfg Config) {
	internalcpu.SetConfig(cfg)
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	return internalcpu.CurrentConfig()
}
