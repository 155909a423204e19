package engine

import (
	"log"

	"github.com/tern3d/tern/engine/config"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied during NewEngine.
type EngineBuilderOption func(*engineImpl)

// WithConfig sets the full engine configuration.
//
// Parameters:
//   - cfg: the configuration to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.Config) EngineBuilderOption {
	return func(e *engineImpl) {
		e.cfg = cfg
	}
}

// WithConfigFile loads the engine configuration from a TOML file. A missing
// file keeps the defaults; a malformed file logs the parse error and keeps
// the defaults.
//
// Parameters:
//   - path: the TOML file to load
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfigFile(path string) EngineBuilderOption {
	return func(e *engineImpl) {
		cfg, err := config.Load(path)
		if err != nil {
			log.Printf("using default config: %v", err)
			return
		}
		e.cfg = cfg
	}
}
