// Package config loads intcode run configuration from TOML files.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ezrec/intcode/expr"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("program missing"))
	ErrPhaseConflict  = errors.New(f("phases and phase_expr are exclusive"))
	ErrPhasesMissing  = errors.New(f("phases missing"))
)

// ErrConfig reports the file a configuration error came from.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Config describes a program run or an amplifier pipeline.
type Config struct {
	Program   string  `toml:"program"`    // Program text path.
	Inputs    string  `toml:"inputs"`     // Starlark expression of run inputs.
	Phases    []int64 `toml:"phases"`     // Literal pipeline phases.
	PhaseExpr string  `toml:"phase_expr"` // Starlark expression of pipeline phases.
	Signal    int64   `toml:"signal"`     // Initial pipeline signal.
	Feedback  *bool   `toml:"feedback"`   // Ring (default) or single pass.
	Dump      []int   `toml:"dump"`       // Addresses printed after a run.
}

// Load reads a TOML configuration file, applies defaults and validates it.
// Relative program paths are taken relative to the configuration file.
func Load(path string) (cfg Config, err error) {
	defer func() {
		if err != nil {
			cfg = Config{}
			err = &ErrConfig{Path: path, Err: err}
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return
	}

	if cfg.Program != "" && !filepath.IsAbs(cfg.Program) {
		cfg.Program = filepath.Join(filepath.Dir(path), cfg.Program)
	}

	cfg.Defaults()

	err = cfg.Validate()
	return
}

// Defaults fills in unset values.
func (cfg *Config) Defaults() {
	if cfg.Feedback == nil {
		feedback := true
		cfg.Feedback = &feedback
	}
}

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() (err error) {
	if cfg.Program == "" {
		return ErrProgramMissing
	}

	if len(cfg.Phases) != 0 && cfg.PhaseExpr != "" {
		return ErrPhaseConflict
	}

	if cfg.PhaseExpr != "" {
		if _, err = expr.Ints(cfg.PhaseExpr, nil); err != nil {
			return
		}
	}

	if cfg.Inputs != "" {
		if _, err = expr.Ints(cfg.Inputs, nil); err != nil {
			return
		}
	}

	return
}

// IsFeedback returns true if the pipeline runs as a ring.
func (cfg *Config) IsFeedback() bool {
	return cfg.Feedback == nil || *cfg.Feedback
}

// PhaseList returns the configured phases.
func (cfg *Config) PhaseList() (phases []int64, err error) {
	switch {
	case len(cfg.Phases) != 0:
		phases = cfg.Phases
	case cfg.PhaseExpr != "":
		phases, err = expr.Ints(cfg.PhaseExpr, nil)
	}

	if err == nil && len(phases) == 0 {
		err = ErrPhasesMissing
	}

	return
}

// InputList returns the configured run inputs.
func (cfg *Config) InputList() (inputs []int64, err error) {
	if cfg.Inputs == "" {
		return
	}

	return expr.Ints(cfg.Inputs, nil)
}
