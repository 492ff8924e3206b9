// Package config loads and validates a run configuration from disk.
package config

import (
	"encoding/json"
	"os"
	"regexp"

	"sandbox-go/abi"
	serrors "sandbox-go/errors"
	"sandbox-go/sandbox"
)

// Default returns a run configuration with every limit unset, matching
// original_source/sandbox_linux.cpp's get_default_config: -1 for every
// numeric limit, empty strings for every path, no whitelists.
func Default() *sandbox.Config {
	return &sandbox.Config{
		TimeMS:   -1,
		MemoryMB: -1,
		Nproc:    -1,
	}
}

// Load reads a run configuration from a JSON file at path, filling any
// field the file omits from Default, then validates the result.
func Load(path string) (*sandbox.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap(err, serrors.ErrConfig, "config.Load")
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, serrors.Wrap(err, serrors.ErrConfig, "config.Load")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func Save(cfg *sandbox.Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return serrors.Wrap(err, serrors.ErrConfig, "config.Save")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return serrors.Wrap(err, serrors.ErrConfig, "config.Save")
	}
	return nil
}

// Validate checks that cfg names a command and that every set limit is
// usable, returning one of package errors' sentinel *errors.SandboxError
// values on failure, or an ErrConfig-wrapped error when
// FilesystemWhitelist does not compile.
func Validate(cfg *sandbox.Config) error {
	if cfg.Cmd == "" {
		return serrors.ErrMissingCommand
	}
	if cfg.TimeMS == 0 || cfg.MemoryMB == 0 || cfg.Nproc == 0 {
		return serrors.ErrInvalidLimits
	}
	if cfg.TimeMS < -1 || cfg.MemoryMB < -1 || cfg.Nproc < -1 {
		return serrors.ErrInvalidLimits
	}
	for _, name := range cfg.SyscallWhitelist {
		if abi.Lookup(name) == abi.None {
			return serrors.ErrInvalidWhitelist
		}
	}
	if cfg.FilesystemWhitelist != "" {
		if _, err := regexp.Compile(cfg.FilesystemWhitelist); err != nil {
			return serrors.Wrap(err, serrors.ErrConfig, "config.Validate")
		}
	}
	return nil
}

// BuildWhitelist resolves a run configuration's syscall whitelist into
// the canonical-ID set the policy engine expects. An empty whitelist
// yields a nil map, which policy.New treats as "allow every syscall past
// the first-syscall guard".
func BuildWhitelist(names []string) map[abi.ID]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[abi.ID]bool, len(names))
	for _, name := range names {
		if id := abi.Lookup(name); id != abi.None {
			set[id] = true
		}
	}
	return set
}
