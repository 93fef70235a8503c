package main

import "github.com/BurntSushi/toml"

// Limits bounds every fixed-capacity working set the VM owns, matching
// original_source/src/fibr.h's MAX_* constants. They are chosen at
// construction and never grow; exceeding one is a fatal assertion (see
// capacityError in arena.go).
type Limits struct {
	EnvSize      int `toml:"env_size"`
	FormCount    int `toml:"form_count"`
	FrameCount   int `toml:"frame_count"`
	FuncArgCount int `toml:"func_arg_count"`
	FuncRetCount int `toml:"func_ret_count"`
	FuncCount    int `toml:"func_count"`
	MacroCount   int `toml:"macro_count"`
	OpCount      int `toml:"op_count"`
	RegCount     int `toml:"reg_count"`
	ScopeCount   int `toml:"scope_count"`
	StackSize    int `toml:"stack_size"`
	StateCount   int `toml:"state_count"`
}

// DefaultLimits mirrors the capacities fibr.h picks for a small-embedded
// profile.
func DefaultLimits() Limits {
	return Limits{
		EnvSize:      64,
		FormCount:    512,
		FrameCount:   64,
		FuncArgCount: 8,
		FuncRetCount: 8,
		FuncCount:    64,
		MacroCount:   64,
		OpCount:      1024,
		RegCount:     64,
		ScopeCount:   8,
		StackSize:    64,
		StateCount:   64,
	}
}

// LoadLimits reads a TOML document overriding zero or more of
// DefaultLimits' fields; fields absent from the document keep their
// default. Passing an empty path is a no-op (matching spec's "no files"
// baseline when --config isn't given).
func LoadLimits(path string) (Limits, error) {
	limits := DefaultLimits()
	if path == "" {
		return limits, nil
	}
	if _, err := toml.DecodeFile(path, &limits); err != nil {
		return Limits{}, err
	}
	return limits, nil
}
