package main

import "github.com/spf13/pflag"

// Config represents the command-line parameters shared by the run and
// stats subcommands.
type Config struct {
	Pattern    string
	OriginX    int64
	OriginY    int64
	Macrosteps uint64
	GCEvery    uint64
	Verbose    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Pattern: "glider", OriginX: 4, OriginY: 4, Macrosteps: 4, GCEvery: 0}
}

// Bind attaches the configuration to the provided flag set.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Pattern, "pattern", "p", c.Pattern,
		"built-in pattern name (glider, blinker, block) or path to an RLE file")
	fs.Int64Var(&c.OriginX, "origin-x", c.OriginX, "x offset at which to place the pattern")
	fs.Int64Var(&c.OriginY, "origin-y", c.OriginY, "y offset at which to place the pattern")
	fs.Uint64VarP(&c.Macrosteps, "macrosteps", "n", c.Macrosteps, "number of 2^(level-2)-generation macro-steps to run")
	fs.Uint64Var(&c.GCEvery, "gc-every", c.GCEvery, "collect garbage every N macro-steps (0 disables)")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "log each macro-step instead of just the summary")
}
