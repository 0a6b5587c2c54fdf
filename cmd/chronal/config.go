package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"
)

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l kvList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

// Config represents the command-line parameters.
type Config struct {
	Puzzle   string
	Input    string
	Dir      string
	Workers  int
	List     bool
	Watch    bool
	TPS      int
	LogLevel string
	Sets     kvList
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{Workers: runtime.NumCPU(), TPS: 10, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Puzzle, "puzzle", c.Puzzle, "puzzle to solve (see -list)")
	fs.StringVar(&c.Input, "input", c.Input, "input file (default stdin)")
	fs.StringVar(&c.Dir, "dir", c.Dir, "solve every puzzle with a <name>.txt input in this directory")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel puzzles in -dir mode")
	fs.BoolVar(&c.List, "list", c.List, "list registered puzzles and their parameters")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "animate the light field until it aligns (lights only)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second in -watch mode")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.Var(&c.Sets, "set", "puzzle parameter in key=value form (repeatable)")
}
