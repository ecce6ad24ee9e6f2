package config

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

// Options — параметры запуска, приходящие из командной строки.
type Options struct {
	Seed     int64
	DefsDir  string
	Profile  string
	LogLevel slog.Level
	LogJSON  bool
	Mute     bool
}

// ParseOptions разбирает флаги командной строки.
func ParseOptions(args []string) (Options, error) {
	var opts Options
	var level string

	fs := flag.NewFlagSet("sky-shooter", flag.ContinueOnError)
	fs.Int64Var(&opts.Seed, "seed", 0, "PRNG seed (0 = time based)")
	fs.StringVar(&opts.DefsDir, "defs", "", "directory with enemies.yaml and waves.yaml overriding the embedded ones")
	fs.StringVar(&opts.Profile, "profile", "", "write a profile: cpu or mem")
	fs.StringVar(&level, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&opts.LogJSON, "log-json", false, "log as JSON")
	fs.BoolVar(&opts.Mute, "mute", false, "disable sound effects")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if err := opts.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return opts, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch strings.ToLower(opts.Profile) {
	case "", "cpu", "mem":
		opts.Profile = strings.ToLower(opts.Profile)
	default:
		return opts, fmt.Errorf("unknown profile mode %q", opts.Profile)
	}
	return opts, nil
}
