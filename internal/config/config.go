// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// InterpreterOptions returns the interpreter options matching the program options
func InterpreterOptions(logger *log.Logger, opts options.Program) []interpreter.Option {
	interpreterOptions := []interpreter.Option{
		interpreter.WithLogger(logger),
	}
	if opts.Extended {
		interpreterOptions = append(interpreterOptions, interpreter.WithExtendedInstructions())
	}
	if opts.Seed != 0 {
		interpreterOptions = append(interpreterOptions, interpreter.WithRandomSource(interpreter.NewRandomSource(opts.Seed)))
	}
	return interpreterOptions
}

// RunnerConfig returns the emulation driver pacing for the program options
func RunnerConfig(opts options.Program) runner.Config {
	return runner.Config{
		ClockHz: opts.ClockHz,
		TimerHz: opts.TimerHz,
		FrameHz: opts.FrameHz,
	}
}
