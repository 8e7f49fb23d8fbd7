// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks the timing values
func validateOptions(opts options.Program) error {
	switch {
	case opts.ClockHz <= 0:
		return fmt.Errorf("invalid clock rate %d, must be positive", opts.ClockHz)
	case opts.TimerHz <= 0:
		return fmt.Errorf("invalid timer rate %d, must be positive", opts.TimerHz)
	case opts.FrameHz <= 0:
		return fmt.Errorf("invalid frame rate %d, must be positive", opts.FrameHz)
	case opts.Cycles < 0:
		return fmt.Errorf("invalid cycle count %d, must not be negative", opts.Cycles)
	case opts.KeyHold <= 0:
		return fmt.Errorf("invalid key hold duration %s, must be positive", opts.KeyHold)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.System, "s", "", "system of the program (chip8) - if not auto-detected from file extension")
	flags.BoolVar(&opts.Extended, "extended", false, "enable the extended instructions Fx0A, Fx29, Fx33, Fx55 and Fx65")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal display and print the final frame to the console")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.IntVar(&opts.ClockHz, "clock", opts.ClockHz, "instructions to execute per second")
	flags.IntVar(&opts.TimerHz, "timer", opts.TimerHz, "delay timer decrements per second")
	flags.IntVar(&opts.FrameHz, "fps", opts.FrameHz, "display refreshes per second")
	flags.IntVar(&opts.Cycles, "cycles", 1000, "instructions to execute in headless mode")
	flags.DurationVar(&opts.KeyHold, "keyhold", opts.KeyHold, "duration a key stays pressed after a terminal key event")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 for a random seed")
}
