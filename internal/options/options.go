// Package options contains the program options.
package options

import "time"

// Default timing values.
const (
	DefaultClockHz = 700
	DefaultTimerHz = 60
	DefaultFrameHz = 60
	DefaultKeyHold = 150 * time.Millisecond
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // ROM file to run
	System string // target system, auto-detected from the file extension if empty
}

// Flags contains behavior options.
type Flags struct {
	Extended bool // enable Fx0A, Fx29, Fx33, Fx55 and Fx65
	Headless bool // run without terminal UI and print the final frame
	Debug    bool
	Quiet    bool
}

// Timing contains the pacing options of the emulation driver.
type Timing struct {
	ClockHz int           // instructions per second
	TimerHz int           // delay timer decrements per second
	FrameHz int           // display refreshes per second
	Cycles  int           // instructions to execute in headless mode
	KeyHold time.Duration // time after which a terminal key press is released
	Seed    uint64        // random seed, 0 selects a random seed
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Timing
}

// New returns program options with the default timing values.
func New() Program {
	return Program{
		Timing: Timing{
			ClockHz: DefaultClockHz,
			TimerHz: DefaultTimerHz,
			FrameHz: DefaultFrameHz,
			KeyHold: DefaultKeyHold,
		},
	}
}
