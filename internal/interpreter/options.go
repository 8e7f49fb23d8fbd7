package interpreter

import "github.com/retroenv/retrogolib/log"

// Option configures an interpreter on creation.
type Option func(*Interpreter)

// WithLogger sets the logger used to report ignored instructions.
func WithLogger(logger *log.Logger) Option {
	return func(ip *Interpreter) {
		ip.logger = logger
	}
}

// WithRandomSource replaces the default random source, tests use it to get
// reproducible results for the random instruction.
func WithRandomSource(random RandomSource) Option {
	return func(ip *Interpreter) {
		ip.random = random
	}
}

// WithExtendedInstructions enables Fx0A, Fx29, Fx33, Fx55 and Fx65.
func WithExtendedInstructions() Option {
	return func(ip *Interpreter) {
		ip.extended = true
	}
}
