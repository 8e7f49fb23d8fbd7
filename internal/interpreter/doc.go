// Package interpreter implements the CHIP-8 virtual machine core.
//
// # Machine Overview
//
// The interpreter owns the complete CHIP-8 machine state:
//   - 4KB of memory (0x000-MaxAddress)
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as carry, borrow and collision flag
//   - the 16-bit index register I and the program counter
//   - a 16 entry call stack of return addresses
//   - the 8-bit delay timer
//   - a framebuffer and a keypad
//
// # Memory Layout
//
//	0x000-0x04F: hexadecimal font glyphs, 16 glyphs of 5 bytes each
//	0x050-0x1FF: unused interpreter area
//	0x200-0xFFF: program and data area, see ProgramStart
//
// # Execution
//
// The interpreter never paces itself. An external driver calls Step to execute a
// single instruction and DecrementTimer at the timer rate, usually 60 Hz.
// Every call returns immediately, the core performs no I/O and does not block.
//
//	ip := interpreter.New(interpreter.WithLogger(logger))
//	if err := ip.WriteMemory(interpreter.ProgramStart, program); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if err := ip.Step(); err != nil {
//			return fmt.Errorf("executing program: %w", err)
//		}
//	}
//
// # Error Handling
//
// Instructions that do not match any known pattern are ignored. Stack underflow,
// stack overflow and memory accesses past MaxAddress are reported as errors
// and leave the machine state as it was before the failing cycle.
//
// # Limitations
//
// The base instruction set leaves Fx0A (wait for key press) and Fx18 (set sound timer)
// as no-ops, and does not know Fx29, Fx33, Fx55 and Fx65. WithExtendedInstructions
// enables a non-blocking Fx0A and the four memory instructions. The sound timer is
// not emulated in any mode.
package interpreter
