package interpreter

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory and register constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// ProgramStart is the address that programs are loaded to and execution starts at.
	ProgramStart = 0x200

	// StackSize is the number of return addresses the call stack can hold.
	StackSize = 16

	// Registers is the number of general-purpose registers.
	Registers = 16

	// opcodeSize is the size of an instruction in bytes.
	opcodeSize = 2

	// flagRegister is the index of VF.
	flagRegister = 0xF
)

// Interpreter is a CHIP-8 virtual machine. It exclusively owns its memory,
// registers, framebuffer and keypad. It is not safe for concurrent use,
// embedders have to serialize all calls.
type Interpreter struct {
	logger *log.Logger
	random RandomSource

	extended bool // enables Fx0A, Fx29, Fx33, Fx55 and Fx65

	i      uint16
	pc     uint16
	memory [MemorySize]byte
	v      [Registers]uint8

	stack [StackSize]uint16
	sp    uint8

	delayTimer uint8

	display *framebuffer.Framebuffer
	keys    *keypad.Keypad
}

// New returns a new interpreter that is reset and ready to have a program
// written to ProgramStart.
func New(options ...Option) *Interpreter {
	ip := &Interpreter{
		random:  globalRandom{},
		display: framebuffer.New(),
		keys:    keypad.New(),
	}
	for _, option := range options {
		option(ip)
	}

	ip.Reset()
	return ip
}

// Reset loads the font, clears registers, stack, timer and framebuffer and
// sets the program counter to ProgramStart. Memory outside of the font area
// and the keypad state are kept.
func (ip *Interpreter) Reset() {
	copy(ip.memory[FontStart:], fontSet[:])

	ip.i = 0
	ip.pc = ProgramStart
	ip.v = [Registers]uint8{}
	ip.stack = [StackSize]uint16{}
	ip.sp = 0
	ip.delayTimer = 0

	ip.display.Clear()
}

// CurrentOpcode returns the big-endian instruction word at the program counter.
func (ip *Interpreter) CurrentOpcode() (uint16, error) {
	if int(ip.pc)+1 > MaxAddress {
		return 0, fmt.Errorf("fetching opcode at $%04X: %w", ip.pc, ErrAddressOutOfRange)
	}

	high := uint16(ip.memory[ip.pc])
	low := uint16(ip.memory[ip.pc+1])
	return high<<8 | low, nil
}

// Step executes a single instruction. The program counter is advanced past
// the instruction before it is executed, so that jumps and skips operate on the
// address of the following instruction. If the instruction fails, the machine
// state is left as it was before the call.
func (ip *Interpreter) Step() error {
	opcode, err := ip.CurrentOpcode()
	if err != nil {
		return err
	}

	pc := ip.pc
	ip.pc += opcodeSize

	ins := Decode(opcode)
	if err := ip.Execute(ins); err != nil {
		ip.pc = pc
		return fmt.Errorf("executing %s at $%03X: %w", ins, pc, err)
	}
	return nil
}

// DecrementTimer decrements the delay timer until it reaches 0.
func (ip *Interpreter) DecrementTimer() {
	if ip.delayTimer > 0 {
		ip.delayTimer--
	}
}

// PC returns the program counter.
func (ip *Interpreter) PC() uint16 {
	return ip.pc
}

// I returns the index register.
func (ip *Interpreter) I() uint16 {
	return ip.i
}

// V returns the general-purpose register x, only the low nibble of x is used.
func (ip *Interpreter) V(x uint8) uint8 {
	return ip.v[x&0x0F]
}

// SP returns the number of return addresses on the stack.
func (ip *Interpreter) SP() uint8 {
	return ip.sp
}

// DelayTimer returns the delay timer value.
func (ip *Interpreter) DelayTimer() uint8 {
	return ip.delayTimer
}

// SetDelayTimer sets the delay timer value.
func (ip *Interpreter) SetDelayTimer(value uint8) {
	ip.delayTimer = value
}

// ReadMemory returns the byte at the given address.
func (ip *Interpreter) ReadMemory(address uint16) (byte, error) {
	if address > MaxAddress {
		return 0, fmt.Errorf("reading memory at $%04X: %w", address, ErrAddressOutOfRange)
	}
	return ip.memory[address], nil
}

// WriteMemory copies data into memory starting at the given address.
// Nothing is written if the data does not fit.
func (ip *Interpreter) WriteMemory(address uint16, data []byte) error {
	if int(address)+len(data) > MemorySize {
		return fmt.Errorf("writing %d bytes at $%04X: %w", len(data), address, ErrAddressOutOfRange)
	}
	copy(ip.memory[address:], data)
	return nil
}

// Framebuffer returns the framebuffer that the draw instructions render to.
func (ip *Interpreter) Framebuffer() *framebuffer.Framebuffer {
	return ip.display
}

// Keypad returns the keypad that the key instructions query.
func (ip *Interpreter) Keypad() *keypad.Keypad {
	return ip.keys
}
