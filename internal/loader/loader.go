// Package loader handles program file loading operations.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

// MaxProgramSize is the number of bytes available for a program.
const MaxProgramSize = interpreter.MemorySize - interpreter.ProgramStart

var (
	// ErrEmptyProgram is returned for program files without content.
	ErrEmptyProgram = errors.New("empty program")
	// ErrProgramTooLarge is returned for programs that do not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
)

// MemoryWriter is the part of the interpreter that programs are written to.
type MemoryWriter interface {
	WriteMemory(address uint16, data []byte) error
}

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the program file and writes it to the program start address.
// It returns the size of the program in bytes.
func (l *Loader) Load(fileName string, memory MemoryWriter) (int, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return 0, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	return l.load(file, memory)
}

// LoadBytes writes the program data to the program start address.
// It returns the size of the program in bytes.
func (l *Loader) LoadBytes(data []byte, memory MemoryWriter) (int, error) {
	return l.load(bytes.NewReader(data), memory)
}

func (l *Loader) load(reader io.Reader, memory MemoryWriter) (int, error) {
	// the raw buffer loader pads the data to a full bank, the counter
	// tracks the actual program size.
	counter := &countingReader{reader: reader}
	cart, err := cartridge.LoadBuffer(counter)
	if err != nil {
		return 0, fmt.Errorf("loading program: %w", err)
	}

	size := min(counter.count, len(cart.PRG))
	switch {
	case size == 0:
		return 0, ErrEmptyProgram
	case size > MaxProgramSize:
		return 0, fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, size, MaxProgramSize)
	}

	if err := memory.WriteMemory(interpreter.ProgramStart, cart.PRG[:size]); err != nil {
		return 0, fmt.Errorf("writing program to memory: %w", err)
	}
	return size, nil
}

type countingReader struct {
	reader io.Reader
	count  int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.count += n
	return n, err
}
