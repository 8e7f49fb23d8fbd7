package interpreter

import "fmt"

// Op identifies the class of a decoded instruction.
type Op uint8

// Instruction classes, named after the nibble pattern they are decoded from.
const (
	OpUnknown Op = iota
	OpClearScreen           // 00E0
	OpReturn                // 00EE
	OpJump                  // 1nnn
	OpCall                  // 2nnn
	OpSkipEqualImmediate    // 3xnn
	OpSkipNotEqualImmediate // 4xnn
	OpSkipEqualRegister     // 5xy0
	OpLoadImmediate         // 6xnn
	OpAddImmediate          // 7xnn
	OpLoadRegister          // 8xy0
	OpOr                    // 8xy1
	OpAnd                   // 8xy2
	OpXor                   // 8xy3
	OpAddRegister           // 8xy4
	OpSub                   // 8xy5
	OpShiftRight            // 8xy6
	OpSubReverse            // 8xy7
	OpShiftLeft             // 8xyE
	OpSkipNotEqualRegister  // 9xy0
	OpLoadIndex             // Annn
	OpJumpOffset            // Bnnn
	OpRandom                // Cxnn
	OpDraw                  // Dxyn
	OpSkipKeyDown           // Ex9E
	OpSkipKeyUp             // ExA1
	OpLoadDelayTimer        // Fx07
	OpWaitKey               // Fx0A
	OpSetDelayTimer         // Fx15
	OpSetSoundTimer         // Fx18
	OpAddIndex              // Fx1E
	OpLoadFont              // Fx29
	OpStoreBCD              // Fx33
	OpStoreRegisters        // Fx55
	OpLoadRegisters         // Fx65
)

var opPatterns = [...]string{
	OpUnknown:               "????",
	OpClearScreen:           "00E0",
	OpReturn:                "00EE",
	OpJump:                  "1nnn",
	OpCall:                  "2nnn",
	OpSkipEqualImmediate:    "3xnn",
	OpSkipNotEqualImmediate: "4xnn",
	OpSkipEqualRegister:     "5xy0",
	OpLoadImmediate:         "6xnn",
	OpAddImmediate:          "7xnn",
	OpLoadRegister:          "8xy0",
	OpOr:                    "8xy1",
	OpAnd:                   "8xy2",
	OpXor:                   "8xy3",
	OpAddRegister:           "8xy4",
	OpSub:                   "8xy5",
	OpShiftRight:            "8xy6",
	OpSubReverse:            "8xy7",
	OpShiftLeft:             "8xyE",
	OpSkipNotEqualRegister:  "9xy0",
	OpLoadIndex:             "Annn",
	OpJumpOffset:            "Bnnn",
	OpRandom:                "Cxnn",
	OpDraw:                  "Dxyn",
	OpSkipKeyDown:           "Ex9E",
	OpSkipKeyUp:             "ExA1",
	OpLoadDelayTimer:        "Fx07",
	OpWaitKey:               "Fx0A",
	OpSetDelayTimer:         "Fx15",
	OpSetSoundTimer:         "Fx18",
	OpAddIndex:              "Fx1E",
	OpLoadFont:              "Fx29",
	OpStoreBCD:              "Fx33",
	OpStoreRegisters:        "Fx55",
	OpLoadRegisters:         "Fx65",
}

// String returns the nibble pattern of the instruction class.
func (o Op) String() string {
	if int(o) < len(opPatterns) {
		return opPatterns[o]
	}
	return opPatterns[OpUnknown]
}

// Instruction is a decoded instruction word. Only the operand fields that
// belong to the instruction class carry meaning.
type Instruction struct {
	Op     Op
	Opcode uint16 // raw instruction word

	X   uint8  // register index, second nibble
	Y   uint8  // register index, third nibble
	N   uint8  // 4-bit immediate, fourth nibble
	NN  uint8  // 8-bit immediate, low byte
	NNN uint16 // 12-bit address
}

// String returns the instruction class and the raw word.
func (ins Instruction) String() string {
	return fmt.Sprintf("%s ($%04X)", ins.Op, ins.Opcode)
}

// Decode splits the opcode into its nibbles and operand fields and
// identifies the instruction class. Words that do not match any known
// pattern decode to OpUnknown.
func Decode(opcode uint16) Instruction {
	op1 := uint8(opcode >> 12)
	op2 := uint8(opcode>>8) & 0x0F
	op3 := uint8(opcode>>4) & 0x0F
	op4 := uint8(opcode) & 0x0F

	return Instruction{
		Op:     decodeOp(op1, op2, op3, op4),
		Opcode: opcode,
		X:      op2,
		Y:      op3,
		N:      op4,
		NN:     uint8(opcode),
		NNN:    opcode & 0x0FFF,
	}
}

func decodeOp(op1, op2, op3, op4 uint8) Op {
	switch op1 {
	case 0x0:
		switch {
		case op2 == 0x0 && op3 == 0xE && op4 == 0x0:
			return OpClearScreen
		case op2 == 0x0 && op3 == 0xE && op4 == 0xE:
			return OpReturn
		}
	case 0x1:
		return OpJump
	case 0x2:
		return OpCall
	case 0x3:
		return OpSkipEqualImmediate
	case 0x4:
		return OpSkipNotEqualImmediate
	case 0x5:
		if op4 == 0x0 {
			return OpSkipEqualRegister
		}
	case 0x6:
		return OpLoadImmediate
	case 0x7:
		return OpAddImmediate
	case 0x8:
		return decodeArithmetic(op4)
	case 0x9:
		if op4 == 0x0 {
			return OpSkipNotEqualRegister
		}
	case 0xA:
		return OpLoadIndex
	case 0xB:
		return OpJumpOffset
	case 0xC:
		return OpRandom
	case 0xD:
		return OpDraw
	case 0xE:
		switch {
		case op3 == 0x9 && op4 == 0xE:
			return OpSkipKeyDown
		case op3 == 0xA && op4 == 0x1:
			return OpSkipKeyUp
		}
	case 0xF:
		return decodeMisc(op3<<4 | op4)
	}
	return OpUnknown
}

func decodeArithmetic(op4 uint8) Op {
	switch op4 {
	case 0x0:
		return OpLoadRegister
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddRegister
	case 0x5:
		return OpSub
	case 0x6:
		return OpShiftRight
	case 0x7:
		return OpSubReverse
	case 0xE:
		return OpShiftLeft
	}
	return OpUnknown
}

func decodeMisc(low uint8) Op {
	switch low {
	case 0x07:
		return OpLoadDelayTimer
	case 0x0A:
		return OpWaitKey
	case 0x15:
		return OpSetDelayTimer
	case 0x18:
		return OpSetSoundTimer
	case 0x1E:
		return OpAddIndex
	case 0x29:
		return OpLoadFont
	case 0x33:
		return OpStoreBCD
	case 0x55:
		return OpStoreRegisters
	case 0x65:
		return OpLoadRegisters
	}
	return OpUnknown
}
