package interpreter

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Mnemonic returns the assembler mnemonic of the opcode as defined by the
// CHIP-8 opcode table, or an empty string for words that are not part of
// the instruction set.
func Mnemonic(opcode uint16) string {
	ins := lookupInstruction(opcode)
	if ins == nil {
		return ""
	}
	return ins.Name
}

func lookupInstruction(opcode uint16) *chip8.Instruction {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}
