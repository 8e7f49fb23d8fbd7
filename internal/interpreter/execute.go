package interpreter

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Execute performs the state change of a decoded instruction. It does not
// advance the program counter, it expects the program counter to already
// point past the instruction as Step does before calling Execute.
// Unknown instructions are ignored.
func (ip *Interpreter) Execute(ins Instruction) error {
	x, y := ins.X&0x0F, ins.Y&0x0F

	switch ins.Op {
	case OpClearScreen:
		ip.display.Clear()

	case OpReturn:
		return ip.popReturnAddress()

	case OpJump:
		ip.pc = ins.NNN

	case OpCall:
		return ip.pushReturnAddress(ins.NNN)

	case OpSkipEqualImmediate:
		ip.skipIf(ip.v[x] == ins.NN)

	case OpSkipNotEqualImmediate:
		ip.skipIf(ip.v[x] != ins.NN)

	case OpSkipEqualRegister:
		ip.skipIf(ip.v[x] == ip.v[y])

	case OpLoadImmediate:
		ip.v[x] = ins.NN

	case OpAddImmediate:
		ip.v[x] += ins.NN

	case OpLoadRegister:
		ip.v[x] = ip.v[y]

	case OpOr:
		ip.v[x] |= ip.v[y]

	case OpAnd:
		ip.v[x] &= ip.v[y]

	case OpXor:
		ip.v[x] ^= ip.v[y]

	case OpAddRegister:
		sum := uint16(ip.v[x]) + uint16(ip.v[y])
		ip.v[x] = uint8(sum)
		ip.setFlag(sum > 0xFF)

	case OpSub:
		vx, vy := ip.v[x], ip.v[y]
		ip.v[x] = vx - vy
		ip.setFlag(vx >= vy)

	case OpShiftRight:
		ip.v[flagRegister] = ip.v[x] & 0x01
		ip.v[x] >>= 1

	case OpSubReverse:
		vx, vy := ip.v[x], ip.v[y]
		ip.v[x] = vy - vx
		ip.setFlag(vy >= vx)

	case OpShiftLeft:
		ip.v[flagRegister] = (ip.v[x] & 0x80) >> 7
		ip.v[x] <<= 1

	case OpSkipNotEqualRegister:
		ip.skipIf(ip.v[x] != ip.v[y])

	case OpLoadIndex:
		ip.i = ins.NNN

	case OpJumpOffset:
		ip.pc = ins.NNN + uint16(ip.v[0])

	case OpRandom:
		ip.v[x] = ip.random.Byte() & ins.NN

	case OpDraw:
		return ip.draw(x, y, ins.N)

	case OpSkipKeyDown:
		ip.skipIf(ip.keys.IsDown(ip.v[x]))

	case OpSkipKeyUp:
		ip.skipIf(!ip.keys.IsDown(ip.v[x]))

	case OpLoadDelayTimer:
		ip.v[x] = ip.delayTimer

	case OpSetDelayTimer:
		ip.delayTimer = ip.v[x]

	case OpAddIndex:
		ip.i += uint16(ip.v[x])

	case OpWaitKey, OpLoadFont, OpStoreBCD, OpStoreRegisters, OpLoadRegisters:
		if !ip.extended {
			ip.ignore(ins)
			return nil
		}
		return ip.executeExtended(ins, x)

	default:
		// OpUnknown and OpSetSoundTimer, the sound timer is not emulated
		ip.ignore(ins)
	}

	return nil
}

// executeExtended executes the instructions that are only available
// with WithExtendedInstructions.
func (ip *Interpreter) executeExtended(ins Instruction, x uint8) error {
	switch ins.Op {
	case OpWaitKey:
		key, ok := ip.keys.FirstDown()
		if !ok {
			// execute the instruction again on the next cycle
			if ip.pc >= opcodeSize {
				ip.pc -= opcodeSize
			}
			return nil
		}
		ip.v[x] = key

	case OpLoadFont:
		ip.i = FontStart + uint16(ip.v[x]&0x0F)*glyphSize

	case OpStoreBCD:
		if err := ip.checkIndexRange(3); err != nil {
			return err
		}
		value := ip.v[x]
		ip.memory[ip.i] = value / 100
		ip.memory[ip.i+1] = value / 10 % 10
		ip.memory[ip.i+2] = value % 10

	case OpStoreRegisters:
		if err := ip.checkIndexRange(int(x) + 1); err != nil {
			return err
		}
		copy(ip.memory[ip.i:], ip.v[:x+1])

	case OpLoadRegisters:
		if err := ip.checkIndexRange(int(x) + 1); err != nil {
			return err
		}
		copy(ip.v[:x+1], ip.memory[ip.i:])
	}
	return nil
}

func (ip *Interpreter) pushReturnAddress(address uint16) error {
	if ip.sp >= StackSize {
		return ErrStackOverflow
	}
	ip.stack[ip.sp] = ip.pc
	ip.sp++
	ip.pc = address
	return nil
}

func (ip *Interpreter) popReturnAddress() error {
	if ip.sp == 0 {
		return ErrStackUnderflow
	}
	ip.sp--
	ip.pc = ip.stack[ip.sp]
	return nil
}

// draw blits the n byte sprite at I to the position stored in Vx and Vy
// and sets VF on collision.
func (ip *Interpreter) draw(x, y, n uint8) error {
	if err := ip.checkIndexRange(int(n)); err != nil {
		return err
	}

	sprite := ip.memory[ip.i : int(ip.i)+int(n)]
	collision := ip.display.Draw(int(ip.v[x]), int(ip.v[y]), sprite)
	ip.setFlag(collision)
	return nil
}

// checkIndexRange verifies that length bytes starting at I are inside memory.
func (ip *Interpreter) checkIndexRange(length int) error {
	if int(ip.i)+length > MemorySize {
		return fmt.Errorf("accessing %d bytes at $%04X: %w", length, ip.i, ErrAddressOutOfRange)
	}
	return nil
}

func (ip *Interpreter) skipIf(condition bool) {
	if condition {
		ip.pc += opcodeSize
	}
}

func (ip *Interpreter) setFlag(set bool) {
	if set {
		ip.v[flagRegister] = 1
	} else {
		ip.v[flagRegister] = 0
	}
}

func (ip *Interpreter) ignore(ins Instruction) {
	if ip.logger == nil {
		return
	}
	ip.logger.Debug("Ignoring instruction",
		log.Hex("opcode", ins.Opcode),
		log.String("pattern", ins.Op.String()),
		log.String("mnemonic", Mnemonic(ins.Opcode)))
}
