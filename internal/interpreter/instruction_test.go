package interpreter

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		op     Op
	}{
		{0x00E0, OpClearScreen},
		{0x00EE, OpReturn},
		{0x0123, OpUnknown},
		{0x1ABC, OpJump},
		{0x2ABC, OpCall},
		{0x3A12, OpSkipEqualImmediate},
		{0x4A12, OpSkipNotEqualImmediate},
		{0x5AB0, OpSkipEqualRegister},
		{0x5AB1, OpUnknown},
		{0x6A12, OpLoadImmediate},
		{0x7A12, OpAddImmediate},
		{0x8AB0, OpLoadRegister},
		{0x8AB1, OpOr},
		{0x8AB2, OpAnd},
		{0x8AB3, OpXor},
		{0x8AB4, OpAddRegister},
		{0x8AB5, OpSub},
		{0x8AB6, OpShiftRight},
		{0x8AB7, OpSubReverse},
		{0x8ABE, OpShiftLeft},
		{0x8AB8, OpUnknown},
		{0x9AB0, OpSkipNotEqualRegister},
		{0x9AB1, OpUnknown},
		{0xA123, OpLoadIndex},
		{0xB123, OpJumpOffset},
		{0xCA12, OpRandom},
		{0xDAB5, OpDraw},
		{0xEA9E, OpSkipKeyDown},
		{0xEAA1, OpSkipKeyUp},
		{0xEA00, OpUnknown},
		{0xFA07, OpLoadDelayTimer},
		{0xFA0A, OpWaitKey},
		{0xFA15, OpSetDelayTimer},
		{0xFA18, OpSetSoundTimer},
		{0xFA1E, OpAddIndex},
		{0xFA29, OpLoadFont},
		{0xFA33, OpStoreBCD},
		{0xFA55, OpStoreRegisters},
		{0xFA65, OpLoadRegisters},
		{0xFAFF, OpUnknown},
	}

	for _, tt := range tests {
		t.Run(Decode(tt.opcode).String(), func(t *testing.T) {
			ins := Decode(tt.opcode)
			assert.Equal(t, tt.op, ins.Op)
			assert.Equal(t, tt.opcode, ins.Opcode)
		})
	}
}

func TestDecode_Operands(t *testing.T) {
	ins := Decode(0xD7C3)

	assert.Equal(t, OpDraw, ins.Op)
	assert.Equal(t, uint8(0x7), ins.X)
	assert.Equal(t, uint8(0xC), ins.Y)
	assert.Equal(t, uint8(0x3), ins.N)
	assert.Equal(t, uint8(0xC3), ins.NN)
	assert.Equal(t, uint16(0x7C3), ins.NNN)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "8xyE", OpShiftLeft.String())
	assert.Equal(t, "Fx0A", OpWaitKey.String())
	assert.Equal(t, "????", OpUnknown.String())
	assert.Equal(t, "????", Op(200).String())
}

func TestInstruction_String(t *testing.T) {
	assert.Equal(t, "Annn ($A544)", Decode(0xA544).String())
}
