package keypad

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad_SetDownSetUp(t *testing.T) {
	k := New()

	for i := range uint8(Keys) {
		assert.False(t, k.IsDown(i))
	}

	k.SetDown(0xA)
	assert.True(t, k.IsDown(0xA))
	assert.False(t, k.IsDown(0xB))

	// pressing again keeps the latch
	k.SetDown(0xA)
	assert.True(t, k.IsDown(0xA))

	k.SetUp(0xA)
	assert.False(t, k.IsDown(0xA))
}

func TestKeypad_IndexMasked(t *testing.T) {
	k := New()

	k.SetDown(0x13)
	assert.True(t, k.IsDown(0x3))
	assert.True(t, k.IsDown(0xF3))

	k.SetUp(0x23)
	assert.False(t, k.IsDown(0x3))
}

func TestKeypad_FirstDown(t *testing.T) {
	k := New()

	_, ok := k.FirstDown()
	assert.False(t, ok)

	k.SetDown(0xE)
	k.SetDown(0x5)
	key, ok := k.FirstDown()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x5), key)
}

func TestKeypad_Reset(t *testing.T) {
	k := New()
	k.SetDown(0x0)
	k.SetDown(0xF)

	k.Reset()

	_, ok := k.FirstDown()
	assert.False(t, ok)
}
