// Package keypad implements the 16 key hexadecimal CHIP-8 keypad.
package keypad

// Keys is the number of keys of the keypad.
const Keys = 16

// Keypad holds one latched state per key. Keys stay down until they are
// explicitly released, there is no debounce or auto release.
type Keypad struct {
	keys [Keys]bool
}

// New returns a keypad with all keys released.
func New() *Keypad {
	return &Keypad{}
}

// SetDown marks the key as pressed. Only the low nibble of the index is used.
func (k *Keypad) SetDown(index uint8) {
	k.keys[index&0x0F] = true
}

// SetUp marks the key as released. Only the low nibble of the index is used.
func (k *Keypad) SetUp(index uint8) {
	k.keys[index&0x0F] = false
}

// IsDown returns whether the key is pressed.
func (k *Keypad) IsDown(index uint8) bool {
	return k.keys[index&0x0F]
}

// FirstDown returns the lowest index of all pressed keys.
func (k *Keypad) FirstDown() (uint8, bool) {
	for i, down := range k.keys {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.keys = [Keys]bool{}
}
