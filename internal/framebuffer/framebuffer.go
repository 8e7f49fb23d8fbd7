// Package framebuffer implements the monochrome CHIP-8 pixel grid.
package framebuffer

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32

	// Size is the number of pixels of the grid.
	Size = Width * Height
)

// spriteWidth is the number of pixels encoded by a single sprite row byte.
const spriteWidth = 8

// Framebuffer is a 64x32 grid of pixels stored one byte per pixel (0 or 1)
// in row-major order.
type Framebuffer struct {
	pixels [Size]byte
}

// New returns a cleared framebuffer.
func New() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns off every pixel.
func (f *Framebuffer) Clear() {
	clear(f.pixels[:])
}

// SetPixel sets the pixel at x, y. The coordinates have to be inside the grid.
func (f *Framebuffer) SetPixel(x, y int, on bool) {
	var value byte
	if on {
		value = 1
	}
	f.pixels[x+y*Width] = value
}

// Pixel returns whether the pixel at x, y is on. The coordinates have to be inside the grid.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.pixels[x+y*Width] == 1
}

// Draw XORs the sprite onto the grid with its top left corner at x, y.
// Every byte of the sprite is one row, the most significant bit is the leftmost
// pixel. Pixels that fall outside the grid wrap around to the opposite edge.
// It returns true if any set sprite bit hit a pixel that was already on.
func (f *Framebuffer) Draw(x, y int, sprite []byte) bool {
	collision := false

	for row, data := range sprite {
		for col := range spriteWidth {
			if data>>(spriteWidth-1-col)&0x01 == 0 {
				continue
			}

			px := wrap(x+col, Width)
			py := wrap(y+row, Height)

			old := f.Pixel(px, py)
			if old {
				collision = true
			}
			f.SetPixel(px, py, !old)
		}
	}

	return collision
}

// Pixels returns a copy of the grid, one byte per pixel in row-major order.
func (f *Framebuffer) Pixels() []byte {
	pixels := make([]byte, Size)
	copy(pixels, f.pixels[:])
	return pixels
}

// wrap maps a coordinate into 0..size-1, negative coordinates included.
func wrap(value, size int) int {
	return (value%size + size) % size
}
