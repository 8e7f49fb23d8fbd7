package terminal

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/framebuffer"
)

// TextDisplay writes every frame as lines of '#' for lit and '.' for dark pixels.
type TextDisplay struct {
	writer io.Writer
}

// NewTextDisplay returns a display that writes frames to the writer.
func NewTextDisplay(writer io.Writer) *TextDisplay {
	return &TextDisplay{
		writer: writer,
	}
}

// Render writes the frame followed by an empty line.
func (d *TextDisplay) Render(pixels []byte) error {
	if len(pixels) != framebuffer.Size {
		return fmt.Errorf("invalid frame size %d, expected %d", len(pixels), framebuffer.Size)
	}

	buf := make([]byte, 0, (framebuffer.Width+1)*framebuffer.Height+1)
	for y := range framebuffer.Height {
		for _, pixel := range pixels[y*framebuffer.Width : (y+1)*framebuffer.Width] {
			if pixel == 1 {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, '\n')

	if _, err := d.writer.Write(buf); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
