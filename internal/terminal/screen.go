// Package terminal implements the display sink and the keyboard input of the
// emulator on top of a tcell terminal screen.
package terminal

import (
	"fmt"
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell"
	"github.com/retroenv/retrochip8/internal/framebuffer"
	"github.com/retroenv/retrochip8/internal/runner"
)

// keyMap maps the left side of a QWERTY keyboard to the COSMAC VIP keypad layout:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var keyMap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Screen renders the framebuffer to a terminal and translates terminal key
// presses to keypad events. Terminals do not report key releases, a key is
// released after the configured hold duration unless it repeats.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	hold   time.Duration

	events chan runner.Event
	done   chan struct{}
	wg     sync.WaitGroup

	mu       sync.Mutex
	releases map[uint8]*time.Timer
	closed   bool
}

// NewScreen initializes the tcell screen and returns a terminal display.
func NewScreen(screen tcell.Screen, hold time.Duration) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &Screen{
		screen:   screen,
		style:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		hold:     hold,
		events:   make(chan runner.Event, 16),
		done:     make(chan struct{}),
		releases: make(map[uint8]*time.Timer),
	}, nil
}

// Start begins polling terminal events.
func (s *Screen) Start() {
	s.wg.Add(1)
	go s.poll()
}

// Events returns the keypad and quit events.
func (s *Screen) Events() <-chan runner.Event {
	return s.events
}

// Render draws the pixel grid using half block runes, every terminal cell
// shows two vertically adjacent pixels.
func (s *Screen) Render(pixels []byte) error {
	if len(pixels) != framebuffer.Size {
		return fmt.Errorf("invalid frame size %d, expected %d", len(pixels), framebuffer.Size)
	}

	for row := range framebuffer.Height / 2 {
		top := pixels[2*row*framebuffer.Width:]
		bottom := pixels[(2*row+1)*framebuffer.Width:]
		for x := range framebuffer.Width {
			s.screen.SetContent(x, row, cellRune(top[x] == 1, bottom[x] == 1), nil, s.style)
		}
	}

	s.screen.Show()
	return nil
}

// Close stops the event polling and restores the terminal.
func (s *Screen) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, timer := range s.releases {
		timer.Stop()
	}
	s.mu.Unlock()

	close(s.done)
	s.screen.Fini()
	s.wg.Wait()
}

func (s *Screen) poll() {
	defer s.wg.Done()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.handleKey(ev)
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func (s *Screen) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.send(runner.Event{Quit: true})
		return
	case tcell.KeyRune:
	default:
		return
	}

	key, ok := keyMap[unicode.ToLower(ev.Rune())]
	if !ok {
		return
	}

	s.send(runner.Event{Key: key, Down: true})
	s.scheduleRelease(key)
}

// scheduleRelease sends a key release after the hold duration, a repeated
// press of the same key restarts the countdown.
func (s *Screen) scheduleRelease(key uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if timer, ok := s.releases[key]; ok {
		timer.Stop()
	}
	s.releases[key] = time.AfterFunc(s.hold, func() {
		s.send(runner.Event{Key: key})
	})
}

func (s *Screen) send(event runner.Event) {
	select {
	case s.events <- event:
	case <-s.done:
	}
}

func cellRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
