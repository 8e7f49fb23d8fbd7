// Package runner drives the interpreter: it executes instructions at the
// configured clock rate, decrements the delay timer at the timer rate, hands
// the framebuffer to a display and applies key events to the keypad.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/log"
)

// Display receives the pixel grid, one byte per pixel in row-major order.
type Display interface {
	Render(pixels []byte) error
}

// Input delivers key events. The channel is read by the runner goroutine only.
type Input interface {
	Events() <-chan Event
}

// Event is a key state change or a request to stop the emulation.
type Event struct {
	Key  uint8
	Down bool
	Quit bool
}

// Config contains the pacing of the runner.
type Config struct {
	ClockHz int // instructions per second
	TimerHz int // delay timer decrements per second
	FrameHz int // display refreshes per second
}

// Runner owns the interpreter for the duration of a run, all calls to it are
// made from the goroutine that executes Run or RunCycles.
type Runner struct {
	logger  *log.Logger
	vm      *interpreter.Interpreter
	display Display
	input   Input
	cfg     Config
}

// New returns a new runner. The input can be nil for runs without key events.
func New(logger *log.Logger, vm *interpreter.Interpreter, display Display, input Input, cfg Config) *Runner {
	return &Runner{
		logger:  logger,
		vm:      vm,
		display: display,
		input:   input,
		cfg:     cfg,
	}
}

// Run executes the program until the context is canceled, a quit event is
// received or the interpreter fails. Instructions are executed in batches
// once per frame, the delay timer is decremented by its own ticker.
func (r *Runner) Run(ctx context.Context) error {
	frame := time.NewTicker(time.Second / time.Duration(r.cfg.FrameHz))
	defer frame.Stop()
	timer := time.NewTicker(time.Second / time.Duration(r.cfg.TimerHz))
	defer timer.Stop()

	var events <-chan Event
	if r.input != nil {
		events = r.input.Events()
	}

	cycles := r.cyclesPerFrame()
	r.logger.Debug("Starting emulation",
		log.Int("clock_hz", r.cfg.ClockHz),
		log.Int("timer_hz", r.cfg.TimerHz),
		log.Int("cycles_per_frame", cycles))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if event.Quit {
				r.logger.Debug("Quit requested")
				return nil
			}
			r.applyEvent(event)

		case <-timer.C:
			r.vm.DecrementTimer()

		case <-frame.C:
			for range cycles {
				if err := r.step(); err != nil {
					return err
				}
			}
			if err := r.render(); err != nil {
				return err
			}
		}
	}
}

// RunCycles executes the given number of instructions without any wall-clock
// pacing. The delay timer is decremented in the ratio of timer to clock rate
// and the display is rendered once at the end.
func (r *Runner) RunCycles(cycles int) error {
	cyclesPerTimerTick := max(1, r.cfg.ClockHz/r.cfg.TimerHz)

	for cycle := 1; cycle <= cycles; cycle++ {
		if err := r.step(); err != nil {
			return err
		}
		if cycle%cyclesPerTimerTick == 0 {
			r.vm.DecrementTimer()
		}
	}

	return r.render()
}

func (r *Runner) cyclesPerFrame() int {
	return max(1, r.cfg.ClockHz/r.cfg.FrameHz)
}

func (r *Runner) step() error {
	pc := r.vm.PC()
	if err := r.vm.Step(); err != nil {
		opcode, _ := r.vm.CurrentOpcode()
		r.logger.Error("Execution stopped",
			log.Hex("pc", pc),
			log.Hex("opcode", opcode),
			log.String("mnemonic", interpreter.Mnemonic(opcode)))
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func (r *Runner) render() error {
	if r.display == nil {
		return nil
	}
	if err := r.display.Render(r.vm.Framebuffer().Pixels()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}

func (r *Runner) applyEvent(event Event) {
	keys := r.vm.Keypad()
	if event.Down {
		keys.SetDown(event.Key)
	} else {
		keys.SetUp(event.Key)
	}
}
