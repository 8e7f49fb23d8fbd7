// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell"
	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader

	newScreen func() (tcell.Screen, error)
	output    io.Writer // headless frame output
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:    logger,
		detector:  detector.New(logger),
		loader:    loader.New(),
		newScreen: tcell.NewScreen,
		output:    os.Stdout,
	}
}

// Execute detects the system, loads the program and runs it until it is
// stopped. In headless mode the configured number of cycles is executed and
// the final frame is printed.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	system, err := p.detector.Detect(opts)
	if err != nil {
		return fmt.Errorf("detecting system: %w", err)
	}

	vm := interpreter.New(config.InterpreterOptions(p.logger, opts)...)

	size, err := p.loader.Load(opts.Input, vm)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	app.PrintInfo(p.logger, opts, system, size)

	if opts.Headless {
		return p.runHeadless(vm, opts)
	}
	return p.runTerminal(ctx, vm, opts)
}

func (p *Pipeline) runHeadless(vm *interpreter.Interpreter, opts options.Program) error {
	display := terminal.NewTextDisplay(p.output)
	r := runner.New(p.logger, vm, display, nil, config.RunnerConfig(opts))

	if err := r.RunCycles(opts.Cycles); err != nil {
		return fmt.Errorf("running headless: %w", err)
	}
	return nil
}

func (p *Pipeline) runTerminal(ctx context.Context, vm *interpreter.Interpreter, opts options.Program) error {
	tcellScreen, err := p.newScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}

	screen, err := terminal.NewScreen(tcellScreen, opts.KeyHold)
	if err != nil {
		return err
	}
	defer screen.Close()
	screen.Start()

	r := runner.New(p.logger, vm, screen, screen, config.RunnerConfig(opts))
	if err := r.Run(ctx); err != nil {
		return fmt.Errorf("running emulation: %w", err)
	}
	return nil
}
