package app

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestVersionString(t *testing.T) {
	assert.Equal(t, "dev", versionString("dev", ""))
	assert.Equal(t, "1.0.0 (abc1234)", versionString("1.0.0", "abc1234def"))
	assert.Equal(t, "1.0.0 (abc)", versionString("1.0.0", "abc"))
}

func TestPrintInfo(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.New()
	opts.Input = "test.ch8"
	opts.Headless = true

	PrintInfo(logger, opts, arch.CHIP8System, 6)
	PrintBanner(logger, opts, "dev", "abc1234def", "2026-10-19")

	opts.Quiet = true
	PrintInfo(logger, opts, arch.CHIP8System, 6)
	PrintBanner(logger, opts, "dev", "", "")
}
