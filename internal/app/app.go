// Package app provides the main application helpers for the emulator.
package app

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	archsys "github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints application version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", versionString(version, commit)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintInfo prints the information about the program file to run.
func PrintInfo(logger *log.Logger, opts options.Program, system archsys.System, size int) {
	if opts.Quiet {
		return
	}

	mode := "base"
	if opts.Extended {
		mode = "extended"
	}

	logger.Info("Processing Chip-8 program",
		log.String("file", opts.Input),
		log.Stringer("system", system),
		log.Int("size", size),
		log.String("instructions", mode),
	)
	if opts.Headless {
		logger.Info("Running headless", log.Int("cycles", opts.Cycles))
	}
}

func versionString(version, commit string) string {
	if commit == "" {
		return version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}
