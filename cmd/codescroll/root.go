package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kk-code-lab/codescroll/internal/app"
	"github.com/kk-code-lab/codescroll/internal/highlight"
	"github.com/kk-code-lab/codescroll/internal/log"
	"github.com/kk-code-lab/codescroll/internal/playback"
	"github.com/kk-code-lab/codescroll/internal/scan"
)

// minTickInterval keeps the tick rate from pegging a CPU core.
const minTickInterval = 5 * time.Millisecond

type rootFlags struct {
	speedMs     uint64
	step        int
	loop        bool
	exts        string
	maxKB       int64
	randomStart bool
	theme       string
	watch       bool
	logFile     string
}

func newRootCommand() *cobra.Command {
	flags := rootFlags{}

	cmd := &cobra.Command{
		Use:   "codescroll PATH",
		Short: "Auto-scroll through source files with syntax coloring",
		Long: `codescroll walks PATH for source files and plays them back in the
terminal, scrolling automatically and advancing to the next file when the
current one runs out. PATH may also be a single file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], flags)
		},
	}

	cmd.Flags().Uint64Var(&flags.speedMs, "speed-ms", 60, "milliseconds between scroll ticks")
	cmd.Flags().IntVar(&flags.step, "step", 1, "lines scrolled per tick")
	cmd.Flags().BoolVar(&flags.loop, "loop", true, "wrap to the first file after the last")
	cmd.Flags().StringVar(&flags.exts, "exts", "", "comma-separated extensions to include (default: common source extensions)")
	cmd.Flags().Int64Var(&flags.maxKB, "max-kb", 512, "skip files larger than this many KiB")
	cmd.Flags().BoolVar(&flags.randomStart, "random-start", false, "start at a random file in the queue")
	cmd.Flags().StringVar(&flags.theme, "theme", highlight.DefaultStyle, "syntax color style")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "reload the current file when it changes on disk")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "append debug logs to this file")

	return cmd
}

func run(root string, flags rootFlags) error {
	if flags.logFile != "" {
		if err := log.Setup(flags.logFile); err != nil {
			return err
		}
	}

	tick := time.Duration(flags.speedMs) * time.Millisecond
	if tick < minTickInterval {
		tick = minTickInterval
	}
	step := flags.step
	if step < 1 {
		step = 1
	}

	files, err := scan.Collect(root, scan.Options{
		Extensions: scan.ParseExtensions(flags.exts),
		MaxBytes:   flags.maxKB * 1024,
	})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no matching code files found under %s", root)
	}
	log.Infof("queued %d files under %s", len(files), root)

	application, err := app.NewApplication(app.Options{
		Files: files,
		Config: playback.Config{
			TickInterval: tick,
			Step:         step,
			Loop:         flags.loop,
			RandomStart:  flags.randomStart,
		},
		MaxBytes: flags.maxKB * 1024,
		Theme:    flags.theme,
		Watch:    flags.watch,
	})
	if err != nil {
		return err
	}

	return application.Run()
}
