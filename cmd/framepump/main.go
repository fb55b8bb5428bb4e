package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/framepump/internal/adapters/console"
	serialadapter "github.com/bft-labs/framepump/internal/adapters/serial"
	"github.com/bft-labs/framepump/internal/adapters/sim"
	"github.com/bft-labs/framepump/internal/app"
	"github.com/bft-labs/framepump/internal/cliconfig"
	"github.com/bft-labs/framepump/internal/hexfile"
	"github.com/bft-labs/framepump/internal/ports"
	"github.com/bft-labs/framepump/internal/watcher"
	"github.com/bft-labs/framepump/pkg/log"
)

const helpDescription = `
Replay recorded hex frame files over an RS485 serial link at the recorded cadence.

Highlights:
  - Loops a frame file continuously or plays it once with --once.
  - Paces each frame by its content: command frames get a longer lead-in.
  - Simulated mode (--simulate) exercises the full loop without hardware.
  - Reloads the frame file on change with --watch, applied between cycles.

Frame file format:
  Whitespace-separated two-hex-digit byte tokens, case-insensitive.
  Blank lines separate frames; with --line-frames every line is a frame.
`

var exampleUsage = strings.TrimSpace(`
  framepump log_sample.txt
  framepump --device /dev/ttyUSB1 --baud 115200 data.txt
  framepump --once --simulate data.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "framepump <frame-file>",
		Short:   "Replay recorded hex frames over an RS485 serial link",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    cobra.ExactArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default ~/.framepump/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, args[0])
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: ~/.framepump/config.toml)")
	root.Flags().StringVarP(&cfg.Device, "device", "d", cfg.Device, "serial device path")
	root.Flags().IntVarP(&cfg.BaudRate, "baud", "b", cfg.BaudRate, "baud rate")
	root.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "serial read/write timeout")
	root.Flags().BoolVarP(&cfg.Once, "once", "s", cfg.Once, "send one pass and exit instead of looping")
	root.Flags().BoolVarP(&cfg.Simulate, "simulate", "t", cfg.Simulate, "simulated transport, no hardware I/O")
	root.Flags().BoolVar(&cfg.LineFrames, "line-frames", cfg.LineFrames, "treat every non-blank line as its own frame")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload the frame file on change (continuous mode only)")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("framepump")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliconfig.Config, framePath string) error {
	zl := cliconfig.Logger()
	logger := log.NewZerologAdapter(zl)

	framing := hexfile.FramingBlocks
	if cfg.LineFrames {
		framing = hexfile.FramingLines
	}

	text, err := os.ReadFile(framePath)
	if err != nil {
		return fmt.Errorf("read frame file: %w", err)
	}
	frames, err := hexfile.Parse(string(text), framing)
	if err != nil {
		return fmt.Errorf("parse frame file: %w", err)
	}

	var transport ports.Transport
	if cfg.Simulate {
		transport = sim.New()
	} else {
		t, err := serialadapter.Open(serialadapter.Config{
			Device:   cfg.Device,
			BaudRate: cfg.BaudRate,
			Timeout:  cfg.Timeout,
		})
		if err != nil {
			return err
		}
		transport = t
	}
	defer transport.Close()

	reporter := console.New(os.Stdout)
	reporter.ShowConnection(cfg.Device, cfg.BaudRate, cfg.Simulate)
	reporter.ShowFile(framePath, frames.Size())
	reporter.Start()

	ctrl := app.NewController(frames, nil, transport, reporter, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			logger.Info("received signal, stopping...")
			ctrl.Stop()
		case <-ctx.Done():
		}
	}()

	mode := app.Continuous
	if cfg.Once {
		mode = app.SinglePass
	}

	var w *watcher.Watcher
	if cfg.Watch && mode == app.Continuous {
		w = watcher.New(framePath, framing, ctrl, logger)
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
	}

	runErr := ctrl.Run(ctx, mode)
	cancel()
	if w != nil {
		w.Wait()
	}
	reporter.Summary(ctrl.Snapshot())
	return runErr
}
