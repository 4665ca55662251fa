package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/zha-logfmt/internal/config"
	"github.com/muurk/zha-logfmt/internal/logfmt"
	"github.com/muurk/zha-logfmt/internal/logging"
	"github.com/muurk/zha-logfmt/internal/ui"
	"github.com/muurk/zha-logfmt/internal/urls"
)

// Flags shared by the root and config commands
var (
	deviceNWK    string
	deviceIEEE   string
	moduleFilter string
	colorMode    string
	logLevel     string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&deviceNWK, "nwk", "", "Zigbee short address to follow (overrides DEVICE_NWK)")
	flags.StringVar(&deviceIEEE, "ieee", "", "IEEE/EUI-64 address to follow (overrides DEVICE_IEEE)")
	flags.StringVar(&moduleFilter, "modules", "", "Pipe-separated module names (overrides MODULE_FILTER)")
	flags.StringVar(&logLevel, "log-level", "", "Diagnostic log level on stderr (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Colour output (auto, always, never)")
}

// loadConfig reads the environment and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("nwk") {
		o.DeviceNWK = &deviceNWK
	}
	if flags.Changed("ieee") {
		o.DeviceIEEE = &deviceIEEE
	}
	if flags.Changed("modules") {
		o.ModuleFilter = &moduleFilter
	}
	return config.Load(o)
}

func runFormat(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	mode, err := ui.ParseColorMode(colorMode)
	if err != nil {
		return err
	}

	logging.Info("Starting formatter",
		zap.String("device_nwk", cfg.DeviceNWK),
		zap.String("device_ieee", cfg.DeviceIEEE),
		zap.Strings("modules", cfg.Modules),
		zap.Stringer("color", mode),
	)

	// Writes to a closed stdout must fail with EPIPE instead of killing the
	// process, so the processor can report ErrSinkClosed.
	signal.Ignore(syscall.SIGPIPE)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	defer close(done)
	go exitOnInterrupt(ctx, done)

	if len(args) == 0 && ui.IsTerminal(os.Stdin) && cmd.InOrStdin() == os.Stdin {
		fmt.Fprintf(os.Stderr, "zha-logfmt: reading from the terminal; pipe logs in, e.g. 'ha core logs -f | zha-logfmt'\n"+
			"zha-logfmt: enable Zigbee debug logging first, see %s\n", urls.ZHAIntegration)
	}

	out := cmd.OutOrStdout()
	proc := logfmt.NewProcessor(cfg)
	proc.SetRenderer(ui.NewRecordRenderer(out, mode))

	err = formatInputs(ctx, proc, args, cmd.InOrStdin(), out)
	if errors.Is(err, logfmt.ErrSinkClosed) {
		logging.Silence()
		return nil
	}
	if err != nil {
		return err
	}

	stats := proc.Stats()
	logging.Info("Stream finished",
		zap.Int("lines_read", stats.Read),
		zap.Int("lines_emitted", stats.Emitted),
		zap.Int("dropped_module", stats.DroppedModule),
		zap.Int("dropped_device", stats.DroppedDevice),
		zap.Int("dropped_prefix", stats.DroppedPrefix),
	)
	return nil
}

// exitOnInterrupt ends the process quietly when ctx is cancelled by a signal.
// The read loop may be blocked on stdin, so waiting for it is not an option.
func exitOnInterrupt(ctx context.Context, done <-chan struct{}) {
	select {
	case <-ctx.Done():
		logging.Debug("Interrupted")
		logging.Sync()
		os.Exit(0)
	case <-done:
	}
}

// formatInputs runs proc over each named input in order. "-" and an empty
// list mean stdin.
func formatInputs(ctx context.Context, proc *logfmt.Processor, paths []string, stdin io.Reader, out io.Writer) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	for _, path := range paths {
		if proc.State() == logfmt.StateStopped {
			return nil
		}

		if path == "-" {
			if err := proc.Run(ctx, stdin, out); err != nil {
				return err
			}
			continue
		}

		if err := formatFile(ctx, proc, path, out); err != nil {
			return err
		}
	}
	return nil
}

func formatFile(ctx context.Context, proc *logfmt.Processor, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	logging.Debug("Reading file", zap.String("path", path))
	if err := proc.Run(ctx, f, out); err != nil {
		if errors.Is(err, logfmt.ErrSinkClosed) {
			return err
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration zha-logfmt would run with, after reading
DEVICE_NWK, DEVICE_IEEE and MODULE_FILTER and applying any flags.`,
	Example: `  DEVICE_NWK=0x92A7 zha-logfmt config
  zha-logfmt config --modules 'zigpy_znp|zha'`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := cfg.YAML()
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
