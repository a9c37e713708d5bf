package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/pipemind/internal/app"
	"github.com/atomicstack/pipemind/internal/config"
	"github.com/atomicstack/pipemind/internal/logging"
	"github.com/atomicstack/pipemind/internal/logging/events"
	"github.com/atomicstack/pipemind/internal/version"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errConfig = errors.New("configuration error")

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipemind",
	Short: "Pipemind Console",
	Long: `A keyboard-driven terminal console with a navigation menu, a preview pane
and a command line.

F1-F5 focus the header, navigation, preview, input and footer. Lines typed in
the input that start with / are commands; try /help.`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConsole,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pipemind %s\n", version.Full())
	},
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
	rootCmd.AddCommand(versionCmd)
}

func runConsole(cmd *cobra.Command, _ []string) error {
	runtimeCfg, err := config.FromFlags(cmd.Flags(), os.Environ(), os.Args[1:])
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}
	if err := config.Validate(runtimeCfg); err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}

	runID := uuid.NewString()
	if err := logging.Configure(logging.Options{
		Path:  runtimeCfg.Logging.FilePath,
		Level: runtimeCfg.Logging.Level,
		RunID: runID,
	}); err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
	defer logging.Sync()

	traceStartup(runtimeCfg, runID)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		return err
	}
	logging.Info("console exited")
	return nil
}

func exitCode(err error) int {
	if errors.Is(err, errConfig) {
		return 2
	}
	return 1
}

func traceStartup(cfg config.Config, runID string) {
	payload := startupTracePayload(cfg)
	payload["runID"] = runID
	payload["version"] = version.Full()
	events.App.Start(payload)
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
