// Command engine is the CLI entrypoint for the transaction processing
// engine: it resolves configuration, opens the input file, and writes the
// per-client summary to stdout or the configured output path.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toulis9999/mini-payments/internal/appconfig"
	"github.com/toulis9999/mini-payments/internal/applog"
	"github.com/toulis9999/mini-payments/internal/console"
	"github.com/toulis9999/mini-payments/internal/driver"
)

func main() {
	os.Exit(Execute())
}

// Execute builds and runs the root command, returning the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return driver.ExitFatal
	}

	return exitCode
}

// exitCode is set by runCmd's RunE and read back by Execute, since cobra's
// RunE only propagates an error, not an arbitrary status code.
var exitCode int

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:           "engine",
	Short:         "engine processes a transaction CSV into a per-client account summary",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run <input.csv>",
	Short: "process a transaction CSV and print the account summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appconfig.LoadLocalEnv()
		v.Set("input", args[0])

		cfg, err := appconfig.Load(v)
		if err != nil {
			return err
		}

		logger, err := applog.NewZap(applog.ParseLevel(cfg.LogLevel))
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		fmt.Fprintln(os.Stderr, console.StartupBanner(cfg.InputPath, cfg.Tolerance()))

		out := os.Stdout
		if cfg.OutputPath != "" {
			f, err := os.Create(cfg.OutputPath)
			if err != nil {
				return fmt.Errorf("opening output path: %w", err)
			}
			defer f.Close()

			exitCode = driver.Run(cfg, logger, f)
		} else {
			exitCode = driver.Run(cfg, logger, out)
		}

		fmt.Fprintln(os.Stderr, console.ClosingBanner())

		return nil
	},
}

func init() {
	appconfig.Defaults(v)

	runCmd.Flags().Int("max-record-length", 4096, "maximum expected byte length of a single CSV record")
	runCmd.Flags().Int("tolerance-multiplier", 5, "multiplier applied to max-record-length to derive the reader's fuse tolerance")
	runCmd.Flags().String("log-level", "info", "log level: debug, info, warn, or error")
	runCmd.Flags().String("output", "", "path to write the summary to (default: stdout)")

	_ = v.BindPFlag("max-record-length", runCmd.Flags().Lookup("max-record-length"))
	_ = v.BindPFlag("tolerance-multiplier", runCmd.Flags().Lookup("tolerance-multiplier"))
	_ = v.BindPFlag("log-level", runCmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("output", runCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(runCmd)
}
