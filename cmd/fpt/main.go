// fpt is a falling-block puzzle played from the falling piece's point of view.
//
// Usage:
//
//	fpt list              - List available modes
//	fpt play [mode]       - Play a mode (default from config view.mode)
//	fpt sim               - Run a headless game with random input
//	fpt config            - Print the configuration in effect
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom YAML config file
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpt/internal/games/fpt"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fpt",
	Short: "FPT - falling blocks from the piece's point of view",
	Long: `FPT is a terminal falling-block puzzle. In the default view the
falling piece stays in the middle of the screen and the field turns
around it; the fixed view shows the classic upright field.

Available commands:
  list     - Show all available modes
  play     - Play a mode
  sim      - Run a headless game and print the final frame
  config   - Print the configuration in effect

Examples:
  fpt play
  fpt play fpt_fixed
  fpt play --seed 42 --config ./my-fpt.yaml
  fpt sim --steps 5000 --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise, and game events use it too. The returned close function
// releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fpt",
		Level:           level,
	})

	fpt.SetLogger(logger)

	return logger, closeFn, nil
}
