package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/rileyhilliard/sysgraph/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
	logFile string
)

// rootCmd graphs the configured kind when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sysgraph [kind]",
	Short: "Live terminal graphs of system metrics",
	Long: `sysgraph samples a family of series on a fixed tick and draws them as a
scrolling multi-series graph in the terminal.

The x axis is a sliding time window; the y axis grows to fit the data unless
it is pinned in the config. Kinds: cpu, usage, memory, load, net, command.

Examples:
  sysgraph
  sysgraph usage --interval 500ms
  sysgraph net --window 2m --renderer drawille
  sysgraph load --headless --ticks 10`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return graphCommand(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .sysgraph.yaml in this or a parent directory)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file while the graph is on screen")
	addGraphFlags(rootCmd)
}

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	if code, ok := errors.GetExitCode(err); ok {
		os.Exit(code)
	}
	if isUsageError(err) {
		err = errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid command line",
			"Run 'sysgraph --help' to see the available flags and kinds.")
	}
	fmt.Fprint(os.Stderr, err.Error())
	if !strings.HasSuffix(err.Error(), "\n") {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(1)
}

// isUsageError reports whether err came from cobra's argument parsing.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "invalid argument", "accepts at most", "flag needs an argument"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
