package cli

import (
	"github.com/rileyhilliard/sysgraph/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	initKindFlag           string
	initGlobal             bool
	initForce              bool
	initNonInteractiveFlag bool
)

// initCmd creates a new .sysgraph.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .sysgraph.yaml configuration",
	Long: `Create a sysgraph configuration file with sensible defaults.

Prompts for the default graph, tick interval, time window, renderer, colors and
failure policy. Without prompts (--non-interactive, or CI set) the defaults
are written as-is.

Examples:
  sysgraph init
  sysgraph init --kind usage
  sysgraph init --global --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), InitOptions{
			Kind:           initKindFlag,
			Global:         initGlobal,
			Overwrite:      initForce,
			NonInteractive: initNonInteractiveFlag || nonInteractiveEnv(),
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sysgraph.

Examples:
  # Bash
  sysgraph completion bash > /etc/bash_completion.d/sysgraph

  # Zsh
  sysgraph completion zsh > "${fpath[1]}/_sysgraph"

  # Fish
  sysgraph completion fish > ~/.config/fish/completions/sysgraph.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	initCmd.Flags().StringVar(&initKindFlag, "kind", "", "default graph kind")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write ~/.config/sysgraph/config.yaml instead")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractiveFlag, "non-interactive", false, "skip prompts and write defaults")

	// Register all commands
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(sensorsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
