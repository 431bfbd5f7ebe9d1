package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/pidash/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configCmd prints the resolved configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration as YAML",
	Long: `Print the configuration pidash would run with, after merging the config
file, PIDASH_* environment variables, and command-line flags.

Examples:
  pidash config
  pidash config --interval 250ms > ~/.config/pidash/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configCommand(cmd.OutOrStdout(), cmd.Flags(), dashOpts)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for pidash.

Examples:
  # Bash
  pidash completion bash > /etc/bash_completion.d/pidash

  # Zsh
  pidash completion zsh > "${fpath[1]}/_pidash"

  # Fish
  pidash completion fish > ~/.config/fish/completions/pidash.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCompletion(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

// configCommand writes the resolved config to w, preceded by its origin.
func configCommand(w io.Writer, fs *pflag.FlagSet, o dashboardOptions) error {
	cfg, path, err := resolveConfig(fs, o)
	if err != nil {
		return err
	}

	out, err := cfg.YAML()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't render the config as YAML",
			"This is a bug; please report it with your config file attached.")
	}

	if path != "" {
		fmt.Fprintf(w, "# loaded from %s\n", path)
	} else {
		fmt.Fprintln(w, "# no config file found; showing defaults")
	}
	_, err = w.Write(out)
	return err
}

// writeCompletion writes the completion script for shell to w.
func writeCompletion(w io.Writer, shell string) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletion(w)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletion(w)
	default:
		return errors.New(errors.ErrConfig,
			"Unknown shell: "+shell,
			"Supported shells: bash, zsh, fish, powershell")
	}
}
