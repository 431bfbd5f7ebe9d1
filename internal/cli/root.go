package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rileyhilliard/pidash/internal/config"
	"github.com/rileyhilliard/pidash/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dashboardOptions holds the flags shared by the dashboard and config commands.
type dashboardOptions struct {
	ConfigPath string
	Interval   time.Duration
	LogLines   int
	Color      string
	LogFile    string
	LogLevel   string
}

var dashOpts dashboardOptions

// rootCmd runs the dashboard when invoked without a subcommand
var rootCmd = &cobra.Command{
	Use:   "pidash",
	Short: "Live terminal dashboard for a Raspberry Pi camera host",
	Long: `pidash samples CPU, temperature, memory, CMA/DMA buffers, network and
hardware health once per interval and redraws a fixed terminal layout.

Keys while running:
  +/-   sample faster / slower
  ./,   show more / fewer log lines
  c     cycle color mode
  q     quit

Examples:
  pidash
  pidash --interval 500ms --log-lines 20
  pidash --color mono --log-file /tmp/pidash.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Flags(), dashOpts)
	},
}

func init() {
	addDashboardFlags(rootCmd.PersistentFlags(), &dashOpts)
}

// addDashboardFlags registers the config override flags on fs.
func addDashboardFlags(fs *pflag.FlagSet, o *dashboardOptions) {
	fs.StringVar(&o.ConfigPath, "config", "", "config file (default ./"+config.ConfigFileName+", then ~/"+config.GlobalConfigDir+"/"+config.GlobalConfigFile+")")
	fs.DurationVar(&o.Interval, "interval", config.DefaultInterval, "sampling interval, 100ms to 5s")
	fs.IntVar(&o.LogLines, "log-lines", config.DefaultLogLines, "number of log lines to show")
	fs.StringVar(&o.Color, "color", config.ColorFull, "color mode: full, basic, or mono")
	fs.StringVar(&o.LogFile, "log-file", "", "write logs to this file (rotated)")
	fs.StringVar(&o.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

// resolveConfig loads the config file and applies the flags the user set.
// Flags left at their defaults never override file or environment values.
func resolveConfig(fs *pflag.FlagSet, o dashboardOptions) (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(o.ConfigPath)
	if err != nil {
		return nil, "", err
	}

	if fs.Changed("color") {
		switch o.Color {
		case config.ColorFull, config.ColorBasic, config.ColorMono:
			cfg.Color = o.Color
		default:
			return nil, "", errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a color mode", o.Color),
				"Use one of: full, basic, mono.")
		}
	}
	if fs.Changed("interval") {
		cfg.Interval = o.Interval
	}
	if fs.Changed("log-lines") {
		cfg.LogLines = o.LogLines
	}
	if fs.Changed("log-file") {
		cfg.Log.File = o.LogFile
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = o.LogLevel
	}

	config.Normalize(cfg)
	return cfg, path, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		if isUnknownCommandError(err) {
			if name := extractUnknownCommand(err); name != "" {
				fmt.Fprintf(os.Stderr, "'%s' isn't a pidash command.\n", name)
			}
			fmt.Fprintln(os.Stderr, "Run 'pidash --help' for usage.")
		}
		os.Exit(1)
	}
}

// formatError renders structured errors as-is and prefixes plain ones.
func formatError(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Error()
	}
	return "✗ " + err.Error() + "\n"
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted name out of cobra's
// `unknown command "foo" for "pidash"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
