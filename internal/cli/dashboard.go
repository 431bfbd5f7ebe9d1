package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/pidash/internal/config"
	"github.com/rileyhilliard/pidash/internal/errors"
	"github.com/rileyhilliard/pidash/internal/logger"
	"github.com/rileyhilliard/pidash/internal/monitor"
	"github.com/rileyhilliard/pidash/internal/source"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// isTerminal reports whether stdin and stdout are both attached to a TTY.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// dashboardCommand starts the TUI dashboard.
func dashboardCommand(fs *pflag.FlagSet, o dashboardOptions) error {
	if !isTerminal() {
		return errors.New(errors.ErrTerminal,
			"pidash needs an interactive terminal",
			"Run it directly in a terminal session, not through a pipe or redirect.")
	}

	cfg, path, err := resolveConfig(fs, o)
	if err != nil {
		return err
	}

	log, closeLog := openLogger(cfg.Log)
	defer closeLog()
	logger.SetDefault(log)

	if path == "" {
		path = "defaults"
	}
	log.Info("starting dashboard: config=%s interval=%s log_lines=%d color=%s", path, cfg.Interval, cfg.LogLines, cfg.Color)

	src := source.NewLocal(nil)
	if err := checkSources(src, cfg); err != nil {
		return err
	}

	model := monitor.NewModel(monitor.NewSampler(src, cfg, nil), cfg, formatVersion(version))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("dashboard stopped: %v", err)
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The dashboard stopped unexpectedly",
			"Check that your terminal supports the alternate screen, or try --color mono.")
	}

	log.Info("dashboard exited")
	return nil
}

// openLogger returns the runtime logger. The terminal belongs to the
// dashboard, so logging only happens when a log file is configured.
func openLogger(lc config.LogConfig) (logger.Logger, func()) {
	if lc.File == "" {
		return logger.Noop(), func() {}
	}
	l := logger.NewFile(logger.FileOptions{
		Path:       lc.File,
		Level:      lc.Level,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
	})
	return l, func() { _ = l.Close() }
}

// checkSources fails fast when the host has no readable CPU counters,
// which means pidash is not running on Linux or the path is misconfigured.
func checkSources(src source.Source, cfg *config.Config) error {
	if src.ReadFile(cfg.Sources.ProcStat) != "" {
		return nil
	}
	return errors.New(errors.ErrSource,
		fmt.Sprintf("Can't read CPU counters from %s", cfg.Sources.ProcStat),
		"pidash reads Linux procfs. Run it on the Pi, or set sources.proc_stat to a readable file.")
}
