package monitor

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/pidash/internal/config"
)

// ColorMode selects how much color the dashboard uses.
type ColorMode int

const (
	ColorFull ColorMode = iota
	ColorBasic
	ColorMono
)

// ParseColorMode maps a config value to a mode. Unknown values mean full.
func ParseColorMode(s string) ColorMode {
	switch s {
	case config.ColorBasic:
		return ColorBasic
	case config.ColorMono:
		return ColorMono
	default:
		return ColorFull
	}
}

// String returns the config spelling of the mode.
func (c ColorMode) String() string {
	switch c {
	case ColorBasic:
		return config.ColorBasic
	case ColorMono:
		return config.ColorMono
	default:
		return config.ColorFull
	}
}

// Next cycles full -> basic -> mono -> full.
func (c ColorMode) Next() ColorMode {
	return ColorMode((int(c) + 1) % 3)
}

// Settings are the user-adjustable dashboard parameters.
type Settings struct {
	Interval time.Duration
	LogLines int
	Color    ColorMode
}

// SettingsFromConfig builds the starting settings. cfg is assumed normalized.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Interval: config.ClampInterval(cfg.Interval),
		LogLines: max(cfg.LogLines, config.MinLogLines),
		Color:    ParseColorMode(cfg.Color),
	}
}

// SpeedLabel formats the interval for the footer.
func (s Settings) SpeedLabel() string {
	d := s.Interval
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d%time.Second == 0:
		return fmt.Sprintf("%ds", d/time.Second)
	default:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
}

// Action is one user command.
type Action int

const (
	ActionNone Action = iota
	ActionFaster
	ActionSlower
	ActionMoreLogs
	ActionFewerLogs
	ActionCycleColor
	ActionQuit
)

// Effect is what the loop must do after a transition besides redrawing.
type Effect int

const (
	EffectNone Effect = iota
	EffectClear
	EffectQuit
)

// Apply is the control transition function. It never returns settings
// outside the configured bounds.
func Apply(s Settings, a Action) (Settings, Effect) {
	switch a {
	case ActionFaster:
		s.Interval = max(s.Interval-config.IntervalStep, config.MinInterval)
		return s, EffectNone
	case ActionSlower:
		s.Interval = min(s.Interval+config.IntervalStep, config.MaxInterval)
		return s, EffectNone
	case ActionMoreLogs:
		s.LogLines++
		return s, EffectClear
	case ActionFewerLogs:
		if s.LogLines <= config.MinLogLines {
			s.LogLines = config.MinLogLines
			return s, EffectNone
		}
		s.LogLines--
		return s, EffectClear
	case ActionCycleColor:
		s.Color = s.Color.Next()
		return s, EffectClear
	case ActionQuit:
		return s, EffectQuit
	default:
		return s, EffectNone
	}
}
