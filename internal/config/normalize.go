package config

import "time"

// Normalize clamps out-of-range settings into their bounds and fills
// zero values with defaults. It never fails: a bad bound is silently
// corrected, not reported.
func Normalize(cfg *Config) {
	def := DefaultConfig()

	cfg.Interval = ClampInterval(cfg.Interval)
	if cfg.LogLines < MinLogLines {
		cfg.LogLines = MinLogLines
	}

	switch cfg.Color {
	case ColorFull, ColorBasic, ColorMono:
	default:
		cfg.Color = ColorFull
	}

	if cfg.Graph.Width <= 0 {
		cfg.Graph.Width = DefaultGraphWidth
	}
	if cfg.Graph.Height <= 0 {
		cfg.Graph.Height = DefaultGraphHeight
	}
	if cfg.Graph.CPUScale == 0 {
		cfg.Graph.CPUScale = DefaultCPUScale
	}
	if cfg.Graph.TempScale == 0 {
		cfg.Graph.TempScale = DefaultTempScale
	}

	if len(cfg.Sources.Interfaces) == 0 {
		cfg.Sources.Interfaces = def.Sources.Interfaces
	}

	if cfg.DMA.SizeRadix != 10 && cfg.DMA.SizeRadix != 16 {
		cfg.DMA.SizeRadix = 16
	}
	if cfg.DMA.DefaultCategory == "" {
		cfg.DMA.DefaultCategory = def.DMA.DefaultCategory
	}
}

// ClampInterval bounds d to [MinInterval, MaxInterval].
func ClampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d
}
