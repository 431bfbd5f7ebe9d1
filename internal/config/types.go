package config

import "time"

// Bounds for the run-time tunables. Values outside them are clamped, never rejected.
const (
	MinInterval     = 100 * time.Millisecond
	MaxInterval     = 5000 * time.Millisecond
	IntervalStep    = 100 * time.Millisecond
	DefaultInterval = 1000 * time.Millisecond

	MinLogLines     = 1
	DefaultLogLines = 10

	DefaultGraphWidth  = 42
	DefaultGraphHeight = 4
	DefaultCPUScale    = 100
	DefaultTempScale   = 80
)

// Color modes accepted by the color setting.
const (
	ColorFull  = "full"
	ColorBasic = "basic"
	ColorMono  = "mono"
)

// Config represents the complete pidash configuration file.
type Config struct {
	// Interval is the initial sampling interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// LogLines is the initial number of trailing log lines shown.
	LogLines int `yaml:"log_lines" mapstructure:"log_lines"`

	// Color mode: "full", "basic", or "mono".
	Color string `yaml:"color" mapstructure:"color"`

	Graph   GraphConfig   `yaml:"graph" mapstructure:"graph"`
	Sources SourcesConfig `yaml:"sources" mapstructure:"sources"`
	DMA     DMAConfig     `yaml:"dma" mapstructure:"dma"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// GraphConfig controls the history graphs.
type GraphConfig struct {
	// Width is the number of history points per graph. Fixed for the run.
	Width int `yaml:"width" mapstructure:"width"`

	// Height is the number of quantization rows per graph.
	Height int `yaml:"height" mapstructure:"height"`

	// CPUScale and TempScale are the fixed ceilings of the simple graphs.
	CPUScale  uint64 `yaml:"cpu_scale" mapstructure:"cpu_scale"`
	TempScale uint64 `yaml:"temp_scale" mapstructure:"temp_scale"`
}

// SourcesConfig names the pseudo-files and utilities metrics are read from.
type SourcesConfig struct {
	ProcStat    string `yaml:"proc_stat" mapstructure:"proc_stat"`
	ProcLoadavg string `yaml:"proc_loadavg" mapstructure:"proc_loadavg"`
	ProcMeminfo string `yaml:"proc_meminfo" mapstructure:"proc_meminfo"`
	ProcNetDev  string `yaml:"proc_net_dev" mapstructure:"proc_net_dev"`

	// ThermalZone is read when the vendor tool yields no temperature.
	ThermalZone string `yaml:"thermal_zone" mapstructure:"thermal_zone"`

	// Interfaces lists the watched links; the first /proc/net/dev row naming one is used.
	Interfaces []string `yaml:"interfaces" mapstructure:"interfaces"`

	// Vcgencmd is the vendor tool used for temperature, voltage, clocks and throttling.
	Vcgencmd string `yaml:"vcgencmd" mapstructure:"vcgencmd"`

	// StreamProcesses are the process names reported on the stream line.
	StreamProcesses []string `yaml:"stream_processes" mapstructure:"stream_processes"`

	// JournalUnit is the systemd unit whose log is tailed.
	JournalUnit string `yaml:"journal_unit" mapstructure:"journal_unit"`
}

// DMAConfig controls the DMA buffer report and its categorization.
type DMAConfig struct {
	// Command prints the buffer report (argv form, no shell).
	Command []string `yaml:"command" mapstructure:"command"`

	// SizeRadix is the base of un-prefixed size fields (10 or 16).
	SizeRadix int `yaml:"size_radix" mapstructure:"size_radix"`

	// Categories are tried in order; the first rule whose Match occurs in a row wins.
	Categories []CategoryRule `yaml:"categories" mapstructure:"categories"`

	// DefaultCategory labels rows no rule matches.
	DefaultCategory string `yaml:"default_category" mapstructure:"default_category"`
}

// CategoryRule maps a substring of a report row to a label.
type CategoryRule struct {
	Label string `yaml:"label" mapstructure:"label"`
	Match string `yaml:"match" mapstructure:"match"`
}

// LogConfig controls the optional debug log file.
type LogConfig struct {
	// File is the log file path. Logging is off when empty.
	File       string `yaml:"file" mapstructure:"file"`
	Level      string `yaml:"level" mapstructure:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
}

// DefaultConfig returns a Config with the defaults of a Raspberry Pi camera host.
func DefaultConfig() *Config {
	return &Config{
		Interval: DefaultInterval,
		LogLines: DefaultLogLines,
		Color:    ColorFull,
		Graph: GraphConfig{
			Width:     DefaultGraphWidth,
			Height:    DefaultGraphHeight,
			CPUScale:  DefaultCPUScale,
			TempScale: DefaultTempScale,
		},
		Sources: SourcesConfig{
			ProcStat:        "/proc/stat",
			ProcLoadavg:     "/proc/loadavg",
			ProcMeminfo:     "/proc/meminfo",
			ProcNetDev:      "/proc/net/dev",
			ThermalZone:     "/sys/class/thermal/thermal_zone0/temp",
			Interfaces:      []string{"wlan0", "eth0"},
			Vcgencmd:        "vcgencmd",
			StreamProcesses: []string{"rpicam-vid", "ffmpeg"},
			JournalUnit:     "stream.service",
		},
		DMA: DMAConfig{
			Command:   []string{"sudo", "-n", "cat", "/sys/kernel/debug/dma_buf/bufinfo"},
			SizeRadix: 16,
			Categories: []CategoryRule{
				{Label: "GPU Shared", Match: "vc_sm"},
				{Label: "Camera App", Match: "rpicam"},
			},
			DefaultCategory: "Sys/ISP",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}
