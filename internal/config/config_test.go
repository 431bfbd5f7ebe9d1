package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/pidash/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, time.Second, cfg.Interval)
	assert.Equal(t, 10, cfg.LogLines)
	assert.Equal(t, ColorFull, cfg.Color)
	assert.Equal(t, 42, cfg.Graph.Width)
	assert.Equal(t, 4, cfg.Graph.Height)
	assert.Equal(t, uint64(100), cfg.Graph.CPUScale)
	assert.Equal(t, uint64(80), cfg.Graph.TempScale)
	assert.Equal(t, []string{"wlan0", "eth0"}, cfg.Sources.Interfaces)
	assert.Equal(t, "stream.service", cfg.Sources.JournalUnit)
	assert.Equal(t, 16, cfg.DMA.SizeRadix)
	assert.Equal(t, "Sys/ISP", cfg.DMA.DefaultCategory)
	require.Len(t, cfg.DMA.Categories, 2)
	assert.Equal(t, CategoryRule{Label: "GPU Shared", Match: "vc_sm"}, cfg.DMA.Categories[0])
	assert.Empty(t, cfg.Log.File)
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ConfigFileName, `
interval: 500ms
log_lines: 20
color: mono
graph:
  width: 60
  height: 6
sources:
  interfaces: [end0]
  journal_unit: camera.service
dma:
  size_radix: 10
  categories:
    - label: Video
      match: v4l2
log:
  file: /tmp/pidash.log
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Interval)
	assert.Equal(t, 20, cfg.LogLines)
	assert.Equal(t, ColorMono, cfg.Color)
	assert.Equal(t, 60, cfg.Graph.Width)
	assert.Equal(t, 6, cfg.Graph.Height)
	assert.Equal(t, []string{"end0"}, cfg.Sources.Interfaces)
	assert.Equal(t, "camera.service", cfg.Sources.JournalUnit)
	assert.Equal(t, 10, cfg.DMA.SizeRadix)
	assert.Equal(t, []CategoryRule{{Label: "Video", Match: "v4l2"}}, cfg.DMA.Categories)
	assert.Equal(t, "/tmp/pidash.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched keys keep their defaults
	assert.Equal(t, "/proc/stat", cfg.Sources.ProcStat)
	assert.Equal(t, uint64(80), cfg.Graph.TempScale)
}

func TestLoad_ClampsBounds(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ConfigFileName, `
interval: 10ms
log_lines: 0
color: rainbow
graph:
  width: -3
dma:
  size_radix: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, MinInterval, cfg.Interval)
	assert.Equal(t, MinLogLines, cfg.LogLines)
	assert.Equal(t, ColorFull, cfg.Color)
	assert.Equal(t, DefaultGraphWidth, cfg.Graph.Width)
	assert.Equal(t, 16, cfg.DMA.SizeRadix)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.pidash.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "Config file not found")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ConfigFileName, "interval: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), ConfigFileName, "interval: 2s\n")
	t.Setenv("PIDASH_INTERVAL", "300ms")
	t.Setenv("PIDASH_LOG_LINES", "4")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, cfg.Interval)
	assert.Equal(t, 4, cfg.LogLines)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(*testing.T, *Config)
	}{
		{
			name:   "interval above ceiling",
			mutate: func(c *Config) { c.Interval = time.Minute },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, MaxInterval, c.Interval) },
		},
		{
			name:   "negative interval",
			mutate: func(c *Config) { c.Interval = -time.Second },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, MinInterval, c.Interval) },
		},
		{
			name:   "in-range interval untouched",
			mutate: func(c *Config) { c.Interval = 1500 * time.Millisecond },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 1500*time.Millisecond, c.Interval) },
		},
		{
			name:   "negative log lines",
			mutate: func(c *Config) { c.LogLines = -5 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 1, c.LogLines) },
		},
		{
			name:   "zero scales fall back",
			mutate: func(c *Config) { c.Graph.CPUScale, c.Graph.TempScale = 0, 0 },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, uint64(DefaultCPUScale), c.Graph.CPUScale)
				assert.Equal(t, uint64(DefaultTempScale), c.Graph.TempScale)
			},
		},
		{
			name:   "empty interfaces fall back",
			mutate: func(c *Config) { c.Sources.Interfaces = nil },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, []string{"wlan0", "eth0"}, c.Sources.Interfaces) },
		},
		{
			name:   "empty default category falls back",
			mutate: func(c *Config) { c.DMA.DefaultCategory = "" },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, "Sys/ISP", c.DMA.DefaultCategory) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			Normalize(cfg)
			tt.check(t, cfg)
		})
	}
}

func TestFind(t *testing.T) {
	t.Run("explicit path exists", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "custom.yaml", "log_lines: 3\n")
		got, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("explicit path not found", func(t *testing.T) {
		_, err := Find("/nonexistent/config.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("current directory wins over home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		writeConfig(t, home, filepath.Join(GlobalConfigDir, GlobalConfigFile), "log_lines: 3\n")

		work := t.TempDir()
		local := writeConfig(t, work, ConfigFileName, "log_lines: 4\n")
		t.Chdir(work)

		got, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, local, got)
	})

	t.Run("falls back to home config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		global := writeConfig(t, home, filepath.Join(GlobalConfigDir, GlobalConfigFile), "log_lines: 3\n")
		t.Chdir(t.TempDir())

		got, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, global, got)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		got, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefault_EnvWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("PIDASH_COLOR", "basic")

	cfg, _, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, ColorBasic, cfg.Color)
}

func TestConfigYAML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = 700 * time.Millisecond

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "interval: 700ms")
	assert.Contains(t, string(out), "journal_unit: stream.service")

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, 10, decoded["log_lines"])
}
