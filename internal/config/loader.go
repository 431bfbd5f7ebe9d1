package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/pidash/internal/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".pidash.yaml"
	// GlobalConfigDir is the directory for the per-user config.
	GlobalConfigDir = ".config/pidash"
	// GlobalConfigFile is the per-user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. PIDASH_INTERVAL=500ms.
	EnvPrefix = "PIDASH"
)

// Load reads config from the specified path, merged over defaults.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Check the path passed to --config, or run without it to use defaults")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .pidash.yaml in current directory
// 3. ~/.config/pidash/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err == nil {
		localConfig := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(localConfig); err == nil {
			return localConfig, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults
// (with environment overrides applied) if no file exists.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// YAML renders the config the way it would be written in a config file.
func (c *Config) YAML() ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(c); err != nil {
		return nil, err
	}

	// time.Duration encodes as nanoseconds; show it the way it is written.
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "interval" {
			node.Content[i+1] = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Interval.String()}
		}
	}

	return yaml.Marshal(&node)
}

// newViper returns a viper instance with defaults and env overrides wired.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key so env overrides apply even without a file.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("interval", def.Interval)
	v.SetDefault("log_lines", def.LogLines)
	v.SetDefault("color", def.Color)

	v.SetDefault("graph.width", def.Graph.Width)
	v.SetDefault("graph.height", def.Graph.Height)
	v.SetDefault("graph.cpu_scale", def.Graph.CPUScale)
	v.SetDefault("graph.temp_scale", def.Graph.TempScale)

	v.SetDefault("sources.proc_stat", def.Sources.ProcStat)
	v.SetDefault("sources.proc_loadavg", def.Sources.ProcLoadavg)
	v.SetDefault("sources.proc_meminfo", def.Sources.ProcMeminfo)
	v.SetDefault("sources.proc_net_dev", def.Sources.ProcNetDev)
	v.SetDefault("sources.thermal_zone", def.Sources.ThermalZone)
	v.SetDefault("sources.interfaces", def.Sources.Interfaces)
	v.SetDefault("sources.vcgencmd", def.Sources.Vcgencmd)
	v.SetDefault("sources.stream_processes", def.Sources.StreamProcesses)
	v.SetDefault("sources.journal_unit", def.Sources.JournalUnit)

	v.SetDefault("dma.command", def.DMA.Command)
	v.SetDefault("dma.size_radix", def.DMA.SizeRadix)
	rules := make([]map[string]interface{}, 0, len(def.DMA.Categories))
	for _, r := range def.DMA.Categories {
		rules = append(rules, map[string]interface{}{"label": r.Label, "match": r.Match})
	}
	v.SetDefault("dma.categories", rules)
	v.SetDefault("dma.default_category", def.DMA.DefaultCategory)

	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
}

// parseConfig converts viper config to our Config struct and clamps bounds.
func parseConfig(v *viper.Viper, origin string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+origin)
	}

	Normalize(cfg)
	return cfg, nil
}
