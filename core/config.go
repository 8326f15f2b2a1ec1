package core

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const ConfigFile = "cicd.config.yml"

type Config struct {
	OutputDir    string `yaml:"outputDir"`
	CacheEnabled bool   `yaml:"cache"`
	DebugHeaders bool   `yaml:"debugHeaders"`
	DebugLogs    bool   `yaml:"debugLogs"`
	Port         int    `yaml:"port"`
}

func DefaultConfig() Config {
	return Config{
		OutputDir: "./cache",
		Port:      8080,
	}
}

// LoadConfig reads path, fills unset keys from DefaultConfig and applies
// CICD_* environment overrides. A missing or unreadable file yields defaults.
var LoadConfig = func(path string) Config {
	var cfg Config

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Ignoring invalid config %s: %v\n", path, err)
			cfg = Config{}
		}
	}

	if err := mergo.Merge(&cfg, DefaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Could not apply config defaults: %v\n", err)
	}

	applyEnvOverrides(&cfg)
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("CICD_OUTPUT_DIR"); ok && v != "" {
		cfg.OutputDir = v
	}
	if v, ok := os.LookupEnv("CICD_PORT"); ok {
		if port, err := cast.ToIntE(v); err == nil && port > 0 {
			cfg.Port = port
		} else {
			fmt.Fprintf(os.Stderr, "⚠️  Ignoring CICD_PORT=%q\n", v)
		}
	}
	overrideBool("CICD_CACHE", &cfg.CacheEnabled)
	overrideBool("CICD_DEBUG_HEADERS", &cfg.DebugHeaders)
	overrideBool("CICD_DEBUG_LOGS", &cfg.DebugLogs)
}

func overrideBool(key string, dst *bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Ignoring %s=%q\n", key, v)
		return
	}
	*dst = b
}
