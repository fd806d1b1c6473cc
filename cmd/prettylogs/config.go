package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/prettylogs/internal/filter"
	"github.com/tinytelemetry/prettylogs/internal/ingest"
	"github.com/tinytelemetry/prettylogs/internal/logparse"
	"github.com/tinytelemetry/prettylogs/internal/logsource"
	"github.com/tinytelemetry/prettylogs/internal/model"
	"github.com/tinytelemetry/prettylogs/internal/render"
)

const (
	defaultLevel       = "info"
	defaultLineBuffer  = model.DefaultLineBuffer
	defaultMaxLineSize = model.DefaultMaxLineSize
	defaultSkin        = model.DefaultSkin
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	Level       string `mapstructure:"level"`
	Category    string `mapstructure:"category"`
	UTC         bool   `mapstructure:"utc"`
	Inline      bool   `mapstructure:"inline"`
	Quiet       bool   `mapstructure:"quiet"`
	Discard     bool   `mapstructure:"discard"`
	NoColor     bool   `mapstructure:"no-color"`
	Skin        string `mapstructure:"skin"`
	LineBuffer  int    `mapstructure:"line-buffer"`
	MaxLineSize int    `mapstructure:"max-line-size"`
	ConfigPath  string `mapstructure:"-"` // not from config file
	ConfigDir   string `mapstructure:"-"`
}

func loadConfig(configPath string, flags *pflag.FlagSet) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "prettylogs")

	v := viper.New()
	v.SetEnvPrefix("PRETTYLOGS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("level", defaultLevel)
	v.SetDefault("category", "")
	v.SetDefault("utc", false)
	v.SetDefault("inline", false)
	v.SetDefault("quiet", false)
	v.SetDefault("discard", false)
	v.SetDefault("no-color", false)
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("line-buffer", defaultLineBuffer)
	v.SetDefault("max-line-size", defaultMaxLineSize)

	// LOG_LEVEL is shared with the applications whose logs are piped in.
	if err := v.BindEnv("level", "PRETTYLOGS_LEVEL", "LOG_LEVEL"); err != nil {
		return cfg, err
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return cfg, err
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if _, err := os.Stat(v.ConfigFileUsed()); err == nil {
		cfg.ConfigPath = v.ConfigFileUsed()
	}
	cfg.ConfigDir = configDir

	if cfg.LineBuffer <= 0 {
		return cfg, fmt.Errorf("invalid line-buffer: %d", cfg.LineBuffer)
	}
	if cfg.MaxLineSize <= 0 {
		return cfg, fmt.Errorf("invalid max-line-size: %d", cfg.MaxLineSize)
	}

	// Expand ~ in skin
	if strings.HasPrefix(cfg.Skin, "~/") {
		cfg.Skin = filepath.Join(home, cfg.Skin[2:])
	}

	return cfg, nil
}

// MinLevel is the numeric threshold for the configured level name.
func (c appConfig) MinLevel() int {
	return logparse.ParseLevel(c.Level)
}

// SkinPath resolves the skin setting. "default" (or empty) means the
// built-in skin; a bare name refers to <config dir>/skins/<name>.yml.
func (c appConfig) SkinPath() string {
	skin := strings.TrimSpace(c.Skin)
	if skin == "" || skin == defaultSkin {
		return ""
	}
	if strings.ContainsRune(skin, filepath.Separator) || filepath.Ext(skin) != "" {
		return skin
	}
	return filepath.Join(c.ConfigDir, "skins", skin+".yml")
}

func (c appConfig) sourceConfig() logsource.Config {
	return logsource.Config{
		BufferSize:  c.LineBuffer,
		MaxLineSize: c.MaxLineSize,
	}
}

func (c appConfig) processorOptions(styler render.Styler) ingest.Options {
	minLevel := c.MinLevel()
	return ingest.Options{
		Filter: filter.Options{
			MinLevel: &minLevel,
			Category: c.Category,
		},
		Render: render.Options{
			UTC:    c.UTC,
			Inline: c.Inline,
			Quiet:  c.Quiet,
		},
		Styler:               styler,
		DiscardNonConforming: c.Discard,
	}
}
