package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valpere/postgen/internal/langs"
)

// Config is the root of everything read from file, env and flags.
type Config struct {
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Language LanguageConfig `mapstructure:"language"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
	Web      WebConfig      `mapstructure:"web"`
	Build    BuildConfig    `mapstructure:"build"`
}

// WebhookConfig prefills the form. The URL is never written back.
type WebhookConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LanguageConfig struct {
	Default string `mapstructure:"default"`
}

type UIConfig struct {
	Locale string `mapstructure:"locale"`
}

// LogConfig configures zerolog.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// WebConfig is the bind address of the browser host.
type WebConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (w WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

// BuildConfig is the metadata stamped into packaged apps.
type BuildConfig struct {
	Project     string `mapstructure:"project"`
	Name        string `mapstructure:"name"`
	ID          string `mapstructure:"id"`
	Version     string `mapstructure:"version"`
	Build       int    `mapstructure:"build"`
	Icon        string `mapstructure:"icon"`
	Description string `mapstructure:"description"`
	Output      string `mapstructure:"output"`
}

// Validate checks the values the hosts cannot recover from.
func (c *Config) Validate() error {
	if c.Webhook.Timeout <= 0 {
		return errors.New("webhook.timeout must be positive")
	}

	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return errors.New("invalid web port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Web.Mode] {
		return errors.New("invalid web mode, must be debug/release/test")
	}

	if _, ok := langs.Lookup(c.Language.Default); !ok {
		return fmt.Errorf("language.default %q is not one of: %s", c.Language.Default, strings.Join(langs.Names(), ", "))
	}

	if strings.TrimSpace(c.UI.Locale) == "" {
		return errors.New("ui.locale must not be empty")
	}

	return nil
}

// DefaultLanguage returns the canonical name of the configured default.
func (c *Config) DefaultLanguage() string {
	if l, ok := langs.Lookup(c.Language.Default); ok {
		return l.Name
	}
	return langs.Default.Name
}
