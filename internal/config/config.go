package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort         = 3000
	DefaultPublicDir    = "public"
	DefaultTemplatePath = "templates/layout.html"

	EnvPrefix = "ISOTODO"
	FileName  = "isotodo"
)

// Config holds server configuration. With no file, env or flags it serves
// templates/layout.html and public/ on port 3000.
type Config struct {
	Port         int    `mapstructure:"port" yaml:"port"`
	PublicDir    string `mapstructure:"public_dir" yaml:"public_dir"`
	TemplatePath string `mapstructure:"template" yaml:"template"`
	Title        string `mapstructure:"title" yaml:"title,omitempty"`
	Dev          bool   `mapstructure:"dev" yaml:"dev"`
	Watch        bool   `mapstructure:"watch" yaml:"watch"`
	MetricsPort  int    `mapstructure:"metrics_port" yaml:"metrics_port"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level,omitempty"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("public_dir", DefaultPublicDir)
	v.SetDefault("template", DefaultTemplatePath)
	v.SetDefault("title", "")
	v.SetDefault("dev", false)
	v.SetDefault("watch", false)
	v.SetDefault("metrics_port", 0)
	v.SetDefault("log_level", "")
}

// NewViper returns a viper instance reading isotodo.yaml from dir (when
// present) and ISOTODO_* environment variables.
func NewViper(dir string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("metrics port %d out of range", c.MetricsPort)
	}
	if c.MetricsPort != 0 && c.MetricsPort == c.Port {
		return fmt.Errorf("metrics port must differ from port %d", c.Port)
	}
	if c.PublicDir == "" {
		return fmt.Errorf("public directory cannot be empty")
	}
	if c.TemplatePath == "" {
		return fmt.Errorf("template path cannot be empty")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) MetricsAddr() string {
	if c.MetricsPort == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", c.MetricsPort)
}

// YAML renders the effective configuration in config file form.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return out, nil
}
