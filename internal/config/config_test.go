package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(NewViper(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultPublicDir, cfg.PublicDir)
	assert.Equal(t, DefaultTemplatePath, cfg.TemplatePath)
	assert.False(t, cfg.Dev)
	assert.False(t, cfg.Watch)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Empty(t, cfg.MetricsAddr())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "port: 8081\npublic_dir: static\nmetrics_port: 9100\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "isotodo.yaml"), []byte(content), 0644))

	cfg, err := Load(NewViper(dir))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "static", cfg.PublicDir)
	assert.Equal(t, DefaultTemplatePath, cfg.TemplatePath)
	assert.Equal(t, ":9100", cfg.MetricsAddr())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ISOTODO_PORT", "4000")
	t.Setenv("ISOTODO_DEV", "true")

	cfg, err := Load(NewViper(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.True(t, cfg.Dev)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "isotodo.yaml"), []byte("port: [1"), 0644))

	_, err := Load(NewViper(dir))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Port: 3000, PublicDir: "public", TemplatePath: "t.html"}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"port zero":        func(c *Config) { c.Port = 0 },
		"port too large":   func(c *Config) { c.Port = 70000 },
		"negative metrics": func(c *Config) { c.MetricsPort = -1 },
		"same ports":       func(c *Config) { c.MetricsPort = 3000 },
		"no public dir":    func(c *Config) { c.PublicDir = "" },
		"no template":      func(c *Config) { c.TemplatePath = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := Config{Port: 3000, PublicDir: "public", TemplatePath: DefaultTemplatePath, Watch: true}

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "port: 3000")

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, cfg, back)
}
