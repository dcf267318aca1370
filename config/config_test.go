package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quickwritereader/filovec/access"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datainfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatHex, cfg.Output.Format)
	assert.Equal(t, 64, cfg.Builder.InitialSize)
	assert.Equal(t, access.DefaultMaxSize, cfg.Builder.MaxSize)
	assert.Equal(t, 0, cfg.Logging.Verbosity)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
builder:
  max_size: 4096
output:
  format: json
logging:
  verbosity: 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, 4096, cfg.Builder.MaxSize)
	assert.Equal(t, 64, cfg.Builder.InitialSize, "unset fields keep defaults")
	assert.Equal(t, 2, cfg.Logging.Verbosity)

	b := cfg.NewBuilder()
	defer b.Release()
	assert.Equal(t, 4096, b.MaxSize())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "output: [not, a, map]"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "output:\n  format: xml\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero initial size", func(c *Config) { c.Builder.InitialSize = 0 }},
		{"negative max size", func(c *Config) { c.Builder.MaxSize = -1 }},
		{"initial above max", func(c *Config) { c.Builder.InitialSize = c.Builder.MaxSize + 1 }},
		{"empty format", func(c *Config) { c.Output.Format = "" }},
		{"negative verbosity", func(c *Config) { c.Logging.Verbosity = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
