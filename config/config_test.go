package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, 5*time.Second, c.Timeout())
	assert.Equal(t, 10*time.Second, c.StatusQueryTimeout())
	assert.Equal(t, "application/json", c.DefaultHeaders["content-type"])
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: http://localhost:4567/
timeout_ms: 250
default_headers:
  Content-Type: application/xml
  X-Extra: extra
`), 0o600))

	c, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4567", c.BaseURL)
	assert.Equal(t, 250*time.Millisecond, c.Timeout())
	assert.Equal(t, DefaultStatusQueryTimeoutMS, c.StatusQueryTimeoutMS)
	assert.Equal(t, "application/xml", c.DefaultHeaders["content-type"])
	assert.Equal(t, "extra", c.DefaultHeaders["x-extra"])
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://localhost:4567\n"), 0o600))
	t.Setenv("TODOTESTS_BASE_URL", "http://example.test:8080")
	t.Setenv("TODOTESTS_TIMEOUT_MS", "1200")

	c, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test:8080", c.BaseURL)
	assert.Equal(t, 1200, c.TimeoutMS)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	for name, modify := range map[string]func(*Config){
		"empty URL":       func(c *Config) { c.BaseURL = "" },
		"relative URL":    func(c *Config) { c.BaseURL = "/todos" },
		"wrong scheme":    func(c *Config) { c.BaseURL = "ftp://example.test" },
		"zero timeout":    func(c *Config) { c.TimeoutMS = 0 },
		"huge timeout":    func(c *Config) { c.TimeoutMS = 600001 },
		"negative status": func(c *Config) { c.StatusQueryTimeoutMS = -1 },
	} {
		c := Default()
		modify(&c)
		assert.Error(t, c.Validate(), name)
	}
}

func TestMarshalCanBeLoadedAgain(t *testing.T) {
	c := Default()
	c.BaseURL = "http://localhost:1234"
	c.TimeoutMS = 777
	data, err := c.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	loaded, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, c.BaseURL, loaded.BaseURL)
	assert.Equal(t, c.TimeoutMS, loaded.TimeoutMS)
}
