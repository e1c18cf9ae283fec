// Package config loads the settings that the test harness uses to reach the Todo Manager API.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL              = "https://apichallenges.herokuapp.com"
	DefaultTimeoutMS            = 5000
	DefaultStatusQueryTimeoutMS = 10000

	maxTimeoutMS = 600000

	// EnvPrefix is the prefix of environment variables that override settings, for instance
	// TODOTESTS_BASE_URL.
	EnvPrefix = "TODOTESTS"
)

// Config is the configuration consumed by the request gateway and the test harness.
type Config struct {
	// BaseURL is the root of the service, without a trailing slash.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// TimeoutMS bounds each request, from connecting to reading the whole response.
	TimeoutMS int `mapstructure:"timeout_ms" yaml:"timeout_ms"`
	// StatusQueryTimeoutMS is how long to wait for the service to answer before running tests.
	StatusQueryTimeoutMS int `mapstructure:"status_query_timeout_ms" yaml:"status_query_timeout_ms"`
	// DefaultHeaders are sent on every request unless a request sets the same header.
	DefaultHeaders map[string]string `mapstructure:"default_headers" yaml:"default_headers"`
}

func Default() Config {
	return Config{
		BaseURL:              DefaultBaseURL,
		TimeoutMS:            DefaultTimeoutMS,
		StatusQueryTimeoutMS: DefaultStatusQueryTimeoutMS,
		DefaultHeaders:       map[string]string{"Content-Type": "application/json"},
	}
}

// NewViper returns a viper instance with the defaults and environment bindings of Config. The
// caller may bind command-line flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("timeout_ms", d.TimeoutMS)
	v.SetDefault("status_query_timeout_ms", d.StatusQueryTimeoutMS)
	headers := make(map[string]interface{}, len(d.DefaultHeaders))
	for name, value := range d.DefaultHeaders {
		headers[strings.ToLower(name)] = value
	}
	v.SetDefault("default_headers", headers)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional YAML file at path into v and returns the validated configuration.
// Settings come from, lowest precedence first: defaults, the file, environment variables, and
// any flags bound to v.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base URL %q is not an absolute http or https URL", c.BaseURL)
	}
	if c.TimeoutMS <= 0 || c.TimeoutMS > maxTimeoutMS {
		return fmt.Errorf("timeout_ms must be between 1 and %d, was %d", maxTimeoutMS, c.TimeoutMS)
	}
	if c.StatusQueryTimeoutMS < 0 || c.StatusQueryTimeoutMS > maxTimeoutMS {
		return fmt.Errorf("status_query_timeout_ms must be between 0 and %d, was %d",
			maxTimeoutMS, c.StatusQueryTimeoutMS)
	}
	return nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

func (c Config) StatusQueryTimeout() time.Duration {
	return time.Duration(c.StatusQueryTimeoutMS) * time.Millisecond
}

// Marshal renders the configuration as YAML, in the same format that Load reads.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
