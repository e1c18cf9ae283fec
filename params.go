package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/launchdarkly/todo-contract-tests/config"
	"github.com/launchdarkly/todo-contract-tests/framework"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type commandParams struct {
	configPath string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

// addFlags defines the command line flags. The flags that correspond to configuration settings
// are bound to v, so they take precedence over the config file and environment variables.
func (c *commandParams) addFlags(cmd *cobra.Command, v *viper.Viper) {
	d := config.Default()

	pf := cmd.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "YAML configuration file")
	pf.String("url", d.BaseURL, "base URL of the service under test")
	pf.Int("timeout-ms", d.TimeoutMS, "timeout for each request in milliseconds")
	pf.Int("status-query-timeout-ms", d.StatusQueryTimeoutMS,
		"how long to wait for the service to respond before running tests, in milliseconds")
	bindFlag(v, "base_url", pf.Lookup("url"))
	bindFlag(v, "timeout_ms", pf.Lookup("timeout-ms"))
	bindFlag(v, "status_query_timeout_ms", pf.Lookup("status-query-timeout-ms"))

	fs := cmd.Flags()
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err) // only fails if flag is nil
	}
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand returns a command line that runs only the tests that failed, against the same
// service with the same settings.
func rerunCommand(program string, cfg config.Config, params *commandParams, results framework.Results) string {
	var b commandBuilder
	b.add(program)
	if params.configPath != "" {
		b.add("--config", params.configPath)
	}
	b.add("--url", cfg.BaseURL)
	if cfg.TimeoutMS != config.DefaultTimeoutMS {
		b.add("--timeout-ms", strconv.Itoa(cfg.TimeoutMS))
	}
	for _, f := range results.Failures {
		if len(f.TestID.Path) == 0 {
			continue
		}
		b.add("--run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	b.add("--debug")
	return b.String()
}
