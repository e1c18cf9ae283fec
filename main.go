package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/launchdarkly/todo-contract-tests/config"
	"github.com/launchdarkly/todo-contract-tests/framework"
	"github.com/launchdarkly/todo-contract-tests/todotests"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errTestsFailed = errors.New("some tests failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	params := &commandParams{}
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:   "todo-contract-tests",
		Short: "Contract tests for the Todo Manager (Challenger) REST API",
		Long: `Runs the contract tests against a Todo Manager API service, reporting each test as it
finishes. The service URL and timeouts can come from a YAML file (--config), from environment
variables prefixed with ` + config.EnvPrefix + `_, or from flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, params.configPath)
			if err != nil {
				return err
			}
			return runTests(cfg, params)
		},
	}
	params.addFlags(rootCmd, v)

	rootCmd.AddCommand(newFakeServiceCmd())
	rootCmd.AddCommand(newConfigCmd(params, v))
	return rootCmd
}

func newConfigCmd(params *commandParams, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, params.configPath)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newDebugLogger(enabled bool) framework.Logger {
	if !enabled {
		return framework.NullLogger()
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	return &logger
}

func runTests(cfg config.Config, params *commandParams) error {
	mainDebugLogger := newDebugLogger(params.debugAll)

	harness, err := framework.NewTestHarness(
		cfg.BaseURL,
		cfg.StatusQueryTimeout(),
		mainDebugLogger,
		os.Stdout,
	)
	if err != nil {
		return fmt.Errorf("service error: %w", err)
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters, os.Stdout)
	if !harness.HasStatusResource() {
		fmt.Printf("The service has no %s resource, so heartbeat tests will be skipped\n\n", framework.StatusPath)
	}

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := todotests.RunTestSuite(harness, cfg, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(results, os.Stdout)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(os.Args[0], cfg, params, results))
		return errTestsFailed
	}
	return nil
}
