package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/launchdarkly/todo-contract-tests/fakeapi"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultFakeServicePort = 8111

func newFakeServiceCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "fake-service",
		Short: "Serve an in-memory implementation of the Todo Manager API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			return serveFakeService(cmd.Context(), port, &logger)
		},
	}
	cmd.Flags().IntVar(&port, "port", defaultFakeServicePort, "port to listen on")
	return cmd
}

func serveFakeService(ctx context.Context, port int, logger *zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           fakeapi.NewService(logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", port).Msg("fake service listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
