// Command mazesolve loads or generates a maze, runs shortest-path queries over
// it and prints the maze with the path together with per-distance room counts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Not fatal: variables may be set directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "note: .env file not loaded: %v\n", err)
	}

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, then solves every query, writing results to outW and
// logs to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	a := newApp(cfg, outW, logger)

	ctx := context.Background()
	if cfg.Trace {
		shutdown, err := a.enableTracing(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without traces", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	if err := a.Run(ctx); err != nil {
		logger.Debug("run failed", slog.Any("error", err))
		return err
	}
	return nil
}
