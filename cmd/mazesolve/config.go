package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazepath/maze"
)

// ExitError is an error that carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError builds an ExitError with the usage exit code.
func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Config is the validated command line of one run.
type Config struct {
	MazePath    string
	GenRows     int
	GenCols     int
	Seed        int64
	From        maze.Position
	To          maze.Position
	Reachable   int
	QueriesPath string
	TUI         bool
	LogLevel    string
	LogFormat   string
	Trace       bool
}

// generated reports whether the maze is generated rather than read.
func (c *Config) generated() bool {
	return c.GenRows > 0
}

// parseArgs processes command-line arguments with environment defaults.
// It returns the config, whether the program should exit cleanly, or an
// ExitError for bad usage.
func parseArgs(args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
mazesolve - shortest paths and reachability in '#'-art mazes.

Usage:
  mazesolve [options]

Without -maze or -generate the built-in 4x4 sample is solved from 0,0 to 3,3.

Environment:
  MAZESOLVE_MAZE, MAZESOLVE_LOG_LEVEL, MAZESOLVE_LOG_FORMAT provide defaults
  for -maze, -log-level and -log-format. A .env file is read if present.

Options:
`)
		fs.PrintDefaults()
	}

	mazeFlag := fs.String("maze", getEnvWithDefault("MAZESOLVE_MAZE", ""), "Path to a maze text file.")
	fromFlag := fs.String("from", "0,0", "Start room as row,col.")
	toFlag := fs.String("to", "3,3", "End room as row,col.")
	reachableFlag := fs.Int("reachable", 9, "Print room counts for 0..N steps from the start.")
	queriesFlag := fs.String("queries", "", "Path to an HCL file of queries; overrides -from, -to and -reachable.")
	generateFlag := fs.String("generate", "", "Generate a random perfect maze of ROWSxCOLS rooms instead of reading one.")
	seedFlag := fs.Int64("seed", 0, "Seed for -generate. 0 seeds from the clock.")
	tuiFlag := fs.Bool("tui", false, "Show each result in the terminal and wait for a key.")
	logLevelFlag := fs.String("log-level", getEnvWithDefault("MAZESOLVE_LOG_LEVEL", "info"), "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := fs.String("log-format", getEnvWithDefault("MAZESOLVE_LOG_FORMAT", "text"), "Log output format. Options: 'text' or 'json'.")
	traceFlag := fs.Bool("trace", false, "Export OpenTelemetry traces using the OTEL_* environment.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := &Config{
		MazePath:    *mazeFlag,
		Seed:        *seedFlag,
		Reachable:   *reachableFlag,
		QueriesPath: *queriesFlag,
		TUI:         *tuiFlag,
		LogLevel:    strings.ToLower(*logLevelFlag),
		LogFormat:   strings.ToLower(*logFormatFlag),
		Trace:       *traceFlag,
	}

	var err error
	if cfg.From, err = parsePosition(*fromFlag); err != nil {
		return nil, false, usageError("invalid -from: %v", err)
	}
	if cfg.To, err = parsePosition(*toFlag); err != nil {
		return nil, false, usageError("invalid -to: %v", err)
	}
	if cfg.Reachable < 0 {
		return nil, false, usageError("invalid -reachable: must not be negative")
	}
	if *generateFlag != "" {
		if cfg.MazePath != "" && isFlagSet(fs, "maze") {
			return nil, false, usageError("-maze and -generate are mutually exclusive")
		}
		cfg.MazePath = ""
		if cfg.GenRows, cfg.GenCols, err = parseSize(*generateFlag); err != nil {
			return nil, false, usageError("invalid -generate: %v", err)
		}
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return cfg, false, nil
}

// parsePosition parses "row,col".
func parsePosition(s string) (maze.Position, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return maze.Position{}, fmt.Errorf("%q is not row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return maze.Position{}, fmt.Errorf("row: %w", err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return maze.Position{}, fmt.Errorf("col: %w", err)
	}
	return maze.Position{Row: r, Col: c}, nil
}

// parseSize parses "ROWSxCOLS" with both dimensions positive.
func parseSize(s string) (rows, cols int, err error) {
	rs, cs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not ROWSxCOLS", s)
	}
	if rows, err = strconv.Atoi(rs); err != nil {
		return 0, 0, fmt.Errorf("rows: %w", err)
	}
	if cols, err = strconv.Atoi(cs); err != nil {
		return 0, 0, fmt.Errorf("cols: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%q must have positive dimensions", s)
	}
	return rows, cols, nil
}

// isFlagSet reports whether name was given explicitly on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// getEnvWithDefault retrieves the value of an environment variable or returns
// a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
