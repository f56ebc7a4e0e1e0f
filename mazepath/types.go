// Package mazepath provides tunable options and error definitions
// for the path search engine.
package mazepath

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for engine operations.
var (
	// ErrUninitialized is returned when the engine has no grid bound.
	ErrUninitialized = errors.New("mazepath: engine not initialized")

	// ErrInvalidCoordinate is returned when a coordinate is outside the grid.
	ErrInvalidCoordinate = errors.New("mazepath: invalid start/end coordinate")

	// ErrNilGrid is returned when Initialize receives a nil grid.
	ErrNilGrid = errors.New("mazepath: grid is nil")
)

// unreached marks a room with no recorded distance.
const unreached = -1

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize searches.
type Options struct {
	// Logger receives a debug record per search.
	Logger *slog.Logger

	// OnEnqueue is called when a room is first discovered,
	// with its distance from the start.
	OnEnqueue func(p maze.Position, depth int)

	// OnDequeue is called immediately before a room is expanded.
	OnDequeue func(p maze.Position, depth int)
}

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnEnqueue: func(maze.Position, int) {},
		OnDequeue: func(maze.Position, int) {},
	}
}

// WithLogger sets the logger used for search summaries.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback to run when a room is discovered.
func WithOnEnqueue(fn func(p maze.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a room is expanded.
func WithOnDequeue(fn func(p maze.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
