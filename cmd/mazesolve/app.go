package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/mazepath"
	"github.com/katalvlaran/mazepath/queryfile"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/telemetry"
)

// version is reported as service.version on exported traces.
const version = "0.1.0"

// sampleMaze is solved when neither -maze nor -generate is given.
//
//go:embed maze-sample.txt
var sampleMaze []byte

// app wires the configured maze source, engine, output and tracing.
type app struct {
	cfg    *Config
	out    io.Writer
	log    *slog.Logger
	tracer trace.Tracer

	// newScreen opens the terminal for -tui.
	newScreen func() (tcell.Screen, error)
}

func newApp(cfg *Config, out io.Writer, logger *slog.Logger) *app {
	return &app{
		cfg:       cfg,
		out:       out,
		log:       logger,
		tracer:    telemetry.NoopTracer(),
		newScreen: tcell.NewScreen,
	}
}

// enableTracing registers the OTLP exporter and switches to a real tracer.
func (a *app) enableTracing(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := telemetry.Setup(ctx, version)
	if err != nil {
		return nil, err
	}
	a.tracer = telemetry.Tracer("mazesolve")
	return shutdown, nil
}

// Run loads the maze and answers every query in order.
func (a *app) Run(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "mazesolve.run")
	defer span.End()

	m, err := a.loadMaze(ctx)
	if err != nil {
		return telemetry.Fail(span, err)
	}

	queries, named, err := a.queries()
	if err != nil {
		return telemetry.Fail(span, err)
	}

	engine := mazepath.New(mazepath.WithLogger(a.log))
	if err := engine.Initialize(m); err != nil {
		return telemetry.Fail(span, err)
	}

	var screen *render.Screen
	if a.cfg.TUI {
		s, err := a.newScreen()
		if err != nil {
			return telemetry.Fail(span, fmt.Errorf("open terminal: %w", err))
		}
		if screen, err = render.NewScreen(s); err != nil {
			return telemetry.Fail(span, fmt.Errorf("open terminal: %w", err))
		}
		defer screen.Close()
	}

	for _, q := range queries {
		if err := a.solve(ctx, m, engine, q, named, screen); err != nil {
			return telemetry.Fail(span, err)
		}
	}
	return nil
}

// loadMaze generates, reads or falls back to the built-in sample maze.
func (a *app) loadMaze(ctx context.Context) (*maze.Maze, error) {
	_, span := a.tracer.Start(ctx, "maze.load")
	defer span.End()

	var (
		m      *maze.Maze
		err    error
		source string
	)
	switch {
	case a.cfg.generated():
		var rng *rand.Rand
		if a.cfg.Seed != 0 {
			rng = rand.New(rand.NewSource(a.cfg.Seed))
		}
		source = fmt.Sprintf("generated %dx%d", a.cfg.GenRows, a.cfg.GenCols)
		m, err = maze.Generate(a.cfg.GenRows, a.cfg.GenCols, rng)
	case a.cfg.MazePath != "":
		source = a.cfg.MazePath
		m, err = maze.ReadFile(a.cfg.MazePath)
	default:
		source = "built-in sample"
		m, err = maze.Parse(bytes.NewReader(sampleMaze))
	}
	if err != nil {
		return nil, telemetry.Fail(span, err)
	}

	span.SetAttributes(telemetry.MazeAttributes(source, m)...)
	a.log.Info("maze loaded", "source", source, "rows", m.Rows(), "cols", m.Columns())
	return m, nil
}

// queries returns the batch from -queries, or the single query built from
// -from, -to and -reachable. named is true for a batch.
func (a *app) queries() (qs []queryfile.Query, named bool, err error) {
	if a.cfg.QueriesPath == "" {
		k := a.cfg.Reachable
		return []queryfile.Query{{From: a.cfg.From, To: a.cfg.To, Reachable: &k}}, false, nil
	}
	f, err := queryfile.Load(a.cfg.QueriesPath)
	if err != nil {
		return nil, true, err
	}
	a.log.Info("queries loaded", "path", a.cfg.QueriesPath, "count", len(f.Queries))
	return f.Queries, true, nil
}

// solve runs one query and prints its distance, the maze with the path and
// the requested room counts.
func (a *app) solve(ctx context.Context, m *maze.Maze, e *mazepath.Engine, q queryfile.Query, named bool, screen *render.Screen) error {
	_, span := a.tracer.Start(ctx, "mazepath.search",
		trace.WithAttributes(telemetry.QueryAttributes(q.Name, q.From, q.To)...))
	defer span.End()

	steps, ok, err := e.PathSearch(q.From.Row, q.From.Col, q.To.Row, q.To.Col)
	if err != nil {
		if named {
			err = fmt.Errorf("query %q: %w", q.Name, err)
		}
		return telemetry.Fail(span, err)
	}
	span.SetAttributes(telemetry.ResultAttributes(steps, ok)...)

	result := "unreachable"
	if ok {
		result = fmt.Sprint(steps)
	}
	if named {
		result = fmt.Sprintf("query %s: %s", q.Name, result)
	}

	var counts []string
	if q.Reachable != nil {
		for i := 0; i <= *q.Reachable; i++ {
			n, err := e.NumReachable(i)
			if err != nil {
				return telemetry.Fail(span, err)
			}
			counts = append(counts, fmt.Sprintf("Steps %d Rooms: %d", i, n))
		}
	}

	if _, err := fmt.Fprintln(a.out, result); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := render.Text(a.out, m, e); err != nil {
		return err
	}
	for _, line := range counts {
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}

	if screen != nil {
		screen.Draw(m, e)
		screen.Caption(append([]string{result, "press any key"}, counts...)...)
		screen.WaitKey()
	}
	return nil
}
