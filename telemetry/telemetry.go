// Package telemetry sets up OpenTelemetry tracing for the maze tools and
// names the span attributes that describe mazes, queries and search results.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/mazepath/maze"
)

const (
	serviceName  = "mazesolve"
	scopePrefix  = "mazepath/"
	engineFlavor = "bfs-predecessor"
)

// Span attribute keys.
const (
	KeyMazeSource   = attribute.Key("maze.source")
	KeyMazeRows     = attribute.Key("maze.rows")
	KeyMazeCols     = attribute.Key("maze.cols")
	KeyMazeRooms    = attribute.Key("maze.rooms")
	KeyQueryName    = attribute.Key("query.name")
	KeyQueryFrom    = attribute.Key("query.from")
	KeyQueryTo      = attribute.Key("query.to")
	KeyPathReached  = attribute.Key("path.reached")
	KeyPathSteps    = attribute.Key("path.steps")
	KeyEngineFlavor = attribute.Key("mazepath.engine")
)

// Setup registers a batching tracer provider that exports over OTLP HTTP.
// Exporter settings come from the OTEL_EXPORTER_OTLP_* variables and extra
// resource attributes from OTEL_RESOURCE_ATTRIBUTES.
//
// The returned shutdown flushes pending spans; call it before exit.
func Setup(ctx context.Context, version string) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("telemetry: exporter: %w", err)
	}

	res, err := newResource(ctx, version)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process: service identity plus host, OS and
// runtime detectors.
func newResource(ctx context.Context, version string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version),
			KeyEngineFlavor.String(engineFlavor),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: resource: %w", err)
	}
	return res, nil
}

// Tracer returns a tracer from the global provider scoped under mazepath/.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(scopePrefix + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(scopePrefix + "noop")
}

// MazeAttributes describes a loaded maze.
func MazeAttributes(source string, g maze.Grid) []attribute.KeyValue {
	return []attribute.KeyValue{
		KeyMazeSource.String(source),
		KeyMazeRows.Int(g.Rows()),
		KeyMazeCols.Int(g.Columns()),
		KeyMazeRooms.Int(g.Rows() * g.Columns()),
	}
}

// QueryAttributes describes one path search request. An empty name is
// left out.
func QueryAttributes(name string, from, to maze.Position) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3)
	if name != "" {
		attrs = append(attrs, KeyQueryName.String(name))
	}
	return append(attrs, KeyQueryFrom.String(from.String()), KeyQueryTo.String(to.String()))
}

// ResultAttributes describes the outcome of a path search.
func ResultAttributes(steps int, reached bool) []attribute.KeyValue {
	return []attribute.KeyValue{
		KeyPathReached.Bool(reached),
		KeyPathSteps.Int(steps),
	}
}

// Fail records err on span, marks the span failed and returns err.
func Fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
