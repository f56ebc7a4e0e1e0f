package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/mazepath/mazepath"
)

// sampleOutput is the default run over the built-in sample.
const sampleOutput = `6
#########
#*  #   #
# # # # #
#*#   # #
# ##### #
#* * * *#
### ### #
#   #  *#
#########
Steps 0 Rooms: 1
Steps 1 Rooms: 2
Steps 2 Rooms: 2
Steps 3 Rooms: 2
Steps 4 Rooms: 3
Steps 5 Rooms: 3
Steps 6 Rooms: 2
Steps 7 Rooms: 1
Steps 8 Rooms: 0
Steps 9 Rooms: 0
`

const openTwoByTwo = `#####
#   #
#   #
#   #
#####
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	require.Equal(t, code, exitErr.Code)
}

func TestRun_DefaultSample(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	require.NoError(t, run(out, io.Discard, nil))
	require.Equal(t, sampleOutput, out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	require.NoError(t, run(out, io.Discard, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()
	mazePath := writeFile(t, "open.txt", openTwoByTwo)

	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"UnknownFlag", []string{"--this-is-not-a-valid-flag"}, "flag provided but not defined"},
		{"BadFrom", []string{"-from", "x"}, "invalid -from"},
		{"BadTo", []string{"-to", "1,y"}, "invalid -to"},
		{"NegativeReachable", []string{"-reachable", "-1"}, "invalid -reachable"},
		{"BadGenerate", []string{"-generate", "3by4"}, "invalid -generate"},
		{"ZeroGenerate", []string{"-generate", "0x4"}, "invalid -generate"},
		{"MazeAndGenerate", []string{"-maze", mazePath, "-generate", "2x2"}, "mutually exclusive"},
		{"BadLogLevel", []string{"-log-level", "loud"}, "invalid log-level"},
		{"BadLogFormat", []string{"-log-format", "xml"}, "invalid log-format"},
		{"ExtraArgs", []string{"extra"}, "unexpected arguments"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(io.Discard, io.Discard, tc.args)
			requireExitCode(t, err, 2)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestRun_OutOfRangeQuery(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	err := run(out, io.Discard, []string{"-to", "4,0"})
	require.ErrorIs(t, err, mazepath.ErrInvalidCoordinate)
	var exitErr *ExitError
	require.False(t, errors.As(err, &exitErr))
	require.Empty(t, out.String())
}

func TestRun_MazeFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "open.txt", openTwoByTwo)
	out := &bytes.Buffer{}

	require.NoError(t, run(out, io.Discard, []string{"-maze", path, "-to", "1,1", "-reachable", "3"}))
	want := `2
#####
#*  #
# # #
#* *#
#####
Steps 0 Rooms: 1
Steps 1 Rooms: 2
Steps 2 Rooms: 1
Steps 3 Rooms: 0
`
	require.Equal(t, want, out.String())
}

func TestRun_MazeFromEnv(t *testing.T) {
	path := writeFile(t, "open.txt", openTwoByTwo)
	t.Setenv("MAZESOLVE_MAZE", path)
	out := &bytes.Buffer{}

	require.NoError(t, run(out, io.Discard, []string{"-from", "0,1", "-to", "0,1", "-reachable", "0"}))
	require.True(t, strings.HasPrefix(out.String(), "0\n"), out.String())
	require.True(t, strings.HasSuffix(out.String(), "Steps 0 Rooms: 1\n"), out.String())
}

func TestRun_MissingMaze(t *testing.T) {
	t.Parallel()
	err := run(io.Discard, io.Discard, []string{"-maze", filepath.Join(t.TempDir(), "none.txt")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Unreachable(t *testing.T) {
	t.Parallel()
	walled := `#####
# # #
#####
`
	path := writeFile(t, "walled.txt", walled)
	out := &bytes.Buffer{}

	require.NoError(t, run(out, io.Discard, []string{"-maze", path, "-to", "0,1", "-reachable", "1"}))
	require.Equal(t, "unreachable\n#####\n# # #\n#####\nSteps 0 Rooms: 1\nSteps 1 Rooms: 0\n", out.String())
}

func TestRun_Generate(t *testing.T) {
	t.Parallel()
	args := []string{"-generate", "5x7", "-seed", "42", "-to", "4,6", "-reachable", "40"}

	first := &bytes.Buffer{}
	require.NoError(t, run(first, io.Discard, args))
	second := &bytes.Buffer{}
	require.NoError(t, run(second, io.Discard, args))
	require.Equal(t, first.String(), second.String())

	// a perfect maze reaches every room exactly once across all distances
	total := 0
	for _, line := range strings.Split(first.String(), "\n") {
		var k, n int
		if _, err := fmt.Sscanf(line, "Steps %d Rooms: %d", &k, &n); err == nil {
			total += n
		}
	}
	require.Equal(t, 35, total)
	require.NotContains(t, first.String(), "unreachable")
}

func TestRun_Queries(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "q.hcl", `
query "corner" {
  from      = [0, 0]
  to        = [3, 3]
  reachable = 1
}

query "same" {
  from = [2, 2]
  to   = [2, 2]
}
`)
	out := &bytes.Buffer{}

	require.NoError(t, run(out, io.Discard, []string{"-queries", path}))
	s := out.String()
	require.Contains(t, s, "query corner: 6\n")
	require.Contains(t, s, "Steps 0 Rooms: 1\nSteps 1 Rooms: 2\nquery same: 0\n")
	require.True(t, strings.HasSuffix(s, "#########\n"), s)
}

func TestRun_QueryOutOfRange(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "q.hcl", `
query "far" {
  from = [0, 0]
  to   = [9, 9]
}
`)
	err := run(io.Discard, io.Discard, []string{"-queries", path})
	require.ErrorIs(t, err, mazepath.ErrInvalidCoordinate)
	require.Contains(t, err.Error(), `query "far"`)
}

func TestRun_JSONLogs(t *testing.T) {
	t.Parallel()
	logs := &bytes.Buffer{}

	require.NoError(t, run(io.Discard, logs, []string{"-log-level", "debug", "-log-format", "json"}))
	s := logs.String()
	assert.Contains(t, s, `"run_id":"`)
	assert.Contains(t, s, `"msg":"maze loaded"`)
	assert.Contains(t, s, `"msg":"path search finished"`)
	assert.Contains(t, s, `"steps":6`)
}

func TestRun_LogLevelFromEnv(t *testing.T) {
	t.Setenv("MAZESOLVE_LOG_LEVEL", "error")
	logs := &bytes.Buffer{}

	require.NoError(t, run(io.Discard, logs, nil))
	require.Empty(t, logs.String())
}

// keyScreen answers every poll with Enter.
type keyScreen struct {
	tcell.SimulationScreen
	polls int
}

func (k *keyScreen) PollEvent() tcell.Event {
	k.polls++
	return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
}

func TestApp_TUI(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "q.hcl", `
query "a" {
  from = [0, 0]
  to   = [3, 3]
}

query "b" {
  from = [3, 3]
  to   = [0, 0]
}
`)
	cfg, exit, err := parseArgs([]string{"-tui", "-queries", path}, io.Discard)
	require.NoError(t, err)
	require.False(t, exit)

	screen := &keyScreen{SimulationScreen: tcell.NewSimulationScreen("")}
	out := &bytes.Buffer{}
	a := newApp(cfg, out, newLogger("error", "text", io.Discard))
	a.newScreen = func() (tcell.Screen, error) { return screen, nil }

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, 2, screen.polls)
	require.Contains(t, out.String(), "query b: 6\n")
}

// recordingApp returns an app whose spans land in the returned recorder.
func recordingApp(t *testing.T, args ...string) (*app, *tracetest.SpanRecorder) {
	t.Helper()
	cfg, exit, err := parseArgs(args, io.Discard)
	require.NoError(t, err)
	require.False(t, exit)

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	a := newApp(cfg, io.Discard, newLogger("error", "text", io.Discard))
	a.tracer = tp.Tracer("mazesolve")
	return a, rec
}

// spanStatus maps ended span names to their status codes.
func spanStatus(rec *tracetest.SpanRecorder) map[string]codes.Code {
	out := map[string]codes.Code{}
	for _, s := range rec.Ended() {
		out[s.Name()] = s.Status().Code
	}
	return out
}

func TestApp_Spans(t *testing.T) {
	t.Parallel()
	a, rec := recordingApp(t)

	require.NoError(t, a.Run(context.Background()))
	require.Equal(t, map[string]codes.Code{
		"mazesolve.run":   codes.Unset,
		"maze.load":       codes.Unset,
		"mazepath.search": codes.Unset,
	}, spanStatus(rec))

	for _, s := range rec.Ended() {
		if s.Name() != "mazepath.search" {
			continue
		}
		attrs := map[string]string{}
		for _, kv := range s.Attributes() {
			attrs[string(kv.Key)] = kv.Value.Emit()
		}
		assert.Equal(t, "(0,0)", attrs["query.from"])
		assert.Equal(t, "(3,3)", attrs["query.to"])
		assert.Equal(t, "true", attrs["path.reached"])
		assert.Equal(t, "6", attrs["path.steps"])
	}
}

func TestApp_SpansRecordFailures(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		args   []string
		failed []string
	}{
		{"MissingMaze", []string{"-maze", filepath.Join(t.TempDir(), "none.txt")}, []string{"maze.load", "mazesolve.run"}},
		{"OutOfRange", []string{"-to", "9,9"}, []string{"mazepath.search", "mazesolve.run"}},
		{"MissingQueries", []string{"-queries", filepath.Join(t.TempDir(), "none.hcl")}, []string{"mazesolve.run"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, rec := recordingApp(t, tc.args...)
			require.Error(t, a.Run(context.Background()))

			status := spanStatus(rec)
			for _, name := range tc.failed {
				assert.Equal(t, codes.Error, status[name], name)
			}
			for _, s := range rec.Ended() {
				if status[s.Name()] == codes.Error {
					require.NotEmpty(t, s.Events(), "%s has no error event", s.Name())
				}
			}
		})
	}
}

func TestApp_TUIOpenFailure(t *testing.T) {
	t.Parallel()
	a, rec := recordingApp(t, "-tui")
	a.newScreen = func() (tcell.Screen, error) { return nil, errors.New("no tty") }

	err := a.Run(context.Background())
	require.ErrorContains(t, err, "open terminal: no tty")
	assert.Equal(t, codes.Error, spanStatus(rec)["mazesolve.run"])
}
