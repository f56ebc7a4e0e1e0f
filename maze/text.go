package maze

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	wallChar = '#'
	openChar = ' '
)

// Parse reads a maze drawn in the '#'-art text format (see package doc).
// Carriage returns and trailing blank lines are ignored; lines shorter than
// the first line are padded as open space.
// Returns ErrMalformed when the drawing does not have odd dimensions of at
// least 3×3 or a line is longer than the first.
func Parse(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	h := len(lines)
	if h == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	w := len(lines[0])
	if h < 3 || w < 3 || h%2 == 0 || w%2 == 0 {
		return nil, fmt.Errorf("%w: drawing is %dx%d, want odd dimensions of at least 3x3", ErrMalformed, h, w)
	}
	canvas := make([][]byte, h)
	for y, line := range lines {
		if len(line) > w {
			return nil, fmt.Errorf("%w: line %d has %d characters, want at most %d", ErrMalformed, y+1, len(line), w)
		}
		row := bytes.Repeat([]byte{openChar}, w)
		copy(row, line)
		canvas[y] = row
	}

	rows, cols := (h-1)/2, (w-1)/2
	m := filled(rows, cols, Room{})
	for r := 0; r < rows; r++ {
		y := 2*r + 1
		for c := 0; c < cols; c++ {
			x := 2*c + 1
			m.rooms[m.Index(r, c)] = Room{
				North: canvas[y-1][x] == wallChar,
				South: canvas[y+1][x] == wallChar,
				West:  canvas[y][x-1] == wallChar,
				East:  canvas[y][x+1] == wallChar,
			}
		}
	}

	return m, nil
}

// ReadFile parses the maze stored at path.
func ReadFile(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Canvas draws g in the text format and returns one byte slice per line.
// Room cells are left open so callers can overlay markers on them.
// The passage between two rooms is drawn as wall if either room reports one;
// corner cells are always wall.
func Canvas(g Grid) [][]byte {
	rows, cols := g.Rows(), g.Columns()
	h, w := 2*rows+1, 2*cols+1
	canvas := make([][]byte, h)
	for y := range canvas {
		canvas[y] = bytes.Repeat([]byte{openChar}, w)
		if y%2 == 0 {
			for x := 0; x < w; x += 2 {
				canvas[y][x] = wallChar
			}
		}
	}

	walled := func(r, c int, s Side) bool {
		if g.HasWall(r, c, s) {
			return true
		}
		n := Position{r, c}.Step(s)
		if n.Row < 0 || n.Row >= rows || n.Col < 0 || n.Col >= cols {
			return false
		}
		return g.HasWall(n.Row, n.Col, s.Opposite())
	}
	mark := func(y, x int, wall bool) {
		if wall {
			canvas[y][x] = wallChar
		}
	}

	for r := 0; r < rows; r++ {
		y := 2*r + 1
		for c := 0; c < cols; c++ {
			x := 2*c + 1
			// each room draws its north and west edge; the last row and
			// column also draw the outer south and east edge
			mark(y-1, x, walled(r, c, North))
			mark(y, x-1, walled(r, c, West))
			if r == rows-1 {
				mark(y+1, x, walled(r, c, South))
			}
			if c == cols-1 {
				mark(y, x+1, walled(r, c, East))
			}
		}
	}

	return canvas
}

// MarshalText implements encoding.TextMarshaler using the format Parse reads.
func (m *Maze) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range Canvas(m) {
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// String returns the maze drawing.
func (m *Maze) String() string {
	b, _ := m.MarshalText()
	return string(b)
}
