package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazepath/maze"
)

var (
	wallStyle    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	floorStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	pathStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	captionStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Screen draws mazes onto a tcell screen.
type Screen struct {
	screen tcell.Screen
	height int // lines used by the last Draw
}

// NewScreen initializes s and wraps it. Pass tcell.NewScreen() for a real
// terminal or tcell.NewSimulationScreen("") in tests.
func NewScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Draw clears the screen and draws g with the rooms marked by m.
func (s *Screen) Draw(g maze.Grid, m PathMarker) {
	s.screen.Clear()
	lines := Lines(g, m)
	for y, line := range lines {
		for x, ch := range line {
			style := floorStyle
			switch ch {
			case '#':
				style = wallStyle
			case PathChar:
				style = pathStyle
			}
			s.screen.SetContent(x, y, rune(ch), nil, style)
		}
	}
	s.height = len(lines)
	s.screen.Show()
}

// Caption writes lines below the last drawn maze.
func (s *Screen) Caption(lines ...string) {
	for i, line := range lines {
		for x, ch := range []rune(line) {
			s.screen.SetContent(x, s.height+1+i, ch, nil, captionStyle)
		}
	}
	s.screen.Show()
}

// WaitKey blocks until a key is pressed.
func (s *Screen) WaitKey() {
	for {
		switch s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			// screen finalized
			return
		}
	}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}
