package draw

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/meteors/internal/physics"
)

// Screen renders frames onto a tcell screen.
type Screen struct {
	screen tcell.Screen
	canvas *Canvas
	style  tcell.Style
	texts  []text
}

// NewScreen creates a renderer for an initialized tcell screen.
func NewScreen(screen tcell.Screen, logicalWidth, logicalHeight float64) *Screen {
	s := &Screen{
		screen: screen,
		canvas: NewCanvas(1, 1, logicalWidth, logicalHeight),
	}
	s.setColors(Background)
	screen.HideCursor()
	return s
}

func (s *Screen) setColors(bg Color) {
	s.style = tcell.StyleDefault.Background(bg.TCell()).Foreground(Foreground.TCell())
}

// Clear starts a new frame with the given background color.
func (s *Screen) Clear(bg Color) {
	if w, h := s.screen.Size(); w > 0 && h > 0 {
		s.canvas.Fit(w, h)
	}
	s.canvas.Clear()
	s.texts = s.texts[:0]
	s.setColors(bg)
}

// DrawShape rasterizes a shape onto the frame.
func (s *Screen) DrawShape(shape *physics.Shape, pos physics.Vector2, rotation float64) {
	s.canvas.DrawShape(shape, pos, rotation)
}

// DrawText places text centered on a logical position.
func (s *Screen) DrawText(str string, pos physics.Vector2) {
	col, row := s.canvas.TextPosition(str, pos.X, pos.Y)
	s.texts = append(s.texts, text{value: str, col: col, row: row})
}

// Present copies the frame to the tcell back buffer and shows it.
func (s *Screen) Present() error {
	s.screen.SetStyle(s.style)
	s.screen.Clear()

	offCol, offRow := s.canvas.Offset()
	s.canvas.Cells(func(col, row int, ch rune) {
		s.screen.SetContent(col+offCol, row+offRow, ch, nil, s.style)
	})
	s.canvas.Border(func(col, row int, ch rune) {
		s.screen.SetContent(col, row, ch, nil, s.style)
	})
	for _, tx := range s.texts {
		x := tx.col - 1
		for _, r := range tx.value {
			s.screen.SetContent(x, tx.row-1, r, nil, s.style)
			x++
		}
	}

	s.screen.Show()
	return nil
}
