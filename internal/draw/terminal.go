package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/tomz197/meteors/internal/physics"
)

// ChunkWriter accumulates a frame of terminal output and writes it in chunks.
// Use MoveCursor and WriteString to accumulate, then Flush to write to the
// underlying writer. Implements io.Writer for Canvas.Render.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte // Scratch buffer for allocation-free integer formatting
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{
		bufw: bufio.NewWriterSize(w, 8192),
	}
}

// MoveCursor appends an ANSI cursor position sequence (1-based).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes a string at a 1-based terminal position.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated frame in chunks and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ANSI control sequences.
const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	resetStyle  = "\033[0m"
)

// Terminal renders frames as ANSI escape sequences with 24-bit color.
type Terminal struct {
	out    *ChunkWriter
	canvas *Canvas
	size   TermSizeFunc
	bg     Color
	fg     Color
	texts  []text
}

// NewTerminal creates a renderer writing to w. size reports the terminal
// dimensions and is queried every frame to follow resizes.
func NewTerminal(w io.Writer, size TermSizeFunc, logicalWidth, logicalHeight float64) *Terminal {
	if size == nil {
		size = DefaultTermSizeFunc
	}
	return &Terminal{
		out:    NewChunkWriter(w),
		canvas: NewCanvas(1, 1, logicalWidth, logicalHeight),
		size:   size,
		bg:     Background,
		fg:     Foreground,
	}
}

// Start hides the cursor and clears the terminal.
func (t *Terminal) Start() error {
	t.out.WriteString(hideCursor + clearScreen)
	return t.out.Flush()
}

// Stop restores the cursor and default colors.
func (t *Terminal) Stop() error {
	t.out.WriteString(resetStyle + clearScreen + showCursor)
	return t.out.Flush()
}

// Clear starts a new frame with the given background color.
func (t *Terminal) Clear(bg Color) {
	if w, h, err := t.size(); err == nil && w > 0 && h > 0 {
		t.canvas.Fit(w, h)
	}
	t.canvas.Clear()
	t.texts = t.texts[:0]
	t.bg = bg
}

// DrawShape rasterizes a shape onto the frame.
func (t *Terminal) DrawShape(shape *physics.Shape, pos physics.Vector2, rotation float64) {
	t.canvas.DrawShape(shape, pos, rotation)
}

// DrawText places text centered on a logical position.
func (t *Terminal) DrawText(s string, pos physics.Vector2) {
	col, row := t.canvas.TextPosition(s, pos.X, pos.Y)
	t.texts = append(t.texts, text{value: s, col: col, row: row})
}

// Present writes the frame to the terminal.
func (t *Terminal) Present() error {
	t.out.WriteString(t.bg.bgSequence())
	t.out.WriteString(t.fg.fgSequence())
	t.out.WriteString(clearScreen)

	t.canvas.Render(t.out)
	t.canvas.Border(func(col, row int, ch rune) {
		t.out.WriteAt(col+1, row+1, string(ch))
	})
	for _, tx := range t.texts {
		t.out.WriteAt(tx.col, tx.row, tx.value)
	}

	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
