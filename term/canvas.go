// Package term presents pixmaps on a 24-bit-color terminal.
//
// Each character cell shows two vertically stacked pixels using the upper
// half block glyph: the foreground color carries the upper pixel, the
// background color the lower one. A Canvas opened with Open owns the
// terminal for its lifetime: it enters the alternate screen, hides the
// cursor and switches stdin to raw mode, restoring everything on Close.
package term

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	xterm "golang.org/x/term"

	"github.com/gogpu/rast"
)

// halfBlock is U+2580 UPPER HALF BLOCK.
const halfBlock = "▀"

// Canvas writes pixmap frames to a terminal (or any writer).
type Canvas struct {
	out io.Writer
	buf bytes.Buffer

	// Terminal state, set only by Open.
	stdinFd  int
	stdoutFd int
	saved    *xterm.State
	keys     chan byte
	owned    bool
}

// NewCanvas creates a canvas over an arbitrary writer. No terminal modes
// are touched, no input is read; Present writes the frame escape stream
// as-is. Useful for tests and for piping frames elsewhere.
func NewCanvas(w io.Writer) *Canvas {
	return &Canvas{out: w}
}

// Open claims the controlling terminal: alternate screen, hidden cursor,
// cleared display, raw-mode stdin with a background key reader. It fails
// if stdout is not a terminal.
func Open() (*Canvas, error) {
	stdoutFd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(stdoutFd) {
		return nil, fmt.Errorf("term: stdout is not a terminal")
	}

	c := &Canvas{
		out:      os.Stdout,
		stdinFd:  int(os.Stdin.Fd()),
		stdoutFd: stdoutFd,
		owned:    true,
	}

	saved, err := xterm.MakeRaw(c.stdinFd)
	if err != nil {
		return nil, fmt.Errorf("term: enabling raw mode: %w", err)
	}
	c.saved = saved

	if _, err := io.WriteString(c.out,
		ansi.SetAltScreenSaveCursorMode+ansi.HideCursor+ansi.EraseDisplay(2)+ansi.CursorPosition(1, 1)); err != nil {
		xterm.Restore(c.stdinFd, c.saved)
		return nil, fmt.Errorf("term: entering alternate screen: %w", err)
	}

	// Key reader. The goroutine exits when stdin reports an error, which
	// includes the fd closing at process shutdown.
	c.keys = make(chan byte, 64)
	go func() {
		var b [1]byte
		for {
			n, err := os.Stdin.Read(b[:])
			if err != nil {
				close(c.keys)
				return
			}
			if n == 1 {
				select {
				case c.keys <- b[0]:
				default: // drop when the app is not polling
				}
			}
		}
	}()

	rast.Logger().Debug("term: canvas opened")
	return c, nil
}

// Size returns the terminal grid size in cells. For a canvas not attached
// to a terminal it returns an error.
func (c *Canvas) Size() (cols, rows int, err error) {
	if !c.owned {
		return 0, 0, fmt.Errorf("term: canvas has no terminal")
	}
	return xterm.GetSize(c.stdoutFd)
}

// PixelSize returns the drawable pixmap size: terminal width × twice the
// terminal height, since every cell holds two pixels.
func (c *Canvas) PixelSize() (w, h int, err error) {
	cols, rows, err := c.Size()
	if err != nil {
		return 0, 0, err
	}
	return cols, rows * 2, nil
}

// PollKey returns a pending key byte without blocking. ok is false when no
// input is pending or the canvas reads no input.
func (c *Canvas) PollKey() (key byte, ok bool) {
	if c.keys == nil {
		return 0, false
	}
	select {
	case b, open := <-c.keys:
		return b, open
	default:
		return 0, false
	}
}

// Present writes one frame. Pixel rows are paired into cell rows; an odd
// final row renders with a black lower half. Color escapes are emitted
// only when the pair of colors changes between cells, which keeps frames
// compact on flat imagery.
func (c *Canvas) Present(p *rast.Pixmap) error {
	c.buf.Reset()
	c.buf.WriteString(ansi.CursorPosition(1, 1))

	w, h := p.Width(), p.Height()
	for y := 0; y < h; y += 2 {
		if y > 0 {
			c.buf.WriteString("\r\n")
		}
		var haveLast bool
		var lastFg, lastBg rast.Color
		for x := 0; x < w; x++ {
			fg, _ := p.GetPixel(x, y)
			bg, _ := p.GetPixel(x, y+1) // zero color past the last row
			if !haveLast || fg != lastFg || bg != lastBg {
				// 38;2 / 48;2 truecolor SGR, one combined sequence per run.
				fmt.Fprintf(&c.buf, "\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm",
					fg.R, fg.G, fg.B, bg.R, bg.G, bg.B)
				lastFg, lastBg = fg, bg
				haveLast = true
			}
			c.buf.WriteString(halfBlock)
		}
		c.buf.WriteString(ansi.ResetStyle)
	}

	_, err := c.out.Write(c.buf.Bytes())
	if err != nil {
		return fmt.Errorf("term: writing frame: %w", err)
	}
	return nil
}

// Close restores the terminal: normal screen, visible cursor, cooked
// stdin. It is a no-op for canvases created with NewCanvas.
func (c *Canvas) Close() error {
	if !c.owned {
		return nil
	}
	c.owned = false

	var firstErr error
	if _, err := io.WriteString(c.out,
		ansi.ResetStyle+ansi.ShowCursor+ansi.ResetAltScreenSaveCursorMode); err != nil {
		firstErr = err
	}
	if err := xterm.Restore(c.stdinFd, c.saved); err != nil {
		rast.Logger().Warn("term: restoring terminal state", "err", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

