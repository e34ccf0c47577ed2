// Package draw renders the play field to a terminal using colored
// half-block characters, two sub-pixels per character cell.
package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Surface is a fixed-size drawing target in logical field coordinates.
type Surface interface {
	FillRect(x, y, width, height float64, c Color)
}

// Block characters used by Render.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// maxChunkSize is the largest write issued at once; about one MTU.
const maxChunkSize = 1400

type pixel struct {
	on    bool
	color Color
}

// Canvas is a colored pixel buffer with 2x vertical resolution. Game code
// draws in logical coordinates which are scaled to the terminal size.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int // termHeight * 2
	pixels         []pixel

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// 0-based terminal offsets used to center the canvas in a larger terminal.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

var _ Surface = (*Canvas)(nil)

// NewScaledCanvas creates a canvas of termWidth x termHeight cells that maps
// a logicalWidth x logicalHeight coordinate space onto them.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the terminal dimensions, keeping the logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]pixel, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based column and row where the canvas starts.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = pixel{on: true, color: col}
	}
}

// FillRect fills a rectangle given in logical coordinates. Anything with a
// visible extent covers at least one sub-pixel so thin projectiles stay visible.
func (c *Canvas) FillRect(x, y, width, height float64, col Color) {
	x0 := int(math.Floor(x * c.scaleX))
	x1 := int(math.Ceil((x + width) * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	y1 := int(math.Ceil((y + height) * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// Render writes the whole canvas to w, one cursor move per row. Unlit cells
// are written as spaces so the previous frame never needs clearing. A cell
// whose halves differ in color is an upper half block with foreground and
// background set.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 16)

	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[row*2*c.termWidth : (row*2+1)*c.termWidth]
		bottom := c.pixels[(row*2+1)*c.termWidth : (row*2+2)*c.termWidth]

		fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, 1+c.offsetCol)
		for col := 0; col < c.termWidth; col++ {
			t, b := top[col], bottom[col]
			switch {
			case !t.on && !b.on:
				c.renderBuf.WriteByte(' ')
				continue
			case t.on && b.on && t.color == b.color:
				writeFg(&c.renderBuf, t.color)
				c.renderBuf.WriteRune(BlockFull)
			case t.on && b.on:
				writeFg(&c.renderBuf, t.color)
				writeBg(&c.renderBuf, b.color)
				c.renderBuf.WriteRune(BlockUpperHalf)
			case t.on:
				writeFg(&c.renderBuf, t.color)
				c.renderBuf.WriteRune(BlockUpperHalf)
			default:
				writeFg(&c.renderBuf, b.color)
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
			c.renderBuf.WriteString(seqReset)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func writeFg(b *strings.Builder, c Color) {
	fmt.Fprintf(b, "\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

func writeBg(b *strings.Builder, c Color) {
	fmt.Fprintf(b, "\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// RenderBorder draws a frame around the canvas when it is centered in a
// terminal larger than the render area.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow, endRow = c.offsetRow+1, c.offsetRow+c.termHeight+1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}
	io.WriteString(w, buf.String())
}

// TerminalWidth returns the canvas width in columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}
