package draw

import (
	"strings"
	"testing"
)

func litPixels(c *Canvas) int {
	n := 0
	for _, p := range c.pixels {
		if p.on {
			n++
		}
	}
	return n
}

func TestFillRectScalesToPixels(t *testing.T) {
	// 10 columns x 5 rows -> 10 x 10 sub-pixels for a 100 x 100 field.
	c := NewScaledCanvas(10, 5, 100, 100)
	red := Color{R: 255}

	c.FillRect(0, 0, 20, 20, red)
	if got := litPixels(c); got != 4 {
		t.Fatalf("lit pixels = %d, want 4", got)
	}
	if p := c.pixels[0]; !p.on || p.color != red {
		t.Errorf("pixel (0,0) = %+v, want red", p)
	}
}

func TestFillRectThinAndClipped(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)

	c.FillRect(50, 50, 0.5, 0.5, White)
	if got := litPixels(c); got != 1 {
		t.Errorf("thin rect lit %d pixels, want 1", got)
	}

	c.Clear()
	c.FillRect(-50, -50, 60, 60, White)
	if got := litPixels(c); got != 1 {
		t.Errorf("clipped rect lit %d pixels, want 1", got)
	}

	c.Clear()
	c.FillRect(200, 200, 10, 10, White)
	if got := litPixels(c); got != 0 {
		t.Errorf("off-canvas rect lit %d pixels, want 0", got)
	}
}

func TestRenderEmitsColoredBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	blue := Color{B: 255}
	green := Color{G: 255}

	c.FillRect(0, 0, 1, 2, blue)  // full cell at (1,1)
	c.FillRect(1, 0, 1, 1, blue)  // upper half at (2,1)
	c.FillRect(1, 1, 1, 1, green) // lower half of (2,1) in another color
	c.FillRect(2, 3, 1, 1, green) // lower half at (3,2)

	var out strings.Builder
	c.Render(&out)

	const (
		fgBlue  = "\033[38;2;0;0;255m"
		fgGreen = "\033[38;2;0;255;0m"
		bgGreen = "\033[48;2;0;255;0m"
		reset   = "\033[0m"
	)
	want := "\033[1;1H" + fgBlue + "█" + reset + fgBlue + bgGreen + "▀" + reset + "  " +
		"\033[2;1H" + "  " + fgGreen + "▄" + reset + " "
	if got := out.String(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderAppliesOffset(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.SetOffset(5, 3)
	var out strings.Builder
	c.Render(&out)
	if got := out.String(); got != "\033[4;6H  " {
		t.Errorf("Render() = %q", got)
	}
}

func TestRenderBorderOnlyWhenOffset(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var out strings.Builder
	c.RenderBorder(&out)
	if out.Len() != 0 {
		t.Errorf("border drawn without offset: %q", out.String())
	}

	c.SetOffset(2, 1)
	c.RenderBorder(&out)
	if !strings.Contains(out.String(), "┌────┐") {
		t.Errorf("missing top border in %q", out.String())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{R: 255}, false},
		{"#00f", Color{B: 255}, false},
		{"#1e50ff", Color{R: 0x1e, G: 0x50, B: 0xff}, false},
		{"blue", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if got := (Color{R: 0x1e, G: 0x50, B: 0xff}).Hex(); got != "#1e50ff" {
		t.Errorf("Hex() = %q", got)
	}
}

func TestChunkWriterOffsets(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "hi")
	if out.Len() != 0 {
		t.Fatalf("wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := out.String(); got != "\033[3;4Hhi" {
		t.Errorf("output = %q", got)
	}
}
