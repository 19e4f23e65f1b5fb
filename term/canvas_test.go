package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/rast"
)

func TestCanvas_PresentFrameLayout(t *testing.T) {
	pm := rast.NewPixmap(4, 4)
	pm.Clear(rast.RGB(10, 20, 30))

	var buf bytes.Buffer
	c := NewCanvas(&buf)
	if err := c.Present(pm); err != nil {
		t.Fatalf("Present: %v", err)
	}
	out := buf.String()

	// 4x4 pixels pair into 2 cell rows of 4 half blocks each.
	if got := strings.Count(out, halfBlock); got != 8 {
		t.Errorf("frame has %d half blocks, want 8", got)
	}
	if got := strings.Count(out, "\r\n"); got != 1 {
		t.Errorf("frame has %d row breaks, want 1", got)
	}
	if !strings.Contains(out, "10;20;30") {
		t.Errorf("frame missing the 24-bit color parameters: %q", out)
	}
}

func TestCanvas_PresentEmitsColorOnlyOnChange(t *testing.T) {
	pm := rast.NewPixmap(6, 2)
	pm.Clear(rast.RGB(1, 1, 1))
	pm.SetPixel(4, 0, rast.RGB(200, 0, 0))
	pm.SetPixel(4, 1, rast.RGB(0, 200, 0))

	var buf bytes.Buffer
	c := NewCanvas(&buf)
	if err := c.Present(pm); err != nil {
		t.Fatalf("Present: %v", err)
	}
	out := buf.String()

	// Runs of identical cells share one escape: flat start, the odd cell,
	// then back to flat. Three color escapes for six cells.
	if got := strings.Count(out, "38;2;"); got != 3 {
		t.Errorf("frame emits %d foreground escapes, want 3: %q", got, out)
	}
	if !strings.Contains(out, "38;2;200;0;0") {
		t.Errorf("upper pixel color missing: %q", out)
	}
	if !strings.Contains(out, "48;2;0;200;0") {
		t.Errorf("lower pixel color missing: %q", out)
	}
}

func TestCanvas_PresentOddHeight(t *testing.T) {
	pm := rast.NewPixmap(2, 3)
	pm.Clear(rast.RGB(50, 50, 50))

	var buf bytes.Buffer
	c := NewCanvas(&buf)
	if err := c.Present(pm); err != nil {
		t.Fatalf("Present: %v", err)
	}

	// Three pixel rows pair into two cell rows; the dangling lower half is
	// black.
	out := buf.String()
	if got := strings.Count(out, halfBlock); got != 4 {
		t.Errorf("frame has %d half blocks, want 4", got)
	}
	if !strings.Contains(out, "48;2;0;0;0") {
		t.Errorf("dangling row should have a black lower half: %q", out)
	}
}

func TestCanvas_UnattachedBehaviors(t *testing.T) {
	c := NewCanvas(&bytes.Buffer{})

	if _, _, err := c.Size(); err == nil {
		t.Error("Size on an unattached canvas should error")
	}
	if _, ok := c.PollKey(); ok {
		t.Error("PollKey on an unattached canvas returned input")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on an unattached canvas: %v", err)
	}
}

func TestCanvas_PresentDropsAlpha(t *testing.T) {
	pm := rast.NewPixmap(1, 2)
	pm.SetPixel(0, 0, rast.RGBA(0x11, 0x22, 0x33, 0x80))
	pm.SetPixel(0, 1, rast.RGBA(0x11, 0x22, 0x33, 0x80))

	var buf bytes.Buffer
	if err := NewCanvas(&buf).Present(pm); err != nil {
		t.Fatalf("Present: %v", err)
	}
	// Only the RGB channels reach the terminal; there is nothing to blend.
	if !strings.Contains(buf.String(), "38;2;17;34;51") {
		t.Errorf("frame = %q", buf.String())
	}
}
