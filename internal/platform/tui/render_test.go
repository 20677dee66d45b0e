package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shooting-grounds/internal/core"
)

func TestPaletteRenderKeepsText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, '+', core.ColorBrightRed)
	s.DrawTextColor(0, 1, "xyz", core.ColorGray)

	// A renderer on a non-terminal writer emits no escape codes.
	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	got := p.Render(s)

	want := "ab+  \nxyz  "
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestZeroPaletteIsPlain(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColor(1, 0, 'o', core.ColorGreen)

	if got := (Palette{}).Render(s); got != " o " {
		t.Errorf("Render() = %q, want %q", got, " o ")
	}
}
