package animlist

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// RowPresenter turns a rendered row and a progress value into what is drawn.
// Progress 1 is a row at rest; lower values fade the row towards the
// background and, with a fixed item height, collapse it line by line.
type RowPresenter struct {
	// ItemHeight fixes every row to this many lines and animates the line
	// count. Zero keeps intrinsic heights and animates opacity only.
	ItemHeight int
	// Width truncates lines when positive.
	Width int

	Foreground colorful.Color
	Background colorful.Color
}

// Present renders row at the given progress. It returns false when the row
// has collapsed to zero lines and should be skipped entirely.
func (p RowPresenter) Present(row string, progress float64) (string, bool) {
	progress = clamp01(progress)

	lines := strings.Split(row, "\n")
	if p.ItemHeight > 0 {
		lines = fitLines(lines, p.ItemHeight)
		visible := int(math.Round(Interpolate(progress, 0, float64(p.ItemHeight))))
		lines = lines[:visible]
	}
	if len(lines) == 0 {
		return "", false
	}

	if p.Width > 0 {
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, p.Width, "…")
		}
	}

	if progress < 1 {
		faded := lipgloss.NewStyle().Foreground(lipgloss.Color(p.blend(progress)))
		for i, l := range lines {
			lines[i] = faded.Render(ansi.Strip(l))
		}
	}
	return strings.Join(lines, "\n"), true
}

// blend returns the hex color at progress between background and foreground.
func (p RowPresenter) blend(progress float64) string {
	return p.Background.BlendLab(p.Foreground, progress).Clamped().Hex()
}

// Interpolate maps progress in [0,1] linearly onto [from,to].
func Interpolate(progress, from, to float64) float64 {
	return from + (to-from)*clamp01(progress)
}

func fitLines(lines []string, n int) []string {
	if len(lines) >= n {
		return lines[:n]
	}
	out := make([]string, n)
	copy(out, lines)
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
