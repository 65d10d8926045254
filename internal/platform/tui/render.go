package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tumble/internal/core"
)

// ScreenRenderer turns a Screen into styled text. Styles are cached per
// foreground/background pair; a renderer is not safe for concurrent use.
type ScreenRenderer struct {
	re     *lipgloss.Renderer
	styles map[[2]core.Color]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil re uses the default
// lipgloss renderer for stdout.
func NewScreenRenderer(re *lipgloss.Renderer) *ScreenRenderer {
	if re == nil {
		re = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		re:     re,
		styles: make(map[[2]core.Color]lipgloss.Style),
	}
}

func (r *ScreenRenderer) style(fg, bg core.Color) lipgloss.Style {
	k := [2]core.Color{fg, bg}
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := r.re.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	r.styles[k] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	bg := s.Background()
	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(color, bg).Render(run.String()))
		}
	}
	return sb.String()
}
