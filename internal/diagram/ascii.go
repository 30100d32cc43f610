package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/foundationlab/gofla/internal/layout"
)

// Character grid proportions for the plan view. Terminal cells are roughly
// twice as tall as wide, so the grid uses twice as many columns as rows.
const (
	planRows = 31
	planCols = 62
)

// DrawPlanView renders the foundation cross-section as ASCII art: the wall
// ring shaded, component centers marked with T/G/A, the center with +.
func DrawPlanView(l layout.Layout) string {
	outer := l.Foundation.OuterRadius()
	inner := l.Foundation.InnerRadius()
	if outer <= 0 {
		return "  (foundation diameter is zero - nothing to draw)\n"
	}

	// World extent includes a small margin around the outer shell
	extent := outer * 1.08

	grid := make([][]rune, planRows)
	for i := range grid {
		grid[i] = make([]rune, planCols)
		for j := range grid[i] {
			x := extent * (2*(float64(j)+0.5)/planCols - 1)
			y := extent * (1 - 2*(float64(i)+0.5)/planRows)
			d := math.Hypot(x, y)

			switch {
			case d <= outer && d >= math.Max(inner, 0):
				grid[i][j] = '░'
			default:
				grid[i][j] = ' '
			}
		}
	}

	mark := func(x, y float64, r rune) {
		j := int((x/extent + 1) / 2 * planCols)
		i := int((1 - y/extent) / 2 * planRows)
		if i >= 0 && i < planRows && j >= 0 && j < planCols {
			grid[i][j] = r
		}
	}

	mark(0, 0, '+')
	for _, t := range l.Tendons {
		mark(t.X, t.Y, 'T')
	}
	for _, g := range l.GroutConnections {
		mark(g.X, g.Y, 'G')
	}
	for _, a := range l.AccessShafts {
		mark(a.X, a.Y, 'A')
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  FOUNDATION CROSS-SECTION (PLAN VIEW)\n")
	sb.WriteString("  ────────────────────────────────────\n")
	for _, row := range grid {
		sb.WriteString("  ")
		sb.WriteString(string(row))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Foundation wall\n")
	sb.WriteString("  T/G/A = Tendon / Grout connection / Access shaft\n")
	sb.WriteString(fmt.Sprintf("  Outer radius %.2f m, inner bore radius %.2f m\n", outer, inner))

	return sb.String()
}

// DrawSummaryBox creates a bordered summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
