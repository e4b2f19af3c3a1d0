package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrevlas/starwalk/internal/config"
	"github.com/andrevlas/starwalk/internal/core"
	"github.com/andrevlas/starwalk/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// spinFrames are the star glyphs cycled by the spin angle, one frame
// per quarter turn.
var spinFrames = []rune{'✦', '✧', '+', '✧'}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawFrame renders one simulation snapshot into the screen buffer.
func drawFrame(dst *core.Screen, snap sim.Snapshot, display config.DisplayConfig, hud *hudPanel) {
	dst.Clear()

	drawHUD(dst, hud)
	drawWalkway(dst, snap.Walkway, display)
	drawTrail(dst, snap.Trail, display)
	drawStars(dst, snap.Stars, display)

	// Companion first so the walker stays on top when they overlap.
	fx, fy := worldToCell(snap.Follower.Pos, display)
	dst.SetCell(fx, fy, '●', core.ColorBrightCyan)

	lx, ly := worldToCell(snap.Leader.Pos, display)
	dst.SetCell(lx, ly, facingGlyph(snap.Leader.Facing), core.ColorBrightMagenta)
}

// worldToCell maps a world position to a screen cell below the HUD.
func worldToCell(p core.Vec2, display config.DisplayConfig) (int, int) {
	return int(p.X / display.CellWidth), hudRows + int(p.Y/display.CellHeight)
}

// drawHUD renders the metrics line and separator. The values come from
// the throttled publication panel, not the live frame, so the numbers
// update at a readable cadence.
func drawHUD(dst *core.Screen, hud *hudPanel) {
	pace := "—"
	line := " Starwalk — time 0.0s  stars 0  pace —  gap —"
	if hud.valid {
		m := hud.metrics
		if p, ok := m.Pace(); ok {
			pace = fmt.Sprintf("%.1fs/★", p)
		}
		line = fmt.Sprintf(" Starwalk — time %.1fs  stars %d  pace %s  gap %.0f",
			m.Elapsed, m.Collected, pace, m.Distance)
	}

	dst.DrawText(0, 0, line, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// drawWalkway renders the clamp rectangle as a border one cell outside
// the reachable interior.
func drawWalkway(dst *core.Screen, walk core.Rect, display config.DisplayConfig) {
	x0, y0 := worldToCell(core.Vec2{X: walk.MinX, Y: walk.MinY}, display)
	x1, y1 := worldToCell(core.Vec2{X: walk.MaxX, Y: walk.MaxY}, display)
	dst.DrawBorder(x0-1, y0-1, x1-x0+3, y1-y0+3, core.ColorGray)
}

func drawTrail(dst *core.Screen, trail []core.Vec2, display config.DisplayConfig) {
	for _, p := range trail {
		x, y := worldToCell(p, display)
		// Breadcrumbs never overdraw the walkway border.
		if dst.Get(x, y) == ' ' {
			dst.SetCell(x, y, '·', core.ColorGray)
		}
	}
}

func drawStars(dst *core.Screen, stars []sim.Collectible, display config.DisplayConfig) {
	for _, star := range stars {
		if star.Taken {
			continue
		}
		x, y := worldToCell(star.Pos, display)
		frame := int(star.Spin/(math.Pi/2)) % len(spinFrames)
		if frame < 0 {
			frame = 0
		}
		dst.SetCell(x, y, spinFrames[frame], core.ColorBrightYellow)
	}
}

// facingGlyph picks a direction glyph from the dominant facing axis.
func facingGlyph(facing core.Vec2) rune {
	if facing == (core.Vec2{}) {
		return '▶'
	}
	if math.Abs(facing.X) >= math.Abs(facing.Y) {
		if facing.X >= 0 {
			return '▶'
		}
		return '◀'
	}
	if facing.Y < 0 {
		return '▲'
	}
	return '▼'
}
