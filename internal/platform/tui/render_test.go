package tui

import (
	"strings"
	"testing"

	"github.com/andrevlas/starwalk/internal/config"
	"github.com/andrevlas/starwalk/internal/core"
	"github.com/andrevlas/starwalk/internal/sim"
)

func TestFacingGlyph(t *testing.T) {
	tests := []struct {
		name     string
		facing   core.Vec2
		expected rune
	}{
		{"right", core.Vec2{X: 1}, '▶'},
		{"left", core.Vec2{X: -1}, '◀'},
		{"up", core.Vec2{Y: -1}, '▲'},
		{"down", core.Vec2{Y: 1}, '▼'},
		{"diagonal favors x", core.Vec2{X: -1, Y: 0.5}, '◀'},
		{"zero defaults right", core.Vec2{}, '▶'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := facingGlyph(tc.facing); got != tc.expected {
				t.Errorf("facingGlyph(%+v) = %q, expected %q", tc.facing, got, tc.expected)
			}
		})
	}
}

func TestWorldToCell(t *testing.T) {
	display := config.Default().Display // 10 units per column, 20 per row

	x, y := worldToCell(core.Vec2{X: 105, Y: 60}, display)
	if x != 10 {
		t.Errorf("cell x = %d, expected 10", x)
	}
	if y != hudRows+3 {
		t.Errorf("cell y = %d, expected %d", y, hudRows+3)
	}
}

func TestDrawFrameShowsWalkerAndStars(t *testing.T) {
	cfg := config.Default()
	s := sim.New(core.Bounds{W: 800, H: 420}, cfg.Tuning(), 1)

	screen := core.NewScreen(80, 23)
	drawFrame(screen, s.Snapshot(), cfg.Display, &hudPanel{})

	out := screen.String()
	if !strings.ContainsRune(out, '▶') {
		t.Error("walker glyph missing from frame")
	}
	if !strings.ContainsRune(out, '●') {
		t.Error("companion glyph missing from frame")
	}
	if !strings.ContainsRune(out, '✦') && !strings.ContainsRune(out, '✧') && !strings.ContainsRune(out, '+') {
		t.Error("no star glyphs in frame")
	}
}

func TestHUDPaceSentinel(t *testing.T) {
	screen := core.NewScreen(80, 23)

	// Published metrics with no pickups yet must show the undefined
	// sentinel rather than a zero pace.
	hud := &hudPanel{valid: true, metrics: sim.Metrics{Elapsed: 12.5, Collected: 0, Distance: 40}}
	drawHUD(screen, hud)

	row := screen.Row(0)
	if !strings.Contains(row, "pace —") {
		t.Errorf("HUD row %q should show the pace sentinel", row)
	}
	if !strings.Contains(row, "time 12.5s") {
		t.Errorf("HUD row %q should show elapsed time", row)
	}

	hud.metrics.Collected = 5
	drawHUD(screen, hud)
	if !strings.Contains(screen.Row(0), "2.5s/★") {
		t.Errorf("HUD row %q should show the computed pace", screen.Row(0))
	}
}

func TestRenderScreenPlainContent(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "abcde", core.ColorDefault)
	s.DrawText(0, 1, "fg", core.ColorBrightYellow)

	out := RenderScreen(s)
	for _, want := range []string{"abcde", "fg"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("rendered output has %d lines, expected 2", len(lines))
	}
}
