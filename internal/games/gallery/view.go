package gallery

import (
	"fmt"
	"math"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/rank"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/weapon"
)

// Visual characters for rendering
const (
	CrosshairChar = '+'
	TargetCore    = '●'
	TargetRing    = 'o'
	HitChar       = '*'
	MissChar      = 'x'
	BackstopChar  = '▒'
	FloorChar     = '.'
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// camera projects world points onto the screen. X is downrange, Y left, Z up.
type camera struct {
	eye    core.Vec3
	focal  float64 // Pixels per unit of tangent, horizontally
	cx, cy float64
}

func newCamera(eye core.Vec3, fovDeg float64, w, h int) camera {
	half := fovDeg / 2 * math.Pi / 180
	return camera{
		eye:   eye,
		focal: float64(w) / 2 / math.Tan(half),
		cx:    float64(w) / 2,
		cy:    float64(h) / 2,
	}
}

// project returns the screen position of p and its depth. ok is false for
// points at or behind the eye.
func (c camera) project(p core.Vec3) (x, y, depth float64, ok bool) {
	d := p.Sub(c.eye)
	if d.X <= 0.01 {
		return 0, 0, 0, false
	}
	return c.projectColumn(d.Y / d.X), c.projectRow(d.Z / d.X), d.X, true
}

func (c camera) projectColumn(u float64) float64 {
	return c.cx - u*c.focal
}

func (c camera) projectRow(v float64) float64 {
	return c.cy - v*c.focal/cellAspect
}

// aimPoint returns where the crosshair sits for a direction.
func (c camera) aimPoint(dir core.Vec3) (x, y float64, ok bool) {
	if dir.X <= 0.01 {
		return 0, 0, false
	}
	return c.projectColumn(dir.Y / dir.X), c.projectRow(dir.Z / dir.X), true
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Screen too small", core.ColorRed)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	// Row 0 is the HUD and the last row the key help; the range sits between.
	cam := newCamera(g.Eye(), g.cfg.Range.FOV, w, h)
	g.drawRange(dst, cam, w, h)
	g.drawTargets(dst, cam, h)
	g.drawMarkers(dst, cam, h)
	g.drawCrosshair(dst, cam, h)
	g.drawHUD(dst, w)
	dst.DrawTextColor(0, h-1, "←↑↓→ aim  SPACE fire  X release  ENTER start  P pause  Q quit", core.ColorGray)

	switch {
	case g.round.State() == round.AllRoundsComplete:
		g.drawSummary(dst, w, h)
	case g.paused:
		drawBanner(dst, w, h, []string{"PAUSED", "", "Press P to resume"}, core.ColorYellow)
	case g.hud.startShown:
		drawBanner(dst, w, h, []string{
			fmt.Sprintf("ROUND %d OF %d", g.round.CurrentRound(), g.round.MaxRounds()),
			"",
			fmt.Sprintf("%s  %.0fs", g.Weapon(), g.cfg.Rounds.Duration),
			"Press ENTER to start",
		}, core.ColorBrightCyan)
	}
}

func (g *Game) drawRange(dst *core.Screen, cam camera, w, h int) {
	bx := g.cfg.Range.BackstopX
	top := int(math.Round(cam.projectRow((10 - cam.eye.Z) / bx)))
	base := int(math.Round(cam.projectRow((0 - cam.eye.Z) / bx)))

	for y := max(1, top); y <= min(h-2, base); y++ {
		dst.DrawHLine(0, y, w, BackstopChar, core.ColorGray)
	}
	for y := max(1, base+1); y <= h-2; y++ {
		for x := (y % 2); x < w; x += 4 {
			dst.SetColor(x, y, FloorChar, core.ColorGreen)
		}
	}
}

func (g *Game) drawTargets(dst *core.Screen, cam camera, h int) {
	for _, t := range g.field.Targets() {
		sx, sy, depth, ok := cam.project(t.Pos)
		if !ok {
			continue
		}
		rx := t.Radius / depth * cam.focal
		ry := rx / cellAspect

		x0, x1 := int(math.Floor(sx-rx)), int(math.Ceil(sx+rx))
		y0, y1 := int(math.Floor(sy-ry)), int(math.Ceil(sy+ry))
		drawn := false
		for y := max(1, y0); y <= min(h-2, y1); y++ {
			for x := x0; x <= x1; x++ {
				nx := (float64(x) + 0.5 - sx) / math.Max(rx, 0.5)
				ny := (float64(y) + 0.5 - sy) / math.Max(ry, 0.5)
				d := nx*nx + ny*ny
				if d > 1 {
					continue
				}
				if d < 0.3 {
					dst.SetColor(x, y, TargetCore, core.ColorBrightRed)
				} else {
					dst.SetColor(x, y, TargetRing, core.ColorBrightWhite)
				}
				drawn = true
			}
		}
		if !drawn {
			px, py := int(sx), int(sy)
			if py >= 1 && py <= h-2 {
				dst.SetColor(px, py, TargetCore, core.ColorBrightRed)
			}
		}
	}
}

func (g *Game) drawMarkers(dst *core.Screen, cam camera, h int) {
	for _, m := range g.markers {
		sx, sy, _, ok := cam.project(m.point)
		if !ok {
			continue
		}
		x, y := int(sx), int(sy)
		if y < 1 || y > h-2 {
			continue
		}
		if m.hit {
			dst.SetColor(x, y, HitChar, core.ColorBrightYellow)
		} else {
			dst.SetColor(x, y, MissChar, core.ColorOrange)
		}
	}
}

func (g *Game) drawCrosshair(dst *core.Screen, cam camera, h int) {
	sx, sy, ok := cam.aimPoint(g.AimDirection())
	if !ok {
		return
	}
	x, y := int(sx), int(sy)
	if y < 1 || y > h-2 {
		return
	}
	color := core.ColorBrightGreen
	if g.weapon.State() == weapon.Cooldown {
		color = core.ColorYellow
	}
	dst.SetColor(x, y, CrosshairChar, color)
	dst.SetColor(x-2, y, '-', color)
	dst.SetColor(x+2, y, '-', color)
}

func (g *Game) drawHUD(dst *core.Screen, w int) {
	st := g.round.Stats()
	left := fmt.Sprintf(" Round %d/%d  Time %4.1f  Score %d  Acc %.0f%%",
		g.round.CurrentRound(), g.round.MaxRounds(), g.hud.timer, g.hud.scores[playerTeam], st.Accuracy())
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	ready := "ready"
	switch {
	case !g.hud.weaponDrawn:
		ready = "holstered"
	case g.weapon.State() == weapon.Cooldown:
		ready = "cooldown"
	case !g.weapon.Config().FullAuto && !g.hud.refireReady:
		ready = "cooldown"
	}
	right := fmt.Sprintf("%s %d/%d [%s] ", g.Weapon(), g.hud.bullets, g.hud.magazine, ready)
	dst.DrawTextColor(w-len([]rune(right)), 0, right, core.ColorCyan)
}

func (g *Game) drawSummary(dst *core.Screen, w, h int) {
	sum, ok := g.SessionSummary()
	if !ok {
		return
	}
	reaction := "n/a"
	if sum.HasReaction {
		reaction = fmt.Sprintf("%.2fs", sum.AvgReaction)
	}
	lines := []string{
		"SESSION COMPLETE",
		"",
		fmt.Sprintf("Hits %d  Misses %d  Shots %d", sum.Hits, sum.Misses, sum.ShotsFired),
		fmt.Sprintf("Accuracy %.1f%%", sum.Accuracy),
		fmt.Sprintf("Avg reaction %s", reaction),
		fmt.Sprintf("Rank %s", rank.Label(g.rank)),
		"",
		"Press R to play again",
	}
	drawBanner(dst, w, h, lines, core.ColorBrightYellow)
}

func drawBanner(dst *core.Screen, w, h int, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	bw, bh := width+4, len(lines)+2
	box := core.CenteredRect(w, h, bw, bh)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
