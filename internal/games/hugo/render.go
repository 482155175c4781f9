package hugo

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hugo/internal/core"
)

// Glyph tables, indexed by animation frame.
var (
	climbGlyphs = []string{"\\o/", "|o/", "|o|", "\\o|", "\\o/", "/o\\", "|o|"}
	jumpLeft    = []string{"<o ", "<o-", "<o~", " o/"}
	jumpRight   = []string{" o>", "-o>", "~o>", "\\o "}
	batGlyphs   = []string{"\\v/", "-v-", "/v\\"}
	enemyGlyphs = []string{"[@]", "[O]"}
	coinGlyphs  = []rune{'o', 'O', '0', 'O'}
)

const (
	ropeChar      = '│'
	ropeAltChar   = '┆'
	starChar      = '·'
	projectileChr = '●'
)

// viewport maps world units to screen cells. Row 0 holds the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := max(dst.Height()-1, 1)
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(rows) / worldH,
		top: 1,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(x * v.sx), v.top + int(y*v.sy)
}

// drawCentered writes glyph centered on the world point (x, y).
func (v viewport) drawCentered(dst *core.Screen, x, y float64, glyph string, c core.Color) {
	cx, cy := v.cell(x, y)
	if cy < v.top {
		return
	}
	dst.DrawTextColor(cx-len([]rune(glyph))/2, cy, glyph, c)
}

// Render draws the world, HUD and phase overlays into dst.
func (w *World) Render(dst *core.Screen, paused bool) {
	dst.Clear()
	v := newViewport(dst, w.cfg.World.Width, w.cfg.World.Height)

	w.drawBackground(dst, v)
	w.drawLanes(dst, v)

	for _, c := range w.collectibles {
		cx, cy := c.Rect().Center()
		switch c.Kind {
		case Coin:
			glyph := string(coinGlyphs[c.Frame()%len(coinGlyphs)])
			v.drawCentered(dst, cx, cy, glyph, core.ColorBrightYellow)
		case PowerUpInvincibility:
			v.drawCentered(dst, cx, cy, "(S)", core.ColorCyan)
		case PowerUpDoublePoints:
			v.drawCentered(dst, cx, cy, "x2", core.ColorGreen)
		}
	}

	for _, o := range w.obstacles {
		cx, cy := o.Rect().Center()
		color := core.ColorMagenta
		if o.Variant%2 == 1 {
			color = core.ColorBrightMagenta
		}
		v.drawCentered(dst, cx, cy, batGlyphs[o.Frame()%len(batGlyphs)], color)
	}

	for _, e := range w.enemies.Enemies() {
		cx, cy := e.Rect().Center()
		glyph := enemyGlyphs[e.Frame()%len(enemyGlyphs)]
		if e.Facing > 0 {
			glyph += ">"
		} else {
			glyph = "<" + glyph
		}
		v.drawCentered(dst, cx, cy, glyph, core.ColorRed)
	}

	for _, p := range w.enemies.Projectiles() {
		x, y := v.cell(p.X, p.Y)
		if y >= v.top {
			dst.SetColor(x, y, projectileChr, core.ColorOrange)
		}
	}

	w.drawPlayer(dst, v)
	w.drawHUD(dst)

	switch {
	case w.run.Phase == PhaseMenu:
		drawMessage(dst, "H U G O", "Climb the ropes, dodge the bats", "SPACE to start  |  Q to quit")
	case w.run.Phase == PhaseGameOver:
		drawMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  %dm", w.Score(), w.Meters()),
			"SPACE/R to retry  |  ESC for menu")
	case paused:
		drawMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (w *World) drawBackground(dst *core.Screen, v viewport) {
	// Sparse stars drifting at half the scroll speed.
	shift := int(w.run.BackgroundOffset * v.sy)
	for y := v.top; y < dst.Height(); y++ {
		row := y - shift
		for x := (row*7)%11 + 11; x < dst.Width(); x += 23 {
			if x >= 0 {
				dst.SetColor(x, y, starChar, core.ColorGray)
			}
		}
	}
}

func (w *World) drawLanes(dst *core.Screen, v viewport) {
	period := max(w.cfg.World.LaneTextureHeight*v.sy, 1)
	offset := w.lanes.Offset() * v.sy
	for i := 0; i < w.lanes.Count(); i++ {
		x, _ := v.cell(w.lanes.Center(i), 0)
		for y := v.top; y < dst.Height(); y++ {
			r := ropeChar
			if int((float64(y)-offset)/period*2)%2 == 0 {
				r = ropeAltChar
			}
			dst.SetColor(x, y, r, core.ColorBrown)
		}
	}
}

func (w *World) drawPlayer(dst *core.Screen, v viewport) {
	p := w.player
	// Blink while invincible.
	if p.Invincible() && p.InvincibleTicks()%10 < 5 {
		return
	}

	kind, frame := p.Frame()
	glyph := climbGlyphs[frame%len(climbGlyphs)]
	if kind == KindPlayerJump {
		if p.Jumping() < 0 {
			glyph = jumpLeft[frame%len(jumpLeft)]
		} else {
			glyph = jumpRight[frame%len(jumpRight)]
		}
	}

	color := core.ColorWhite
	if p.Invincible() {
		color = core.ColorBrightYellow
	}
	cx, cy := p.Rect().Center()
	v.drawCentered(dst, cx, cy, glyph, color)
}

func (w *World) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  %dm ", w.Score(), w.Meters())
	dst.DrawTextColor(1, 0, hud, core.ColorWhite)

	var effects []string
	if w.run.DoublePointsActive() {
		effects = append(effects, "x2")
	}
	if w.player.Invincible() {
		effects = append(effects, "SHIELD")
	}
	right := fmt.Sprintf(" %s Spd: %.2f ", strings.Join(effects, " "), w.run.ScrollSpeed)
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorCyan)
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextColor(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l, core.ColorWhite)
	}
}
