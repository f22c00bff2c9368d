// Package render 用 ebiten 矢量绘图绘制游戏快照
//
// 渲染器只读取 game.Snapshot，不持有任何模拟状态；
// 同一个快照可以被绘制任意多次。
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/archery/pkg/game"
)

// 场景配色
var (
	colorSky        = rgb(0x87ceeb)
	colorCloud      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6}
	colorGround     = rgb(0x2d8a2d)
	colorHill       = rgb(0x256e25)
	colorPickup     = rgb(0x28a745)
	colorTargetEdge = rgb(0x333333)
	colorBullseye   = rgb(0xffdb4d)
	colorShaft      = rgb(0x8c6b3f)
	colorArrowTip   = rgb(0x444444)
	colorFletch     = rgb(0xeeeeee)
	colorBody       = rgb(0x3d2a14)
	colorHead       = rgb(0xe6bfa0)
	colorBow        = rgb(0x7a4b26)
	colorString     = rgb(0x333333)
	colorNocked     = rgb(0xbe8b4c)
	colorHUDPanel   = color.NRGBA{A: 0x8c}
	colorButton     = rgb(0x3b5b7a)
	colorButtonOff  = rgb(0x555555)
	colorOverlay    = color.NRGBA{A: 0xa0}
	colorText       = color.White
	colorTextDark   = color.Black
)

// ringColors 靶环颜色（外 → 内）
var ringColors = []color.RGBA{rgb(0xffffff), rgb(0x000000), rgb(0x2850c8), rgb(0xcc3333)}

// Renderer 快照渲染器
type Renderer struct {
	face *text.GoXFace

	// Touch 为 true 时提示文字使用触摸措辞
	Touch bool
}

// NewRenderer 创建渲染器
func NewRenderer() *Renderer {
	return &Renderer{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制整帧：背景 → 补给 → 靶 → 插靶的箭 → 弓手 → 飞行的箭 → 粒子 → 飘字 → HUD → 提示层
func (r *Renderer) Draw(screen *ebiten.Image, s *game.Snapshot) {
	r.drawBackground(screen, s)
	r.drawPickups(screen, s)
	r.drawTarget(screen, s)

	for _, a := range s.Arrows {
		if a.Stuck {
			r.drawArrow(screen, s, a)
		}
	}
	r.drawArcher(screen, s)
	for _, a := range s.Arrows {
		if !a.Stuck {
			r.drawArrow(screen, s, a)
		}
	}

	for _, p := range s.Particles {
		fillCircle(screen, p.X, p.Y, p.Size, withAlpha(p.Color, p.Alpha))
	}
	for _, p := range s.Popups {
		r.drawText(screen, p.Text, p.X+8, p.Y-8-13, withAlpha(rgb(0xffffff), p.Alpha))
	}

	r.drawHUD(screen, s)
	r.drawOverlay(screen, s)
}

func (r *Renderer) drawBackground(screen *ebiten.Image, s *game.Snapshot) {
	l := &s.Layout
	w, h := l.Width, l.Height

	screen.Fill(colorSky)

	fillEllipse(screen, w*0.12, h*0.08, w*0.12, h*0.06, colorCloud)
	fillEllipse(screen, w*0.74, h*0.06, w*0.14, h*0.06, colorCloud)

	fillRect(screen, 0, l.GroundY, w, h-l.GroundY, colorGround)
	fillEllipse(screen, w*0.15, l.GroundY-h*0.15, w*0.5, h*0.18, colorHill)
	fillEllipse(screen, w*0.6, l.GroundY-h*0.18, w*0.5, h*0.2, colorHill)
}

func (r *Renderer) drawPickups(screen *ebiten.Image, s *game.Snapshot) {
	size := math.Max(16, s.Layout.Width*0.03)
	for _, p := range s.Pickups {
		y := p.Y + math.Sin(p.Bob*3)*3
		fillCircle(screen, p.X, y, size/2, colorPickup)
		r.drawCenteredText(screen, "+A", p.X, y-6, colorTextDark)
	}
}

func (r *Renderer) drawTarget(screen *ebiten.Image, s *game.Snapshot) {
	t := s.Target
	if t.Radius <= 0 {
		return
	}
	y := t.Y + math.Sin(t.Wobble*0.07)

	for i, ring := range t.Rings {
		fillCircle(screen, t.X, y, ring, ringColors[i%len(ringColors)])
	}
	center := math.Max(6, math.Floor(t.Radius*0.12))
	fillCircle(screen, t.X, y, center, colorBullseye)
	strokeCircle(screen, t.X, y, t.Radius, math.Max(1, s.Layout.Width*0.002), colorTargetEdge)
}

// drawArrow 以箭杆中点为原点绘制箭矢：箭杆、三角箭头、两片尾羽
func (r *Renderer) drawArrow(screen *ebiten.Image, s *game.Snapshot, a game.ArrowView) {
	half := s.Layout.ArrowLength / 2
	width := math.Max(2, s.Layout.Width*0.003)

	x0, y0 := rotate(a.X, a.Y, a.Angle, -half, 0)
	x1, y1 := rotate(a.X, a.Y, a.Angle, half-8, 0)
	line(screen, x0, y0, x1, y1, width, colorShaft)

	tx, ty := rotate(a.X, a.Y, a.Angle, half, 0)
	lx, ly := rotate(a.X, a.Y, a.Angle, half-12, -8)
	rx, ry := rotate(a.X, a.Y, a.Angle, half-12, 8)
	fillPolygon(screen, []float64{tx, lx, rx}, []float64{ty, ly, ry}, colorArrowTip)

	for _, off := range []float64{-6, 2} {
		xs := make([]float64, 4)
		ys := make([]float64, 4)
		corners := [][2]float64{{-half - 8, off}, {-half, off}, {-half, off + 4}, {-half - 8, off + 4}}
		for i, c := range corners {
			xs[i], ys[i] = rotate(a.X, a.Y, a.Angle, c[0], c[1])
		}
		fillPolygon(screen, xs, ys, colorFletch)
	}
}

// drawArcher 火柴人弓手；蓄力时弓弦随蓄力比例后拉
func (r *Renderer) drawArcher(screen *ebiten.Image, s *game.Snapshot) {
	l := &s.Layout
	minDim := l.MinDimension()
	headR := math.Floor(minDim * 0.03)
	bodyLen := math.Floor(minDim * 0.12)
	cx := l.ArcherX
	cy := l.ArcherY - math.Floor(bodyLen/2)
	width := math.Max(2, l.Width*0.003)

	line(screen, cx, cy+bodyLen/2, cx-l.Width*0.03, cy+bodyLen, width, colorBody)
	line(screen, cx, cy+bodyLen/2, cx+l.Width*0.03, cy+bodyLen, width, colorBody)
	line(screen, cx, cy-headR/2, cx, cy+bodyLen/2, width, colorBody)
	fillCircle(screen, cx, cy-bodyLen/2-headR, headR, colorHead)

	sx, sy := cx, cy-bodyLen/4
	aim := s.Aim
	bowLen := math.Floor(minDim * 0.14)

	strokeArc(screen, sx, sy, bowLen, aim+math.Pi/2, aim-math.Pi/2, math.Max(3, l.Width*0.006), vector.CounterClockwise, colorBow)

	pull := 0.0
	if s.Charging {
		pull = 6 + 36*s.ChargeFraction
	}
	topX, topY := rotate(sx, sy, aim, 0, -bowLen/2)
	nockX, nockY := rotate(sx, sy, aim, -pull, 0)
	botX, botY := rotate(sx, sy, aim, 0, bowLen/2)
	line(screen, topX, topY, nockX, nockY, 2, colorString)
	line(screen, nockX, nockY, botX, botY, 2, colorString)

	if s.Charging {
		ex, ey := rotate(sx, sy, aim, -pull-l.ArrowLength, 0)
		line(screen, nockX, nockY, ex, ey, 4, colorNocked)
	} else if s.ArrowsLeft > 0 {
		bx, by := rotate(sx, sy, aim, 10, 0)
		ex, ey := rotate(sx, sy, aim, 10+l.ArrowLength, 0)
		line(screen, bx, by, ex, ey, 4, colorNocked)
	}

	armWidth := math.Max(2, l.Width*0.004)
	reach := 40.0
	if s.Charging {
		reach += pull
	}
	hx, hy := rotate(sx, sy, aim, -reach, 0)
	line(screen, sx, sy, hx, hy, armWidth, colorBody)
	bhx, bhy := rotate(sx, sy, aim, 0, 10)
	line(screen, sx, sy, bhx, bhy, armWidth, colorBody)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s *game.Snapshot) {
	px, py, pw := HUDPanel(&s.Layout)
	buttons := HUDButtons(s)
	panelH := hudStatLines*hudLineHeight + hudPadding
	if n := len(buttons); n > 0 {
		last := buttons[n-1]
		panelH = last.Y + last.H - py
	}
	fillRect(screen, px-8, py-8, pw+16, panelH+16, colorHUDPanel)

	for i, ln := range s.HUDLines() {
		r.drawText(screen, ln, px, py+float64(i)*hudLineHeight, colorText)
	}

	for _, b := range buttons {
		bg := colorButton
		if !b.Enabled {
			bg = colorButtonOff
		}
		fillRect(screen, b.X, b.Y, b.W, b.H, bg)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, colorText, false)
		r.drawCenteredText(screen, b.Label, b.X+b.W/2, b.Y+(b.H-13)/2, colorText)
	}
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, s *game.Snapshot) {
	lines := s.OverlayLines(r.Touch)
	if len(lines) == 0 {
		return
	}
	playW := s.Layout.HUDLeft
	boxH := float64(len(lines))*hudLineHeight + 2*hudPadding
	boxY := s.Layout.Height*0.35 - boxH/2
	fillRect(screen, playW*0.1, boxY, playW*0.8, boxH, colorOverlay)
	for i, ln := range lines {
		r.drawCenteredText(screen, ln, playW/2, boxY+hudPadding+float64(i)*hudLineHeight, colorText)
	}
}

// drawText 以左上角为基准绘制文字
func (r *Renderer) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, r.face, opts)
}

// drawCenteredText 以顶边中点为基准绘制文字
func (r *Renderer) drawCenteredText(screen *ebiten.Image, str string, cx, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(cx, y)
	opts.ColorScale.ScaleWithColor(clr)
	opts.PrimaryAlign = text.AlignCenter
	text.Draw(screen, str, r.face, opts)
}
