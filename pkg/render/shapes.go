package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// rgb 从 0xRRGGBB 构造不透明颜色
func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// withAlpha 返回带透明度的颜色（非预乘）
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * float64(c.A))}
}

// drawOptions 以纯色绘制路径
func drawOptions(clr color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	return op
}

// fillPolygon 填充多边形
func fillPolygon(dst *ebiten.Image, xs, ys []float64, clr color.Color) {
	if len(xs) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(xs[0]), float32(ys[0]))
	for i := 1; i < len(xs); i++ {
		path.LineTo(float32(xs[i]), float32(ys[i]))
	}
	path.Close()
	vector.FillPath(dst, &path, nil, drawOptions(clr))
}

// fillEllipse 填充轴对齐椭圆，rx/ry 为半轴
// 单位圆经 GeoM 缩放平移得到椭圆
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	var unit vector.Path
	unit.Arc(0, 0, 1, 0, 2*math.Pi, vector.Clockwise)
	unit.Close()

	op := &vector.AddPathOptions{}
	op.GeoM.Scale(rx, ry)
	op.GeoM.Translate(cx, cy)
	var path vector.Path
	path.AddPath(&unit, op)
	vector.FillPath(dst, &path, nil, drawOptions(clr))
}

// fillCircle 填充圆
func fillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.FillCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

// strokeCircle 描边圆
func strokeCircle(dst *ebiten.Image, cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

// line 画线段
func line(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// fillRect 填充矩形
func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// strokeArc 描边圆弧（角度为弧度，dir 为绘制方向）
func strokeArc(dst *ebiten.Image, cx, cy, r, from, to, width float64, dir vector.Direction, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(cx+r*math.Cos(from)), float32(cy+r*math.Sin(from)))
	path.Arc(float32(cx), float32(cy), float32(r), float32(from), float32(to), dir)

	op := &vector.StrokeOptions{}
	op.Width = float32(width)
	op.LineCap = vector.LineCapRound
	op.LineJoin = vector.LineJoinRound
	vector.StrokePath(dst, &path, op, drawOptions(clr))
}

// rotate 以 (ox, oy) 为原点、angle 为朝向，把局部坐标 (lx, ly) 变换到屏幕坐标
func rotate(ox, oy, angle, lx, ly float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return ox + lx*cos - ly*sin, oy + lx*sin + ly*cos
}
