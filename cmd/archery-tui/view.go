package main

import (
	"math"

	"github.com/gonewx/archery/pkg/game"
)

// hudRows 顶部留给状态栏的行数
const hudRows = 1

// viewport 世界坐标（逻辑像素）与终端单元格之间的映射
//
// 模拟始终在固定的逻辑视口中运行，终端尺寸只影响映射比例，
// 所以在不同大小的终端里手感一致。
type viewport struct {
	cols, rows     int
	worldW, worldH float64
}

// newViewport 创建映射；终端顶部 hudRows 行用于状态栏
func newViewport(cols, rows int, worldW, worldH float64) viewport {
	return viewport{cols: cols, rows: rows - hudRows, worldW: worldW, worldH: worldH}
}

// valid 终端是否足够放下游戏画面
func (v viewport) valid() bool {
	return v.cols > 0 && v.rows > 0 && v.worldW > 0 && v.worldH > 0
}

// toCell 把世界坐标映射到单元格（可能越界，调用方负责裁剪）
func (v viewport) toCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / v.worldW * float64(v.cols)))
	row = int(math.Floor(y/v.worldH*float64(v.rows))) + hudRows
	return col, row
}

// toWorld 返回单元格中心对应的世界坐标
func (v viewport) toWorld(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * v.worldW / float64(v.cols)
	y = (float64(row-hudRows) + 0.5) * v.worldH / float64(v.rows)
	return x, y
}

// inside 单元格是否在游戏区域内
func (v viewport) inside(col, row int) bool {
	return col >= 0 && col < v.cols && row >= hudRows && row < v.rows+hudRows
}

// arrowGlyph 按飞行角度选择箭杆字符（屏幕坐标系，Y 向下）
func arrowGlyph(angle float64) rune {
	// 归一化到 [0, π)，方向相反的箭使用同一个字符
	a := math.Mod(angle, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '-'
	case a < 3*math.Pi/8:
		return '\\'
	case a < 5*math.Pi/8:
		return '|'
	default:
		return '/'
	}
}

// ringIndex 返回距靶心 d 处所在的环（由外到内 0..n-1），不在靶上返回 -1
func ringIndex(rings []float64, d float64) int {
	idx := -1
	for i, r := range rings {
		if d <= r {
			idx = i
		}
	}
	return idx
}

// statusLine 状态栏文字
func statusLine(s *game.Snapshot) string {
	line := ""
	for i, part := range s.HUDLines() {
		if i > 0 {
			line += "  "
		}
		line += part
	}
	return line + "  [" + s.Phase.String() + "]"
}
