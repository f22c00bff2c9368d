package config

import (
	"math"
	"os"

	"github.com/gonewx/archery/pkg/embedded"
)

// Layout 由视口尺寸推导出的布局与缩放参数
// 视口改变时重新计算；重力和箭长随视口缩放，保证不同分辨率下手感一致
type Layout struct {
	Width, Height float64

	GroundY float64 // 地面Y坐标
	ArcherX float64 // 弓手（发射点）X坐标
	ArcherY float64 // 弓手（发射点）Y坐标

	ArrowLength float64 // 箭长
	Gravity     float64 // 缩放后的重力加速度

	// Scale = min(W/参考宽, H/参考高)
	Scale float64

	// PickupRadius 箭尖与补给的拾取判定距离
	PickupRadius float64

	// HUDLeft HUD 排除区的左边界，X 大于此值的指针按下被忽略
	HUDLeft float64
}

// ComputeLayout 根据视口尺寸计算布局
//
// 参数:
//   - width, height: 视口逻辑尺寸（像素）
//   - t: 调参配置
//
// 返回:
//   - *Layout: 布局结果
func ComputeLayout(width, height float64, t *TuningConfig) *Layout {
	minDim := math.Min(width, height)
	groundY := math.Floor(height * t.Layout.GroundFraction)
	scale := math.Min(width/t.Layout.ReferenceWidth, height/t.Layout.ReferenceHeight)

	return &Layout{
		Width:        width,
		Height:       height,
		GroundY:      groundY,
		ArcherX:      math.Floor(width * t.Layout.ArcherXFraction),
		ArcherY:      groundY - math.Floor(height*t.Layout.ArcherLiftFraction),
		ArrowLength:  math.Floor(minDim * t.Layout.ArrowLengthFraction),
		Gravity:      t.Physics.BaseGravity * scale,
		Scale:        scale,
		PickupRadius: math.Max(t.Pickup.CollectRadiusMin, width*t.Pickup.CollectRadiusFraction),
		HUDLeft:      width - t.Layout.HUDExclusionWidth,
	}
}

// MinDimension 返回视口较短边
func (l *Layout) MinDimension() float64 {
	return math.Min(l.Width, l.Height)
}

// InHUDZone 判断屏幕X坐标是否落在 HUD 排除区
func (l *Layout) InHUDZone(x float64) bool {
	return x > l.HUDLeft
}

// TargetRadius 按难度比例计算靶半径（取整）
func (l *Layout) TargetRadius(fraction float64) float64 {
	return math.Floor(l.MinDimension() * fraction)
}

// readConfigFile 读取内置配置文件
// 嵌入资源中存在时优先使用嵌入版本，否则从磁盘读取
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
