package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ============================================================================
// 指针跟踪器 - 统一鼠标与触摸的"按下 / 移动 / 松开"手势
// ============================================================================

// PointerPhase 指针在本帧所处的阶段
type PointerPhase int

const (
	// PointerIdle 没有按下
	PointerIdle PointerPhase = iota
	// PointerPressed 本帧刚按下
	PointerPressed
	// PointerHeld 持续按住
	PointerHeld
	// PointerReleased 本帧刚松开（只持续一帧）
	PointerReleased
)

// PointerSample 一帧的原始指针采样
type PointerSample struct {
	// Down 本帧指针是否按下
	Down bool
	// X, Y 指针位置（逻辑像素）
	X, Y int
	// TouchID 触摸ID，-1 表示鼠标
	TouchID ebiten.TouchID
}

// PointerInfo 跟踪结果
type PointerInfo struct {
	Phase PointerPhase
	// X, Y 当前位置；松开时为最后一次按住的位置
	X, Y int
	// Moved 本帧位置相对上一帧是否变化
	Moved bool
	// IsTouchInput 是否为触摸输入
	IsTouchInput bool
}

// PointerTracker 把逐帧采样转换成手势阶段
//
// 触摸松开时 ebiten 已无法查询该触摸的位置，所以跟踪器记住最后一次按住的位置，
// 松开事件使用这个位置。
type PointerTracker struct {
	info    PointerInfo
	touchID ebiten.TouchID
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{touchID: -1}
}

// Update 读取本帧的 ebiten 输入并推进跟踪状态（每帧调用一次）
func (pt *PointerTracker) Update() PointerInfo {
	return pt.Feed(pt.readSample())
}

// readSample 优先跟踪已按住的触摸，其次是新触摸，最后是鼠标左键
func (pt *PointerTracker) readSample() PointerSample {
	if pt.touchID >= 0 {
		for _, id := range ebiten.AppendTouchIDs(nil) {
			if id == pt.touchID {
				x, y := ebiten.TouchPosition(id)
				return PointerSample{Down: true, X: x, Y: y, TouchID: id}
			}
		}
		return PointerSample{Down: false, X: pt.info.X, Y: pt.info.Y, TouchID: pt.touchID}
	}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return PointerSample{Down: true, X: x, Y: y, TouchID: ids[0]}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Down:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
		TouchID: -1,
	}
}

// Feed 用一帧采样推进跟踪状态，返回本帧的手势信息
func (pt *PointerTracker) Feed(s PointerSample) PointerInfo {
	prev := pt.info
	moved := s.X != prev.X || s.Y != prev.Y

	switch prev.Phase {
	case PointerIdle, PointerReleased:
		if s.Down {
			pt.touchID = s.TouchID
			pt.info = PointerInfo{Phase: PointerPressed, X: s.X, Y: s.Y, Moved: moved, IsTouchInput: s.TouchID >= 0}
		} else {
			// 鼠标悬停也更新位置，瞄准跟随光标
			pt.info = PointerInfo{Phase: PointerIdle, X: s.X, Y: s.Y, Moved: moved}
		}

	case PointerPressed, PointerHeld:
		if s.Down {
			pt.info = PointerInfo{Phase: PointerHeld, X: s.X, Y: s.Y, Moved: moved, IsTouchInput: prev.IsTouchInput}
		} else {
			x, y := s.X, s.Y
			if prev.IsTouchInput {
				x, y = prev.X, prev.Y
			}
			pt.info = PointerInfo{Phase: PointerReleased, X: x, Y: y, IsTouchInput: prev.IsTouchInput}
			pt.touchID = -1
		}
	}

	return pt.info
}

// Info 返回最近一次的跟踪结果
func (pt *PointerTracker) Info() PointerInfo {
	return pt.info
}

// Reset 丢弃当前手势
func (pt *PointerTracker) Reset() {
	pt.info = PointerInfo{Phase: PointerIdle}
	pt.touchID = -1
}
