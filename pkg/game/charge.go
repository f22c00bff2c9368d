package game

import (
	"math"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/utils"
)

// Shot 一次发射的参数
type Shot struct {
	Angle float64 // 发射角（弧度，已限幅）
	Speed float64 // 初速度（像素/秒）
	Held  float64 // 有效蓄力时间（秒，已截断到 MaxCharge）
}

// ChargeController 蓄力发射控制器
//
// 按下开始蓄力，松开时按按住时长计算速度：
//
//	held  = min(松开时刻 - 按下时刻, MaxCharge)
//	speed = MinSpeed + sin(held/MaxCharge · π/2) · (MaxSpeed - MinSpeed)
//
// 瞄准角为弓手指向指针的方向，限制在 ±AimLimit 内。
// 控制器不检查箭数和回合阶段，由 Game 决定是否转发输入。
type ChargeController struct {
	tuning *config.ChargeTuning

	originX, originY float64 // 弓手位置
	aim              float64

	charging    bool
	chargeStart float64
}

// NewChargeController 创建控制器
func NewChargeController(tuning *config.ChargeTuning, originX, originY float64) *ChargeController {
	return &ChargeController{
		tuning:  tuning,
		originX: originX,
		originY: originY,
		aim:     utils.DegToRad(tuning.DefaultAimDegrees),
	}
}

// SetOrigin 视口变化后更新弓手位置
func (c *ChargeController) SetOrigin(x, y float64) {
	c.originX, c.originY = x, y
}

// AimLimit 返回瞄准角上限（弧度）
func (c *ChargeController) AimLimit() float64 {
	return utils.DegToRad(c.tuning.AimLimitDegrees)
}

// AimAngle 计算指向 (x, y) 的限幅瞄准角
func (c *ChargeController) AimAngle(x, y float64) float64 {
	return utils.AimAngle(c.originX, c.originY, x, y, c.AimLimit())
}

// Aim 返回当前瞄准角
func (c *ChargeController) Aim() float64 {
	return c.aim
}

// Charging 是否正在蓄力
func (c *ChargeController) Charging() bool {
	return c.charging
}

// PointerDown 开始蓄力并更新瞄准
func (c *ChargeController) PointerDown(x, y, now float64) {
	c.aim = c.AimAngle(x, y)
	c.charging = true
	c.chargeStart = now
}

// PointerMove 更新瞄准
func (c *ChargeController) PointerMove(x, y float64) {
	c.aim = c.AimAngle(x, y)
}

// PointerUp 松开发射
//
// 返回:
//   - Shot: 发射参数
//   - bool: 未在蓄力时为 false
func (c *ChargeController) PointerUp(x, y, now float64) (Shot, bool) {
	if !c.charging {
		return Shot{}, false
	}
	c.charging = false
	c.aim = c.AimAngle(x, y)

	held := c.clampHeld(now - c.chargeStart)
	return Shot{Angle: c.aim, Speed: c.LaunchSpeed(held), Held: held}, true
}

// QuickFire 沿当前瞄准方向立即发射（零蓄力，最小速度）
// 正在蓄力时忽略
func (c *ChargeController) QuickFire() (Shot, bool) {
	if c.charging {
		return Shot{}, false
	}
	return Shot{Angle: c.aim, Speed: c.LaunchSpeed(0)}, true
}

// Cancel 放弃当前蓄力
func (c *ChargeController) Cancel() {
	c.charging = false
}

// LaunchSpeed 按蓄力时间计算初速度
func (c *ChargeController) LaunchSpeed(held float64) float64 {
	t := c.clampHeld(held) / c.tuning.MaxCharge
	eased := math.Sin(t * math.Pi / 2)
	return c.tuning.MinSpeed + eased*(c.tuning.MaxSpeed-c.tuning.MinSpeed)
}

// ChargeFraction 返回当前蓄力进度 [0, 1]（已缓动），未蓄力时为 0
// 渲染用它计算弓弦拉开的距离
func (c *ChargeController) ChargeFraction(now float64) float64 {
	if !c.charging {
		return 0
	}
	t := c.clampHeld(now-c.chargeStart) / c.tuning.MaxCharge
	return math.Sin(t * math.Pi / 2)
}

func (c *ChargeController) clampHeld(held float64) float64 {
	return utils.Clamp(held, 0, c.tuning.MaxCharge)
}
