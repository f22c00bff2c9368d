// Package utils 提供与平台和渲染无关的通用工具函数
package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制数值变化的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutSine 正弦缓出
// 特点：开始快，结束慢（用于蓄力：短按即获得较多力度，满蓄力收益递减）
// 公式：f(t) = sin(t·π/2)
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于回合结束面板的弹出）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
