package components

import "github.com/gonewx/archery/pkg/ecs"

// ArrowComponent 箭矢状态
//
// 飞行中：Angle 每帧由速度方向重新计算。
// 插靶后：Stuck=true，速度清零，Angle 冻结；
// 箭尖位置 = 锚点实体位置 + (LocalX, LocalY)，箭杆中点由箭尖反推。
//
// StuckTo 只保存锚点实体的ID而非指针：锚点被删除后查询失败，
// 箭矢停留在最后的位置（失去锚点），不会延长锚点实体的生命周期。
type ArrowComponent struct {
	Angle float64 // 朝向（弧度），0 指向右侧，正值向下

	Stuck   bool         // 是否已插在靶上
	StuckTo ecs.EntityID // 锚点实体ID（未插靶时为 ecs.InvalidEntity）
	LocalX  float64      // 箭尖相对锚点中心的X偏移
	LocalY  float64      // 箭尖相对锚点中心的Y偏移
}
