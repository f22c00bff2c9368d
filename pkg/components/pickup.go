package components

// PickupComponent 漂浮的箭矢补给
type PickupComponent struct {
	Bob       float64 // 上下浮动相位（秒），仅用于渲染
	Arrows    int     // 拾取后增加的箭矢数量
	Collected bool    // 本帧已被拾取（等待删除），防止被两支箭重复拾取
}
