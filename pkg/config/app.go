package config

// AppName gdata 存储使用的应用名，桌面端、移动端和终端版共用同一份存档
const AppName = "archery"

// 默认视口尺寸（逻辑像素），与调参的参考分辨率一致
const (
	ViewportWidth  = 960
	ViewportHeight = 640
)
