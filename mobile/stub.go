//go:build !mobile

// Package mobile 是 ebitenmobile bind 的入口，只在 -tags mobile 时包含游戏代码
package mobile

// Dummy 让桌面构建也能引用这个包
func Dummy() {}
