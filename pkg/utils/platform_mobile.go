//go:build mobile

package utils

// IsMobile 移动端构建总是触屏模式
func IsMobile() bool {
	return true
}
