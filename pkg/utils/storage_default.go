//go:build !android

package utils

// EnsureStorageDir 桌面端由 gdata 自行创建存储目录
func EnsureStorageDir(appName string) (string, error) {
	return "", nil
}
