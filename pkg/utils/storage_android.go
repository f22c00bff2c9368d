//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 打开之前准备 Android 上的存档目录
//
// gdata 在 Android 上写入 /data/data/{package}/ 下的子目录，但不会先创建它们。
//
// 参数:
//   - appName: gdata 使用的应用名，作为子目录名
//
// 返回:
//   - string: 创建好的目录
//   - error: 无法识别包名或目录不可写时返回错误
func EnsureStorageDir(appName string) (string, error) {
	pkg, err := androidPackage()
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, nil, 0o644); err != nil {
		return "", fmt.Errorf("storage dir %s is not writable: %w", dir, err)
	}
	os.Remove(testFile)
	return dir, nil
}

// androidPackage 从 /proc/self/cmdline 读取进程名（即包名）
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
