//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// go:embed 不能引用上级目录，构建前需要先把配置复制到此目录：
//
//	mkdir -p mobile/data && cp data/*.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/tuning.yaml data/difficulty.yaml
var dataFS embed.FS
