package game

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/gonewx/archery/"

// packageImports 返回目录下非测试源文件的导入路径
func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	var imports []string
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			imports = append(imports, path)
		}
	}
	return imports
}

// TestHeadlessPackagesDoNotImportEbiten 模拟核心、回放工具和终端版不能依赖图形库
func TestHeadlessPackagesDoNotImportEbiten(t *testing.T) {
	root := filepath.Join("..", "..")
	roots := []string{"pkg/game", "cmd/archery-replay", "cmd/archery-tui"}

	for _, start := range roots {
		t.Run(start, func(t *testing.T) {
			seen := map[string]bool{}
			queue := []string{start}
			for len(queue) > 0 {
				pkg := queue[0]
				queue = queue[1:]
				if seen[pkg] {
					continue
				}
				seen[pkg] = true
				for _, imp := range packageImports(t, filepath.Join(root, pkg)) {
					if strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten") {
						t.Errorf("%s imports %s", pkg, imp)
					}
					if strings.HasPrefix(imp, modulePath) {
						queue = append(queue, strings.TrimPrefix(imp, modulePath))
					}
				}
			}
		})
	}
}
