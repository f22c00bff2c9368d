package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// HighScoreStore 最高分的持久化
type HighScoreStore interface {
	// Load 读取最高分；不存在时返回 0, nil
	Load() (int, error)
	// Save 写入最高分
	Save(score int) error
}

// 存储路径常量
const (
	highScoreObject   = "archery"
	highScoreProperty = "archery_high"
)

// GdataHighScoreStore 使用 gdata 跨平台存储保存最高分
// 值以十进制字符串保存，单个键 "archery_high"
type GdataHighScoreStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	memory       int
}

// NewGdataHighScoreStore 创建最高分存储
//
// 参数：
//   - gdataManager: gdata 管理器，nil 时退化为仅内存保存
func NewGdataHighScoreStore(gdataManager *gdata.Manager) *GdataHighScoreStore {
	return &GdataHighScoreStore{gdataManager: gdataManager}
}

// Load 读取最高分
//
// 返回：
//   - int: 最高分；键不存在、内容无法解析或为负数时为 0
//   - error: 读取或解析失败时返回错误
func (s *GdataHighScoreStore) Load() (int, error) {
	if s.gdataManager == nil {
		return s.memory, nil
	}

	if !s.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return 0, nil
	}

	data, err := s.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse high score %q: %w", string(data), err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid high score %d: must not be negative", value)
	}
	return value, nil
}

// Save 写入最高分
func (s *GdataHighScoreStore) Save(score int) error {
	if s.gdataManager == nil {
		s.memory = score
		return nil
	}

	if err := s.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

// MemoryHighScoreStore 仅内存的最高分存储（测试、回放）
type MemoryHighScoreStore struct {
	Score int
	// SaveErr 非 nil 时 Save 返回该错误且不修改 Score
	SaveErr error
	// Saves 记录 Save 被调用的次数
	Saves int
}

// Load 返回当前分数
func (s *MemoryHighScoreStore) Load() (int, error) {
	return s.Score, nil
}

// Save 保存分数
func (s *MemoryHighScoreStore) Save(score int) error {
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Score = score
	return nil
}
