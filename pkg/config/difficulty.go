package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty 难度档位
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// AllDifficulties 按界面顺序列出全部难度
var AllDifficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// String 返回难度名称（与配置文件键名一致）
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Next 返回下一个难度（循环），用于 HUD 上的切换按钮
func (d Difficulty) Next() Difficulty {
	return AllDifficulties[(int(d)+1)%len(AllDifficulties)]
}

// ParseDifficulty 解析难度名称（不区分大小写）
// "Medium" 作为 "Normal" 的别名
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "medium":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q", s)
	}
}

// MarshalYAML 以名称形式序列化
func (d Difficulty) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML 从名称反序列化
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDifficulty(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DifficultyPreset 一个难度档位的固定参数
type DifficultyPreset struct {
	Arrows         int     `yaml:"arrows"`         // 开局箭数
	TimeLimit      float64 `yaml:"timeLimit"`      // 回合时长（秒）
	RadiusFraction float64 `yaml:"radiusFraction"` // 靶半径 = min(W,H) * 比例
	TargetSpeed    float64 `yaml:"targetSpeed"`    // 靶水平速度（负值向左）
}

// DifficultyConfig 难度配置
//
// 配置文件位置: data/difficulty.yaml
type DifficultyConfig struct {
	Default Difficulty                  `yaml:"default"`
	Presets map[string]DifficultyPreset `yaml:"presets"`
}

// DefaultDifficulties 返回内置难度配置（与 data/difficulty.yaml 一致）
func DefaultDifficulties() *DifficultyConfig {
	return &DifficultyConfig{
		Default: DifficultyNormal,
		Presets: map[string]DifficultyPreset{
			"Easy":   {Arrows: 20, TimeLimit: 80, RadiusFraction: 0.12, TargetSpeed: -120},
			"Normal": {Arrows: 14, TimeLimit: 60, RadiusFraction: 0.09, TargetSpeed: -180},
			"Hard":   {Arrows: 10, TimeLimit: 45, RadiusFraction: 0.07, TargetSpeed: -260},
		},
	}
}

// Preset 返回指定难度的参数
// 配置已通过 Validate，因此三个档位必然存在
func (c *DifficultyConfig) Preset(d Difficulty) DifficultyPreset {
	return c.Presets[d.String()]
}

// ParseDifficultyConfig 解析 YAML 难度配置并验证
func ParseDifficultyConfig(data []byte) (*DifficultyConfig, error) {
	cfg := DifficultyConfig{Default: DifficultyNormal}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid difficulty config: %w", err)
	}

	return &cfg, nil
}

// LoadDifficultyConfig 加载难度配置
//
// 参数:
//   - path: 配置文件路径（如 "data/difficulty.yaml"）
//
// 返回:
//   - *DifficultyConfig: 加载成功后的配置
//   - error: 加载失败时返回错误
func LoadDifficultyConfig(path string) (*DifficultyConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty config: %w", err)
	}
	return ParseDifficultyConfig(data)
}

// LoadDifficultyConfigFile 从磁盘加载难度配置（-difficulty-config 参数），不查找嵌入资源
func LoadDifficultyConfigFile(path string) (*DifficultyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty config: %w", err)
	}
	return ParseDifficultyConfig(data)
}

// Validate 检查三个档位齐全且数值合理
func (c *DifficultyConfig) Validate() error {
	for _, d := range AllDifficulties {
		p, ok := c.Presets[d.String()]
		if !ok {
			return fmt.Errorf("missing preset %q", d.String())
		}
		if p.Arrows < 0 {
			return fmt.Errorf("%s: arrows must not be negative, got %d", d, p.Arrows)
		}
		if p.TimeLimit <= 0 {
			return fmt.Errorf("%s: timeLimit must be positive, got %.1f", d, p.TimeLimit)
		}
		if p.RadiusFraction <= 0 || p.RadiusFraction > 0.5 {
			return fmt.Errorf("%s: radiusFraction must be in (0, 0.5], got %.3f", d, p.RadiusFraction)
		}
	}
	return nil
}
