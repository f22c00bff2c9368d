package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningConfig 游戏手感调参配置
//
// 配置文件位置: data/tuning.yaml
// 所有长度单位为逻辑像素，时间单位为秒。
// 标注"参考分辨率"的数值在 960x640 下生效，运行时按视口缩放。
type TuningConfig struct {
	Physics PhysicsTuning `yaml:"physics"`
	Charge  ChargeTuning  `yaml:"charge"`
	Layout  LayoutTuning  `yaml:"layout"`
	Target  TargetTuning  `yaml:"target"`
	Pickup  PickupTuning  `yaml:"pickup"`
	Effects EffectsTuning `yaml:"effects"`
}

// PhysicsTuning 积分器参数
type PhysicsTuning struct {
	// BaseGravity 参考分辨率下的重力加速度（像素/秒²）
	BaseGravity float64 `yaml:"baseGravity"`

	// Drag 箭矢线性阻力系数
	Drag float64 `yaml:"drag"`

	// ParticleDragX / ParticleDragY 粒子的水平、垂直阻力系数
	ParticleDragX float64 `yaml:"particleDragX"`
	ParticleDragY float64 `yaml:"particleDragY"`

	// MaxStep 单步最大时间（秒），防止卡顿后穿透
	MaxStep float64 `yaml:"maxStep"`
}

// ChargeTuning 蓄力与发射参数
type ChargeTuning struct {
	MinSpeed  float64 `yaml:"minSpeed"`  // 零蓄力发射速度（像素/秒）
	MaxSpeed  float64 `yaml:"maxSpeed"`  // 满蓄力发射速度（像素/秒）
	MaxCharge float64 `yaml:"maxCharge"` // 满蓄力所需时间（秒）

	// AimLimitDegrees 瞄准角上下限（度，对称）
	AimLimitDegrees float64 `yaml:"aimLimitDegrees"`

	// SpawnClearance 箭矢生成点在半箭长之外的额外距离，避开弓手轮廓
	SpawnClearance float64 `yaml:"spawnClearance"`

	// DefaultAimDegrees 开局时的瞄准角（度）
	DefaultAimDegrees float64 `yaml:"defaultAimDegrees"`
}

// LayoutTuning 视口相关布局参数
type LayoutTuning struct {
	ReferenceWidth  float64 `yaml:"referenceWidth"`
	ReferenceHeight float64 `yaml:"referenceHeight"`

	GroundFraction      float64 `yaml:"groundFraction"`      // 地面高度 = H * 比例
	ArcherXFraction     float64 `yaml:"archerXFraction"`     // 弓手X = W * 比例
	ArcherLiftFraction  float64 `yaml:"archerLiftFraction"`  // 弓手Y = 地面 - H * 比例
	ArrowLengthFraction float64 `yaml:"arrowLengthFraction"` // 箭长 = min(W,H) * 比例

	// HUDExclusionWidth 右侧留给 HUD 控件的宽度，该区域内的指针按下不触发蓄力
	HUDExclusionWidth float64 `yaml:"hudExclusionWidth"`

	// OffscreenMargin 箭矢超出屏幕边缘多远后被移除
	OffscreenMargin float64 `yaml:"offscreenMargin"`
}

// TargetTuning 靶参数
type TargetTuning struct {
	RingFractions []float64 `yaml:"ringFractions"` // 各环半径比例（外 → 内）
	RingPoints    []int     `yaml:"ringPoints"`    // 各环分值（低 → 高）

	WobbleDecay float64 `yaml:"wobbleDecay"` // 每帧抖动衰减倍率
	WobbleMin   float64 `yaml:"wobbleMin"`   // 命中抖动最小值
	WobbleRange float64 `yaml:"wobbleRange"` // 命中抖动随机范围

	WrapMargin float64 `yaml:"wrapMargin"` // 离开左边缘多远后从右侧重新出现
	SpawnTop   float64 `yaml:"spawnTop"`   // 随机高度的上边界
	SpawnBand  float64 `yaml:"spawnBand"`  // 随机高度带 = 地面 - SpawnBand

	StartXFraction float64 `yaml:"startXFraction"` // 初始X = W - W * 比例
	StartYFraction float64 `yaml:"startYFraction"` // 初始Y = 地面 - H * 比例
}

// PickupTuning 补给参数
type PickupTuning struct {
	// SpawnRatePerSecond 每秒期望生成数量；每步生成概率 = 1 - exp(-rate*dt)
	SpawnRatePerSecond float64 `yaml:"spawnRatePerSecond"`

	// MaxActive 同时存在的补给上限，0 表示不限
	MaxActive int `yaml:"maxActive"`

	DriftSpeed  float64 `yaml:"driftSpeed"`  // 水平漂移速度（负值向左）
	SpawnMargin float64 `yaml:"spawnMargin"` // 生成在右边缘外的距离
	DespawnX    float64 `yaml:"despawnX"`    // X 小于该值后移除
	BobRange    float64 `yaml:"bobRange"`    // 初始浮动相位随机范围

	CollectRadiusMin      float64 `yaml:"collectRadiusMin"`      // 拾取判定半径下限
	CollectRadiusFraction float64 `yaml:"collectRadiusFraction"` // 拾取判定半径 = W * 比例
	Arrows                int     `yaml:"arrows"`                // 每个补给增加的箭数
}

// EffectsTuning 粒子与飘字参数
type EffectsTuning struct {
	HitParticles    int `yaml:"hitParticles"`
	PickupParticles int `yaml:"pickupParticles"`

	ParticleSpeedMin       float64 `yaml:"particleSpeedMin"`
	ParticleSpeedRange     float64 `yaml:"particleSpeedRange"`
	ParticleVerticalSquash float64 `yaml:"particleVerticalSquash"`
	ParticleLifeMin        float64 `yaml:"particleLifeMin"`
	ParticleLifeRange      float64 `yaml:"particleLifeRange"`

	CommentaryLife float64 `yaml:"commentaryLife"`
	BullseyeLife   float64 `yaml:"bullseyeLife"`
	PickupLife     float64 `yaml:"pickupLife"`
	BullseyeOffset float64 `yaml:"bullseyeOffset"` // BULLSEYE 飘字在命中点上方的距离
}

// DefaultTuning 返回内置默认调参（与 data/tuning.yaml 一致）
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Physics: PhysicsTuning{
			BaseGravity:   900,
			Drag:          0.03,
			ParticleDragX: 1.2,
			ParticleDragY: 0.6,
			MaxStep:       0.05,
		},
		Charge: ChargeTuning{
			MinSpeed:          260,
			MaxSpeed:          1050,
			MaxCharge:         1.6,
			AimLimitDegrees:   60,
			SpawnClearance:    10,
			DefaultAimDegrees: -22.5,
		},
		Layout: LayoutTuning{
			ReferenceWidth:      960,
			ReferenceHeight:     640,
			GroundFraction:      0.82,
			ArcherXFraction:     0.12,
			ArcherLiftFraction:  0.05,
			ArrowLengthFraction: 0.07,
			HUDExclusionWidth:   260,
			OffscreenMargin:     400,
		},
		Target: TargetTuning{
			RingFractions:  []float64{1.0, 0.72, 0.48, 0.28},
			RingPoints:     []int{10, 30, 60, 100},
			WobbleDecay:    0.94,
			WobbleMin:      8,
			WobbleRange:    18,
			WrapMargin:     40,
			SpawnTop:       120,
			SpawnBand:      200,
			StartXFraction: 0.18,
			StartYFraction: 0.18,
		},
		Pickup: PickupTuning{
			SpawnRatePerSecond:    0.18,
			MaxActive:             0,
			DriftSpeed:            -100,
			SpawnMargin:           40,
			DespawnX:              -100,
			BobRange:              2,
			CollectRadiusMin:      18,
			CollectRadiusFraction: 0.03,
			Arrows:                2,
		},
		Effects: EffectsTuning{
			HitParticles:           18,
			PickupParticles:        12,
			ParticleSpeedMin:       60,
			ParticleSpeedRange:     220,
			ParticleVerticalSquash: 0.6,
			ParticleLifeMin:        0.6,
			ParticleLifeRange:      0.8,
			CommentaryLife:         1.1,
			BullseyeLife:           1.4,
			PickupLife:             0.9,
			BullseyeOffset:         30,
		},
	}
}

// ParseTuningConfig 解析 YAML 调参数据
// 未出现的字段保留默认值，因此配置文件只需覆盖关心的参数
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *TuningConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return cfg, nil
}

// LoadTuningConfig 加载调参配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"），优先从嵌入资源读取
//
// 返回:
//   - *TuningConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// LoadTuningConfigFile 从磁盘加载调参配置（-tuning 参数），不查找嵌入资源
func LoadTuningConfigFile(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// Validate 验证配置有效性
//
// 检查：
//   - 速度区间、蓄力时间、步长为正
//   - 环比例外 → 内严格递减，分值严格递增，两者长度一致
//   - 瞄准角在 (0, 90] 度之间
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *TuningConfig) Validate() error {
	if c.Physics.MaxStep <= 0 {
		return fmt.Errorf("physics.maxStep must be positive, got %.3f", c.Physics.MaxStep)
	}
	if c.Physics.Drag < 0 || c.Physics.ParticleDragX < 0 || c.Physics.ParticleDragY < 0 {
		return fmt.Errorf("drag coefficients must not be negative")
	}

	if c.Charge.MinSpeed <= 0 || c.Charge.MaxSpeed < c.Charge.MinSpeed {
		return fmt.Errorf("charge speed range invalid: min(%.1f) max(%.1f)",
			c.Charge.MinSpeed, c.Charge.MaxSpeed)
	}
	if c.Charge.MaxCharge <= 0 {
		return fmt.Errorf("charge.maxCharge must be positive, got %.2f", c.Charge.MaxCharge)
	}
	if c.Charge.AimLimitDegrees <= 0 || c.Charge.AimLimitDegrees > 90 {
		return fmt.Errorf("charge.aimLimitDegrees must be in (0, 90], got %.1f", c.Charge.AimLimitDegrees)
	}

	if c.Layout.ReferenceWidth <= 0 || c.Layout.ReferenceHeight <= 0 {
		return fmt.Errorf("layout reference resolution must be positive")
	}

	rings := c.Target.RingFractions
	points := c.Target.RingPoints
	if len(rings) == 0 {
		return fmt.Errorf("target.ringFractions must not be empty")
	}
	if len(rings) != len(points) {
		return fmt.Errorf("target ring count mismatch: %d fractions, %d points", len(rings), len(points))
	}
	for i := 1; i < len(rings); i++ {
		if rings[i] >= rings[i-1] {
			return fmt.Errorf("target.ringFractions must decrease outer to inner (index %d)", i)
		}
		if points[i] <= points[i-1] {
			return fmt.Errorf("target.ringPoints must increase outer to inner (index %d)", i)
		}
	}
	if c.Target.WobbleDecay < 0 || c.Target.WobbleDecay > 1 {
		return fmt.Errorf("target.wobbleDecay must be in [0, 1], got %.2f", c.Target.WobbleDecay)
	}

	if c.Pickup.SpawnRatePerSecond < 0 {
		return fmt.Errorf("pickup.spawnRatePerSecond must not be negative")
	}
	if c.Pickup.MaxActive < 0 {
		return fmt.Errorf("pickup.maxActive must not be negative")
	}

	return nil
}
