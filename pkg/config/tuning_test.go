package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/archery/pkg/embedded"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning should be valid: %v", err)
	}
}

// TestEmbeddedTuningMatchesDefaults 磁盘上的 data/tuning.yaml 应与内置默认值一致
func TestEmbeddedTuningMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "tuning.yaml"))
	if err != nil {
		t.Skipf("data/tuning.yaml not available: %v", err)
	}

	cfg, err := ParseTuningConfig(data)
	if err != nil {
		t.Fatalf("ParseTuningConfig failed: %v", err)
	}

	def := DefaultTuning()
	if cfg.Physics != def.Physics {
		t.Errorf("physics mismatch: file %+v, default %+v", cfg.Physics, def.Physics)
	}
	if cfg.Charge != def.Charge {
		t.Errorf("charge mismatch: file %+v, default %+v", cfg.Charge, def.Charge)
	}
	if cfg.Layout != def.Layout {
		t.Errorf("layout mismatch: file %+v, default %+v", cfg.Layout, def.Layout)
	}
	if cfg.Pickup != def.Pickup {
		t.Errorf("pickup mismatch: file %+v, default %+v", cfg.Pickup, def.Pickup)
	}
	if cfg.Effects != def.Effects {
		t.Errorf("effects mismatch: file %+v, default %+v", cfg.Effects, def.Effects)
	}
	if len(cfg.Target.RingPoints) != 4 || cfg.Target.RingPoints[3] != 100 {
		t.Errorf("unexpected ring points: %v", cfg.Target.RingPoints)
	}
}

func TestParseTuningPartialOverride(t *testing.T) {
	cfg, err := ParseTuningConfig([]byte("charge:\n  maxSpeed: 1200\n"))
	if err != nil {
		t.Fatalf("ParseTuningConfig failed: %v", err)
	}

	if cfg.Charge.MaxSpeed != 1200 {
		t.Errorf("expected overridden maxSpeed 1200, got %.1f", cfg.Charge.MaxSpeed)
	}
	// 未覆盖的字段保留默认值
	if cfg.Charge.MinSpeed != 260 {
		t.Errorf("expected default minSpeed 260, got %.1f", cfg.Charge.MinSpeed)
	}
	if cfg.Physics.BaseGravity != 900 {
		t.Errorf("expected default gravity 900, got %.1f", cfg.Physics.BaseGravity)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *TuningConfig)
	}{
		{"步长为零", func(c *TuningConfig) { c.Physics.MaxStep = 0 }},
		{"速度区间倒置", func(c *TuningConfig) { c.Charge.MaxSpeed = 100 }},
		{"蓄力时间为零", func(c *TuningConfig) { c.Charge.MaxCharge = 0 }},
		{"瞄准角超过90度", func(c *TuningConfig) { c.Charge.AimLimitDegrees = 120 }},
		{"环数量不一致", func(c *TuningConfig) { c.Target.RingPoints = []int{10, 30} }},
		{"环比例未递减", func(c *TuningConfig) { c.Target.RingFractions = []float64{1.0, 0.48, 0.72, 0.28} }},
		{"分值未递增", func(c *TuningConfig) { c.Target.RingPoints = []int{10, 60, 30, 100} }},
		{"补给速率为负", func(c *TuningConfig) { c.Pickup.SpawnRatePerSecond = -1 }},
		{"抖动衰减越界", func(c *TuningConfig) { c.Target.WobbleDecay = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTuning()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseTuningInvalidYAML(t *testing.T) {
	if _, err := ParseTuningConfig([]byte("physics: [not, a, map")); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestLoadTuningConfigFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  baseGravity: 1000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTuningConfig(path)
	if err != nil {
		t.Fatalf("LoadTuningConfig failed: %v", err)
	}
	if cfg.Physics.BaseGravity != 1000 {
		t.Errorf("expected gravity 1000, got %.1f", cfg.Physics.BaseGravity)
	}

	if _, err := LoadTuningConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestLoadConfigFileIgnoresEmbedded 显式指定的路径即使与内置文件同名也从磁盘读取
func TestLoadConfigFileIgnoresEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll("data", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("data", "tuning.yaml"), []byte("physics:\n  baseGravity: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	embedded.Init(fstest.MapFS{
		"data/tuning.yaml": &fstest.MapFile{Data: []byte("physics:\n  baseGravity: 900\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	builtin, err := LoadTuningConfig("data/tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuningConfig failed: %v", err)
	}
	if builtin.Physics.BaseGravity != 900 {
		t.Errorf("built-in gravity = %.0f, want the embedded 900", builtin.Physics.BaseGravity)
	}

	edited, err := LoadTuningConfigFile("data/tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuningConfigFile failed: %v", err)
	}
	if edited.Physics.BaseGravity != 1000 {
		t.Errorf("disk gravity = %.0f, want 1000", edited.Physics.BaseGravity)
	}

	if _, err := LoadDifficultyConfigFile(filepath.Join("data", "missing.yaml")); err == nil {
		t.Error("expected error for missing difficulty file")
	}
}
