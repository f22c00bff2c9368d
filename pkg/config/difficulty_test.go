package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"Easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"Medium", DifficultyNormal, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", DifficultyNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDifficultyNextCycles(t *testing.T) {
	d := DifficultyEasy
	seen := []Difficulty{}
	for i := 0; i < 3; i++ {
		d = d.Next()
		seen = append(seen, d)
	}
	if seen[0] != DifficultyNormal || seen[1] != DifficultyHard || seen[2] != DifficultyEasy {
		t.Errorf("unexpected cycle: %v", seen)
	}
}

func TestDefaultPresets(t *testing.T) {
	cfg := DefaultDifficulties()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default difficulties invalid: %v", err)
	}

	tests := []struct {
		d      Difficulty
		arrows int
		time   float64
		radius float64
		speed  float64
	}{
		{DifficultyEasy, 20, 80, 0.12, -120},
		{DifficultyNormal, 14, 60, 0.09, -180},
		{DifficultyHard, 10, 45, 0.07, -260},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			p := cfg.Preset(tt.d)
			if p.Arrows != tt.arrows || p.TimeLimit != tt.time || p.RadiusFraction != tt.radius || p.TargetSpeed != tt.speed {
				t.Errorf("preset %s = %+v", tt.d, p)
			}
		})
	}
}

func TestDifficultyFileMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "difficulty.yaml"))
	if err != nil {
		t.Skipf("data/difficulty.yaml not available: %v", err)
	}

	cfg, err := ParseDifficultyConfig(data)
	if err != nil {
		t.Fatalf("ParseDifficultyConfig failed: %v", err)
	}

	def := DefaultDifficulties()
	if cfg.Default != def.Default {
		t.Errorf("default difficulty mismatch: %v vs %v", cfg.Default, def.Default)
	}
	for _, d := range AllDifficulties {
		if cfg.Preset(d) != def.Preset(d) {
			t.Errorf("%s mismatch: file %+v, default %+v", d, cfg.Preset(d), def.Preset(d))
		}
	}
}

func TestParseDifficultyConfigMissingPreset(t *testing.T) {
	data := []byte(`
presets:
  Easy: {arrows: 20, timeLimit: 80, radiusFraction: 0.12, targetSpeed: -120}
  Normal: {arrows: 14, timeLimit: 60, radiusFraction: 0.09, targetSpeed: -180}
`)
	if _, err := ParseDifficultyConfig(data); err == nil {
		t.Error("expected error when Hard preset is missing")
	}
}

func TestParseDifficultyConfigDefaultsToNormal(t *testing.T) {
	data := []byte(`
presets:
  Easy: {arrows: 20, timeLimit: 80, radiusFraction: 0.12, targetSpeed: -120}
  Normal: {arrows: 14, timeLimit: 60, radiusFraction: 0.09, targetSpeed: -180}
  Hard: {arrows: 10, timeLimit: 45, radiusFraction: 0.07, targetSpeed: -260}
`)
	cfg, err := ParseDifficultyConfig(data)
	if err != nil {
		t.Fatalf("ParseDifficultyConfig failed: %v", err)
	}
	if cfg.Default != DifficultyNormal {
		t.Errorf("expected default Normal, got %v", cfg.Default)
	}
}

func TestDifficultyYAMLRoundTrip(t *testing.T) {
	type wrapper struct {
		D Difficulty `yaml:"d"`
	}

	out, err := yaml.Marshal(wrapper{D: DifficultyHard})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != "d: Hard\n" {
		t.Errorf("unexpected yaml: %q", out)
	}

	var w wrapper
	if err := yaml.Unmarshal([]byte("d: easy\n"), &w); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if w.D != DifficultyEasy {
		t.Errorf("expected Easy, got %v", w.D)
	}

	if err := yaml.Unmarshal([]byte("d: impossible\n"), &w); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
