package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// newTestWorld 创建 960x640 参考分辨率下的测试环境
func newTestWorld() (*ecs.EntityManager, *config.Layout, *config.TuningConfig, *rand.Rand) {
	tuning := config.DefaultTuning()
	layout := config.ComputeLayout(960, 640, tuning)
	return ecs.NewEntityManager(), layout, tuning, rand.New(rand.NewSource(42))
}
