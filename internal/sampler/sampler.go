// 包 sampler：在区县多边形内拒绝采样随机坐标
package sampler

import (
	"math/rand/v2"

	"fra-patta/internal/geom"
	"fra-patta/internal/metrics"
)

const DefaultMaxAttempts = 100

// Point：采样结果；Fallback 表示落回质心
type Point struct {
	Lat      float64
	Lon      float64
	Fallback bool
}

// 文档注释：包围盒拒绝采样器
// 背景：在包围盒内均匀取点，命中多边形即返回；细长或稀疏形状可能长时间不命中，因此设上限。
// 约束：超过 MaxAttempts 后返回质心，结果只由形状决定；质心对凹形或多面可能落在填充区之外。
type Sampler struct {
	rng         *rand.Rand
	MaxAttempts int
}

func New(rng *rand.Rand, maxAttempts int) *Sampler {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Sampler{rng: rng, MaxAttempts: maxAttempts}
}

// Sample：返回 (lat, lon)，即 (y, x)
func (s *Sampler) Sample(shape geom.Shape) Point {
	b := shape.Bounds()
	for i := 1; i <= s.MaxAttempts; i++ {
		x := uniform(s.rng, b.MinX, b.MaxX)
		y := uniform(s.rng, b.MinY, b.MaxY)
		if shape.Contains(x, y) {
			metrics.SamplerAttempts.Observe(float64(i))
			return Point{Lat: y, Lon: x}
		}
	}
	metrics.SamplerAttempts.Observe(float64(s.MaxAttempts))
	metrics.SamplerFallbacks.Inc()
	x, y := shape.Centroid()
	return Point{Lat: y, Lon: x, Fallback: true}
}

// Uniform：[lo, hi) 上的均匀实数；lo == hi 时返回 lo
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return uniform(rng, lo, hi)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
