package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecordsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "patta_records_generated_total",
		Help: "Total synthetic patta records generated",
	}, []string{"state", "status"})
	DistrictsLoaded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "patta_districts_total",
		Help: "Districts loaded from boundary documents",
	}, []string{"state"})
	FeaturesSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "patta_features_skipped_total",
		Help: "Boundary features skipped for lacking a district name",
	}, []string{"state"})
	SamplerFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "patta_sampler_fallback_total",
		Help: "Points that fell back to the polygon centroid",
	})
	SamplerAttempts = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "patta_sampler_attempts",
		Help:    "Rejection sampling draws per point",
		Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100},
	})
	BoundaryCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "patta_boundary_cache_hits_total",
		Help: "Boundary documents served from redis",
	})
	BoundaryCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "patta_boundary_cache_misses_total",
		Help: "Boundary documents read from postgres after a cache miss",
	})
)

func init() {
	prometheus.MustRegister(RecordsGenerated)
	prometheus.MustRegister(DistrictsLoaded)
	prometheus.MustRegister(FeaturesSkipped)
	prometheus.MustRegister(SamplerFallbacks)
	prometheus.MustRegister(SamplerAttempts)
	prometheus.MustRegister(BoundaryCacheHits)
	prometheus.MustRegister(BoundaryCacheMisses)
}

// 文档注释：把已注册指标写入文本文件
// 背景：生成器是一次性批处理，不挂 /metrics；交给 node_exporter textfile collector 采集。
// 约束：WriteToTextfile 内部先写临时文件再改名，不会留下半截文件。
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
