// 包 synth：为单个区县合成地契持有人记录
package synth

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"fra-patta/internal/boundary"
	"fra-patta/internal/config"
	"fra-patta/internal/metrics"
	"fra-patta/internal/patta"
	"fra-patta/internal/sampler"
)

const (
	minAcres   = 0.5
	maxAcres   = 3.0
	minVillage = 100
	maxVillage = 999
)

// Synthesizer：持有随机源、采样器与名单；同一随机源贯穿采样与字段合成
type Synthesizer struct {
	rng     *rand.Rand
	sampler *sampler.Sampler

	FirstNames     []string
	LastNames      []string
	MinPerDistrict int
	MaxPerDistrict int
}

func New(rng *rand.Rand, cfg config.Config) *Synthesizer {
	return &Synthesizer{
		rng:            rng,
		sampler:        sampler.New(rng, cfg.MaxAttempts),
		FirstNames:     cfg.FirstNames,
		LastNames:      cfg.LastNames,
		MinPerDistrict: cfg.MinPerDistrict,
		MaxPerDistrict: cfg.MaxPerDistrict,
	}
}

// Count：区县记录数，在 [MinPerDistrict, MaxPerDistrict] 上均匀取整
func (s *Synthesizer) Count() int {
	return intBetween(s.rng, s.MinPerDistrict, s.MaxPerDistrict)
}

// 文档注释：生成某区县的 count 条记录
// 约束：序号从 1 开始连续递增；ID = 邦代码_区县缩写_三位序号。
func (s *Synthesizer) District(st config.State, d boundary.District, count int) []patta.Record {
	abbrev := Abbrev(d.Name)
	out := make([]patta.Record, 0, count)
	for i := 1; i <= count; i++ {
		pt := s.sampler.Sample(d.Shape)
		r := patta.Record{
			ID:            fmt.Sprintf("%s_%s_%03d", st.Code, abbrev, i),
			HolderName:    s.pick(s.FirstNames) + " " + s.pick(s.LastNames),
			Status:        patta.Statuses[s.rng.IntN(len(patta.Statuses))],
			LandAreaAcres: round(sampler.Uniform(s.rng, minAcres, maxAcres), 1),
			Latitude:      round(pt.Lat, 4),
			Longitude:     round(pt.Lon, 4),
			Village:       fmt.Sprintf("Village_%d", intBetween(s.rng, minVillage, maxVillage)),
			District:      d.Name,
			State:         st.Name,
			Fallback:      pt.Fallback,
		}
		metrics.RecordsGenerated.WithLabelValues(st.Name, string(r.Status)).Inc()
		out = append(out, r)
	}
	return out
}

// Abbrev：去掉空格与连字符，取前三个字符并转大写
func Abbrev(name string) string {
	s := strings.NewReplacer(" ", "", "-", "").Replace(name)
	rs := []rune(s)
	if len(rs) > 3 {
		rs = rs[:3]
	}
	return strings.ToUpper(string(rs))
}

func (s *Synthesizer) pick(xs []string) string {
	return xs[s.rng.IntN(len(xs))]
}

func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
