// 包 generator：串联边界来源、记录合成与汇总；单线程顺序执行
package generator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"fra-patta/internal/boundary"
	"fra-patta/internal/config"
	"fra-patta/internal/logger"
	"fra-patta/internal/patta"
	"fra-patta/internal/synth"
)

// DistrictCount：某区县实际生成的记录数
type DistrictCount struct {
	State    string
	District string
	Count    int
}

// Result：按 邦 → 区县 → 序号 排列的全部记录
type Result struct {
	Records   []patta.Record
	Districts []DistrictCount
}

type Generator struct {
	cfg    config.Config
	source boundary.Source
	rng    *rand.Rand
}

// NewRand：按配置种子构造随机源；未配置种子时取当前时间
func NewRand(cfg config.Config) *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func New(cfg config.Config, src boundary.Source, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, source: src, rng: rng}
}

// 文档注释：执行一次完整生成
// 背景：逐邦加载区县，逐区县先抽取记录数再合成；任一邦加载失败即中止，不返回部分结果。
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	sy := synth.New(g.rng, g.cfg)
	res := &Result{}
	for _, st := range g.cfg.States {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		districts, err := g.source.Load(ctx, st)
		if err != nil {
			return nil, fmt.Errorf("generator: load %s: %w", st.Name, err)
		}
		logger.L().Info("districts_found", "state", st.Name, "count", len(districts))
		for _, d := range districts {
			n := sy.Count()
			res.Records = append(res.Records, sy.District(st, d, n)...)
			res.Districts = append(res.Districts, DistrictCount{State: st.Name, District: d.Name, Count: n})
			logger.L().Info("district_generated", "state", st.Name, "district", d.Name, "count", n)
		}
	}
	return res, nil
}
