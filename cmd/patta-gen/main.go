package main

import (
	"context"
	"os"
	"path/filepath"

	"fra-patta/internal/boundary"
	"fra-patta/internal/config"
	"fra-patta/internal/generator"
	"fra-patta/internal/geom"
	"fra-patta/internal/logger"
	"fra-patta/internal/metrics"
	"fra-patta/internal/report"
	"fra-patta/internal/sink"
	"fra-patta/internal/utils"

	"github.com/joho/godotenv"
)

// 文档注释：FRA 地契持有人数据集生成器
// 背景：读取各邦区县边界，为每个区县生成 10~20 条坐标落在区县内的合成记录，写出单个 CSV。
// 约束：配置来自 .env / 环境变量；任何加载或写出失败都以非零码退出。
func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	l := logger.Setup()

	cfg, err := config.FromEnv()
	if err != nil {
		l.Error("config_error", "err", err)
		os.Exit(1)
	}
	backend, err := geom.ParseBackend(cfg.GeomBackend)
	if err != nil {
		l.Error("config_error", "err", err)
		os.Exit(1)
	}
	l.Info("patta_gen_start", "states", len(cfg.States), "input", cfg.InputDir, "output", cfg.OutputPath, "backend", backend, "source", cfg.BoundarySource)

	var src boundary.Source
	switch cfg.BoundarySource {
	case "file":
		src = &boundary.FileSource{Dir: cfg.InputDir, Backend: backend}
	case "postgres":
		db, err := utils.OpenPostgresFromEnv()
		if err != nil {
			l.Error("db_open_error", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := &boundary.PGSource{DB: db, Backend: backend}
		if rc := utils.OpenRedisFromEnv(); rc != nil {
			defer rc.Close()
			if err := rc.Ping(context.Background()).Err(); err != nil {
				l.Warn("redis_ping_error", "err", err)
			} else {
				pg.Cache = boundary.NewRedisCache(rc, cfg.CacheTTLSeconds)
			}
		} else {
			l.Info("redis_disabled")
		}
		src = pg
	default:
		l.Error("config_error", "err", "unknown BOUNDARY_SOURCE", "value", cfg.BoundarySource)
		os.Exit(1)
	}

	res, err := generator.New(cfg, src, generator.NewRand(cfg)).Run(context.Background())
	if err != nil {
		l.Error("generate_error", "err", err)
		os.Exit(1)
	}
	if err := sink.WriteCSV(res.Records, cfg.OutputPath); err != nil {
		l.Error("output_error", "path", cfg.OutputPath, "err", err)
		os.Exit(1)
	}
	if err := report.Summarize(res.Records, cfg.StateNames()).Print(os.Stdout); err != nil {
		l.Warn("summary_print_error", "err", err)
	}
	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			l.Warn("metrics_textfile_error", "path", cfg.MetricsTextfile, "err", err)
		}
	}
	l.Info("patta_gen_done", "records", len(res.Records), "districts", len(res.Districts))
}
