package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"fra-patta/internal/boundary"
	"fra-patta/internal/config"
	"fra-patta/internal/logger"
	"fra-patta/internal/migrate"
	"fra-patta/internal/utils"

	"github.com/joho/godotenv"
)

// 文档注释：把各邦区县边界 GeoJSON 导入 PostgreSQL
// 背景：生成器以 BOUNDARY_SOURCE=postgres 运行时从 _fra_boundaries 读取；导入后失效对应的 Redis 缓存。
// 约束：读取 GEOJSON_DIR 下配置的邦文件；单个文件缺失或解析失败时跳过该邦并以非零码结束。
func main() {
	_ = godotenv.Load(".env")
	l := logger.Setup()
	l.Info("boundary_import_start")

	cfg, err := config.FromEnv()
	if err != nil {
		l.Error("config_error", "err", err)
		os.Exit(1)
	}
	db, err := utils.OpenPostgresFromEnv()
	if err != nil {
		l.Error("db_open_error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		l.Error("db_ping_error", "err", err)
		os.Exit(1)
	}
	if err := migrate.EnsureSchema(db); err != nil {
		l.Error("schema_error", "err", err)
		os.Exit(1)
	}

	var cache *boundary.RedisCache
	if rc := utils.OpenRedisFromEnv(); rc != nil {
		defer rc.Close()
		cache = boundary.NewRedisCache(rc, cfg.CacheTTLSeconds)
	}

	failed := 0
	for _, st := range cfg.States {
		fp := filepath.Join(cfg.InputDir, st.File)
		doc, err := os.ReadFile(fp)
		if err != nil {
			l.Error("boundary_read_error", "state", st.Name, "path", fp, "err", err)
			failed++
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := boundary.UpsertDocument(ctx, db, st, doc)
		if err == nil && cache != nil {
			if e := cache.Delete(ctx, boundary.CacheKey(st.Name)); e != nil {
				l.Warn("boundary_cache_delete_error", "state", st.Name, "err", e)
			}
		}
		cancel()
		if err != nil {
			l.Error("boundary_upsert_error", "state", st.Name, "err", err)
			failed++
			continue
		}
		l.Info("boundary_import_ok", "state", st.Name, "districts", n)
	}
	if failed > 0 {
		l.Error("boundary_import_done", "failed", failed)
		os.Exit(1)
	}
	l.Info("boundary_import_done", "states", len(cfg.States))
}
