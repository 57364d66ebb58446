package boundary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fra-patta/internal/config"
	"fra-patta/internal/geom"
	"fra-patta/internal/logger"
	"fra-patta/internal/metrics"

	_ "github.com/lib/pq"
)

// DocCache：边界文档缓存；读写失败由实现自行记录，不影响主流程
type DocCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, doc []byte)
}

// 文档注释：PostgreSQL 边界来源
// 背景：多台机器共用一份边界库时，由 boundary-import 写入 _fra_boundaries，生成器按邦读取。
// 约束：Cache 可为 nil；缓存命中时不访问数据库。
type PGSource struct {
	DB      *sql.DB
	Cache   DocCache
	Backend geom.Backend
}

func CacheKey(state string) string { return "fra:boundary:" + state }

func (s *PGSource) Load(ctx context.Context, st config.State) ([]District, error) {
	logger.L().Info("state_load", "state", st.Name, "source", "postgres")
	key := CacheKey(st.Name)
	if s.Cache != nil {
		if doc, ok := s.Cache.Get(ctx, key); ok {
			metrics.BoundaryCacheHits.Inc()
			logger.L().Debug("boundary_cache_hit", "state", st.Name)
			return decode(st, doc, s.Backend)
		}
		metrics.BoundaryCacheMisses.Inc()
	}
	doc, err := s.fetch(ctx, st.Name)
	if err != nil {
		return nil, err
	}
	ds, err := decode(st, doc, s.Backend)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.Set(ctx, key, doc)
	}
	return ds, nil
}

func (s *PGSource) fetch(ctx context.Context, state string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	var doc []byte
	err := s.DB.QueryRowContext(ctx, `SELECT document FROM _fra_boundaries WHERE state=$1`, state).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoDocument, state)
	}
	if err != nil {
		return nil, fmt.Errorf("boundary: query %s: %w", state, err)
	}
	return doc, nil
}

// 文档注释：写入或覆盖某邦的边界文档
// 约束：写库前先完整解析一遍，坏文档不入库。
func UpsertDocument(ctx context.Context, db *sql.DB, st config.State, doc []byte) (int, error) {
	ds, _, err := ParseDistricts(doc, geom.Orb)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", st.Name, err)
	}
	_, err = db.ExecContext(ctx, `INSERT INTO _fra_boundaries(state, code, document, updated_at) VALUES($1,$2,$3,now())
        ON CONFLICT (state) DO UPDATE SET code=EXCLUDED.code, document=EXCLUDED.document, updated_at=now()`,
		st.Name, st.Code, string(doc))
	if err != nil {
		return 0, fmt.Errorf("boundary: upsert %s: %w", st.Name, err)
	}
	return len(ds), nil
}
