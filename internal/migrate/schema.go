package migrate

import (
	"database/sql"

	"fra-patta/internal/logger"
)

// 背景：边界导入工具首次运行时自动建表，生成器只读
// 约束：使用 IF NOT EXISTS 避免与既有结构冲突；document 以 JSONB 保存原始 FeatureCollection
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS _fra_boundaries (
            state TEXT PRIMARY KEY,
            code TEXT NOT NULL,
            document JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_fra_boundaries_code ON _fra_boundaries(code)`,
	}
	for i, s := range stmts {
		logger.L().Debug("schema_exec", "idx", i)
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	logger.L().Debug("schema_done")
	return nil
}
