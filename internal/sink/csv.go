// 包 sink：把记录写成单个 CSV 文件，每次运行整体替换
package sink

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fra-patta/internal/logger"
	"fra-patta/internal/patta"
)

// 文档注释：原子写出 CSV
// 背景：先写同目录临时文件，fsync 后改名覆盖目标；失败时目标文件保持原样，不会出现半截输出。
// 约束：父目录按需创建；临时文件在任何失败路径上都会删除。
func WriteCSV(records []patta.Record, path string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("sink: create dir: %w", err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("sink: create temp: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	w := csv.NewWriter(f)
	if err = w.Write(patta.Header); err != nil {
		return fmt.Errorf("sink: write header: %w", err)
	}
	for _, r := range records {
		if err = w.Write(r.Row()); err != nil {
			return fmt.Errorf("sink: write %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("sink: flush: %w", err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sink: sync: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("sink: close: %w", err)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("sink: chmod: %w", err)
	}

	if _, statErr := os.Stat(path); statErr == nil {
		logger.L().Info("output_replace", "path", path)
	} else if !errors.Is(statErr, os.ErrNotExist) {
		logger.L().Warn("output_stat_error", "path", path, "err", statErr)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("sink: rename: %w", err)
	}
	logger.L().Info("output_written", "path", path, "rows", len(records))
	return nil
}
