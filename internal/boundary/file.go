package boundary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fra-patta/internal/config"
	"fra-patta/internal/geom"
	"fra-patta/internal/logger"
	"fra-patta/internal/metrics"
)

// FileSource：从数据目录读取 <Dir>/<State.File>
type FileSource struct {
	Dir     string
	Backend geom.Backend
}

func (s *FileSource) Load(_ context.Context, st config.State) ([]District, error) {
	fp := filepath.Join(s.Dir, st.File)
	logger.L().Info("state_load", "state", st.Name, "path", fp)
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("boundary: read %s: %w", st.Name, err)
	}
	return decode(st, b, s.Backend)
}

func decode(st config.State, doc []byte, backend geom.Backend) ([]District, error) {
	ds, skipped, err := ParseDistricts(doc, backend)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", st.Name, err)
	}
	if skipped > 0 {
		logger.L().Debug("features_skipped", "state", st.Name, "count", skipped)
		metrics.FeaturesSkipped.WithLabelValues(st.Name).Add(float64(skipped))
	}
	metrics.DistrictsLoaded.WithLabelValues(st.Name).Add(float64(len(ds)))
	return ds, nil
}
