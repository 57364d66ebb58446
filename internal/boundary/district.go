// 包 boundary：区县边界来源（文件 / PostgreSQL），把各邦 GeoJSON 解析为具名区县集合
package boundary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fra-patta/internal/config"
	"fra-patta/internal/geom"

	"github.com/paulmach/orb/geojson"
)

var (
	ErrNoDocument = errors.New("boundary: no document for state")
	ErrGeometry   = errors.New("boundary: invalid district geometry")
)

// 区县名属性键，按优先级排列，首个非空值胜出
var nameKeys = []string{"dtname", "DISTRICT", "district"}

// District：具名区县与其边界
type District struct {
	Name  string
	Shape geom.Shape
}

// Source：按邦加载区县集合
type Source interface {
	Load(ctx context.Context, st config.State) ([]District, error)
}

// 文档注释：解析 FeatureCollection 为区县列表
// 背景：文件与数据库两种来源共用；区县顺序与要素顺序一致。
// 约束：缺少区县名的要素跳过并计数；具名要素的几何非 Polygon/MultiPolygon 时整体失败。
func ParseDistricts(doc []byte, backend geom.Backend) ([]District, int, error) {
	fc, err := geojson.UnmarshalFeatureCollection(doc)
	if err != nil {
		return nil, 0, fmt.Errorf("boundary: parse feature collection: %w", err)
	}
	var out []District
	skipped := 0
	for i, f := range fc.Features {
		name := districtName(f.Properties)
		if name == "" {
			skipped++
			continue
		}
		shape, err := geom.FromOrb(f.Geometry, backend)
		if err != nil {
			return nil, skipped, fmt.Errorf("%w: feature %d (%s): %v", ErrGeometry, i, name, err)
		}
		out = append(out, District{Name: name, Shape: shape})
	}
	return out, skipped, nil
}

func districtName(p geojson.Properties) string {
	for _, k := range nameKeys {
		if v, ok := p[k].(string); ok {
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		}
	}
	return ""
}
