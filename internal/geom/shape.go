// 包 geom：区县边界的几何能力抽象（包围盒 / 包含判定 / 质心）
// 背景：采样与合成逻辑只依赖 Shape 接口，几何后端可替换；默认使用 orb，ring 为自带射线法实现。
// 约束：平面坐标，X 为经度、Y 为纬度；仅支持 Polygon / MultiPolygon。
package geom

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

var (
	ErrUnsupported = errors.New("geom: unsupported geometry type")
	ErrEmpty       = errors.New("geom: empty polygon")
)

// Backend：几何后端名
type Backend string

const (
	Orb  Backend = "orb"
	Ring Backend = "ring"
)

// Bound：轴对齐包围盒
type Bound struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains：点是否落在包围盒内（含边）
func (b Bound) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Center：包围盒中心
func (b Bound) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// 文档注释：几何能力接口
// 约束：外环边界视为包含，洞的边界视为不包含；两个后端保持一致。
// Centroid 对退化（面积为 0）的形状返回包围盒中心。
type Shape interface {
	Bounds() Bound
	Contains(x, y float64) bool
	Centroid() (float64, float64)
}

// ParseBackend：解析后端名，空串回退到 orb
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case "", Orb:
		return Orb, nil
	case Ring:
		return Ring, nil
	}
	return "", fmt.Errorf("geom: unknown backend %q", s)
}

// FromOrb：把 orb 几何转换为指定后端的 Shape
func FromOrb(g orb.Geometry, b Backend) (Shape, error) {
	var mp orb.MultiPolygon
	switch v := g.(type) {
	case orb.Polygon:
		mp = orb.MultiPolygon{v}
	case orb.MultiPolygon:
		mp = v
	case nil:
		return nil, fmt.Errorf("%w: missing geometry", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, g.GeoJSONType())
	}
	if isEmpty(mp) {
		return nil, ErrEmpty
	}
	if b == Ring {
		return newRingShape(mp), nil
	}
	return newOrbShape(mp), nil
}

func isEmpty(mp orb.MultiPolygon) bool {
	for _, p := range mp {
		if len(p) > 0 && len(p[0]) > 0 {
			return false
		}
	}
	return true
}
