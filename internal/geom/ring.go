package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// 文档注释：射线法后端（Even-Odd）
// 背景：不依赖 orb 的判定实现，便于对照验证；多面与洞以环列表表达，第一环为外环，其余为洞。
// 约束：落在外环边上视为命中；落在洞边上视为不命中。
type ringShape struct {
	parts []ringPoly
	bound Bound
}

type ringPoly struct {
	rings [][]orb.Point
	bbox  Bound
}

func newRingShape(mp orb.MultiPolygon) *ringShape {
	s := &ringShape{bound: Bound{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}}
	for _, p := range mp {
		if len(p) == 0 || len(p[0]) == 0 {
			continue
		}
		rp := ringPoly{bbox: computeBBox(p[0])}
		for _, r := range p {
			rp.rings = append(rp.rings, []orb.Point(r))
		}
		s.parts = append(s.parts, rp)
		s.bound = union(s.bound, rp.bbox)
	}
	return s
}

func (s *ringShape) Bounds() Bound { return s.bound }

func (s *ringShape) Contains(x, y float64) bool {
	for _, p := range s.parts {
		if !p.bbox.Contains(x, y) {
			continue
		}
		if pointInPoly(x, y, p.rings) {
			return true
		}
	}
	return false
}

// Centroid：按面积加权的质心，洞按负面积计入
func (s *ringShape) Centroid() (float64, float64) {
	var cx, cy, total float64
	for _, p := range s.parts {
		for i, r := range p.rings {
			a, x, y := ringCentroidArea(r)
			a = math.Abs(a)
			if i > 0 {
				a = -a
			}
			cx += x * a
			cy += y * a
			total += a
		}
	}
	if total == 0 || math.IsNaN(total) {
		return s.bound.Center()
	}
	return cx / total, cy / total
}

func pointInPoly(x, y float64, rings [][]orb.Point) bool {
	if len(rings) == 0 {
		return false
	}
	if !pointInRing(x, y, rings[0]) {
		return false
	}
	for i := 1; i < len(rings); i++ {
		if pointInRing(x, y, rings[i]) {
			return false
		}
	}
	return true
}

// 射线法判定点是否在环内，边上的点直接判为命中
func pointInRing(x, y float64, ring []orb.Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if onSegment(x, y, xi, yi, xj, yj) {
			return true
		}
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

func onSegment(x, y, x1, y1, x2, y2 float64) bool {
	cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
	if cross != 0 {
		return false
	}
	return x >= math.Min(x1, x2) && x <= math.Max(x1, x2) && y >= math.Min(y1, y2) && y <= math.Max(y1, y2)
}

// 鞋带公式：返回有符号面积与环质心
func ringCentroidArea(r []orb.Point) (float64, float64, float64) {
	n := len(r)
	if n < 3 {
		return 0, 0, 0
	}
	var a, cx, cy float64
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		f := r[j][0]*r[i][1] - r[i][0]*r[j][1]
		a += f
		cx += (r[j][0] + r[i][0]) * f
		cy += (r[j][1] + r[i][1]) * f
	}
	a /= 2
	if a == 0 {
		return 0, 0, 0
	}
	return a, cx / (6 * a), cy / (6 * a)
}

func computeBBox(r orb.Ring) Bound {
	b := Bound{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, pt := range r {
		b.MinX = math.Min(b.MinX, pt[0])
		b.MinY = math.Min(b.MinY, pt[1])
		b.MaxX = math.Max(b.MaxX, pt[0])
		b.MaxY = math.Max(b.MaxY, pt[1])
	}
	return b
}

func union(a, b Bound) Bound {
	return Bound{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}
