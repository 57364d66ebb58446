package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// orbShape：基于 paulmach/orb 的后端
type orbShape struct {
	mp    orb.MultiPolygon
	bound Bound
}

func newOrbShape(mp orb.MultiPolygon) *orbShape {
	b := mp.Bound()
	return &orbShape{mp: mp, bound: Bound{MinX: b.Min.X(), MinY: b.Min.Y(), MaxX: b.Max.X(), MaxY: b.Max.Y()}}
}

func (s *orbShape) Bounds() Bound { return s.bound }

func (s *orbShape) Contains(x, y float64) bool {
	if !s.bound.Contains(x, y) {
		return false
	}
	return planar.MultiPolygonContains(s.mp, orb.Point{x, y})
}

func (s *orbShape) Centroid() (float64, float64) {
	c, area := planar.CentroidArea(s.mp)
	if area == 0 || math.IsNaN(c.X()) || math.IsNaN(c.Y()) {
		return s.bound.Center()
	}
	return c.X(), c.Y()
}
