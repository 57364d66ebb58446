package geom

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() orb.Polygon {
	return orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
}

// 带洞正方形：外环 [0,4]x[0,4]，洞 [1,3]x[1,3]
func squareWithHole() orb.Polygon {
	return orb.Polygon{
		orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		orb.Ring{{1, 1}, {3, 1}, {3, 3}, {1, 3}, {1, 1}},
	}
}

func backends() []Backend { return []Backend{Orb, Ring} }

func TestUnitSquare(t *testing.T) {
	for _, b := range backends() {
		t.Run(string(b), func(t *testing.T) {
			s, err := FromOrb(unitSquare(), b)
			require.NoError(t, err)
			assert.Equal(t, Bound{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, s.Bounds())
			assert.True(t, s.Contains(0.5, 0.5))
			assert.True(t, s.Contains(0, 0.5), "outer edge counts as inside")
			assert.False(t, s.Contains(1.5, 0.5))
			x, y := s.Centroid()
			assert.InDelta(t, 0.5, x, 1e-9)
			assert.InDelta(t, 0.5, y, 1e-9)
		})
	}
}

func TestHole(t *testing.T) {
	for _, b := range backends() {
		t.Run(string(b), func(t *testing.T) {
			s, err := FromOrb(squareWithHole(), b)
			require.NoError(t, err)
			assert.True(t, s.Contains(0.5, 0.5))
			assert.False(t, s.Contains(2, 2))
			x, y := s.Centroid()
			assert.InDelta(t, 2, x, 1e-9)
			assert.InDelta(t, 2, y, 1e-9)
			// 对称带洞形状的质心落在洞里，属于已知的兜底局限
			assert.False(t, s.Contains(x, y))
		})
	}
}

func TestMultiPolygon(t *testing.T) {
	mp := orb.MultiPolygon{
		unitSquare(),
		{orb.Ring{{10, 10}, {11, 10}, {11, 11}, {10, 11}, {10, 10}}},
	}
	for _, b := range backends() {
		t.Run(string(b), func(t *testing.T) {
			s, err := FromOrb(mp, b)
			require.NoError(t, err)
			assert.Equal(t, Bound{MinX: 0, MinY: 0, MaxX: 11, MaxY: 11}, s.Bounds())
			assert.True(t, s.Contains(10.5, 10.5))
			assert.True(t, s.Contains(0.5, 0.5))
			assert.False(t, s.Contains(5, 5))
			x, y := s.Centroid()
			assert.InDelta(t, 5.5, x, 1e-9)
			assert.InDelta(t, 5.5, y, 1e-9)
		})
	}
}

func TestDegenerateCentroidFallsBackToBoundCenter(t *testing.T) {
	sliver := orb.Polygon{orb.Ring{{0, 0}, {2, 0}, {4, 0}, {0, 0}}}
	for _, b := range backends() {
		t.Run(string(b), func(t *testing.T) {
			s, err := FromOrb(sliver, b)
			require.NoError(t, err)
			x, y := s.Centroid()
			assert.True(t, s.Bounds().Contains(x, y))
		})
	}
}

func TestFromOrbRejects(t *testing.T) {
	_, err := FromOrb(orb.Point{1, 2}, Orb)
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = FromOrb(nil, Orb)
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = FromOrb(orb.Polygon{}, Ring)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend("")
	require.NoError(t, err)
	assert.Equal(t, Orb, b)
	b, err = ParseBackend("ring")
	require.NoError(t, err)
	assert.Equal(t, Ring, b)
	_, err = ParseBackend("shapely")
	assert.Error(t, err)
}
