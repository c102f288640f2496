package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestV3FLerpGeometricDecay(t *testing.T) {
	p := V3F(1, 8, 2)
	ground := V3F(1, 0, 2)

	p = V3FLerp(p, ground, 0.05)
	assert.InDelta(t, 7.6, p.Y, 1e-12)
	assert.Equal(t, 1.0, p.X)
	assert.Equal(t, 2.0, p.Z)

	for n := 2; n <= 50; n++ {
		prev := p.Y
		p = V3FLerp(p, V3F(p.X, 0, p.Z), 0.05)
		assert.Less(t, p.Y, prev)
		assert.InDelta(t, 8*math.Pow(0.95, float64(n)), p.Y, 1e-9)
		assert.Greater(t, p.Y, 0.0)
	}
}

func TestV3FNormalize(t *testing.T) {
	n := V3FNormalize(V3F(3, 0, 4))
	assert.InDelta(t, 1.0, V3FMag(n), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)

	assert.Equal(t, Vec3F{}, V3FNormalize(Vec3F{}))
}

func TestRayHitsAABB(t *testing.T) {
	box := BoxAround(V3F(0, 8, 4), 2)

	tests := []struct {
		name string
		ray  Ray
		want bool
	}{
		{"straight at center", Ray{V3F(0, 8, -20), V3F(0, 0, 1)}, true},
		{"grazing edge", Ray{V3F(1, 8, -20), V3F(0, 0, 1)}, true},
		{"just outside", Ray{V3F(1.01, 8, -20), V3F(0, 0, 1)}, false},
		{"pointing away", Ray{V3F(0, 8, -20), V3F(0, 0, -1)}, false},
		{"above", Ray{V3F(0, 12, -20), V3F(0, 0, 1)}, false},
		{"angled up into box", Ray{V3F(0, 2, -20), V3FNormalize(V3F(0, 6, 24))}, true},
		{"origin inside", Ray{V3F(0, 8, 4), V3F(1, 0, 0)}, true},
		{"box behind origin", Ray{V3F(0, 8, 10), V3F(0, 0, 1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RayHitsAABB(tt.ray, box))
		})
	}
}

func TestRayAABBDistance(t *testing.T) {
	box := BoxAround(V3F(0, 0, 10), 2)

	d, ok := RayAABBDistance(Ray{V3F(0, 0, 0), V3F(0, 0, 1)}, box)
	assert.True(t, ok)
	assert.InDelta(t, 9.0, d, 1e-12)

	d, ok = RayAABBDistance(Ray{V3F(0, 0, 10), V3F(0, 0, 1)}, box)
	assert.True(t, ok)
	assert.Equal(t, 0.0, d)
}

func TestAABBContains(t *testing.T) {
	box := BoxAround(V3F(0, 0, 0), 4)
	assert.True(t, box.Contains(V3F(2, -2, 0)))
	assert.False(t, box.Contains(V3F(2.1, 0, 0)))
	assert.True(t, V3FNear(box.Center(), Vec3F{}, 1e-12))
}
