package vmath

import "math"

// Ray is a half-line from Origin along Direction
// Direction need not be normalized, hit distance is in Direction units
type Ray struct {
	Origin    Vec3F
	Direction Vec3F
}

// AABB is an axis-aligned bounding box
type AABB struct {
	Min, Max Vec3F
}

// BoxAround returns the cube of edge size centered on c
func BoxAround(c Vec3F, size float64) AABB {
	h := size / 2
	return AABB{
		Min: Vec3F{c.X - h, c.Y - h, c.Z - h},
		Max: Vec3F{c.X + h, c.Y + h, c.Z + h},
	}
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p Vec3F) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Center returns the box midpoint
func (b AABB) Center() Vec3F {
	return V3FScale(V3FAdd(b.Min, b.Max), 0.5)
}

// RayHitsAABB is the slab test
// Returns false for boxes entirely behind the origin; an origin inside the box is a hit
// Pure function, no allocation
func RayHitsAABB(r Ray, b AABB) bool {
	_, ok := RayAABBDistance(r, b)
	return ok
}

// RayAABBDistance returns the entry distance along the ray (0 when origin is inside)
func RayAABBDistance(r Ray, b AABB) (float64, bool) {
	tMin := 0.0
	tMax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			// Parallel to slab: must already be within it
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
