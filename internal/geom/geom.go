package geom

import "github.com/chewxy/math32"

// Vec3 is a 3D point or direction in world units (Y up).
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o component-wise.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// IsFinite reports whether all three components are finite (no NaN, no ±Inf).
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// AABB is an axis-aligned bounding box: Min and Max corners in world space.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB returns the box spanning min..max. Components are not reordered;
// callers build boxes from center ± half extents so Min <= Max holds.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return Vec3{
		(b.Min.X + b.Max.X) * 0.5,
		(b.Min.Y + b.Max.Y) * 0.5,
		(b.Min.Z + b.Max.Z) * 0.5,
	}
}

// Size returns the per-axis extent (Max - Min).
func (b AABB) Size() Vec3 {
	return Vec3{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z}
}

// MaxExtent returns the largest per-axis extent.
func (b AABB) MaxExtent() float32 {
	s := b.Size()
	return math32.Max(s.X, math32.Max(s.Y, s.Z))
}

// IsFinite reports whether both corners are finite.
func (b AABB) IsFinite() bool {
	return b.Min.IsFinite() && b.Max.IsFinite()
}

// Expand grows the box to include other. Expanding an empty accumulator is
// handled by the caller starting from the first valid box.
func (b AABB) Expand(other AABB) AABB {
	return AABB{
		Min: Vec3{
			math32.Min(b.Min.X, other.Min.X),
			math32.Min(b.Min.Y, other.Min.Y),
			math32.Min(b.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			math32.Max(b.Max.X, other.Max.X),
			math32.Max(b.Max.Y, other.Max.Y),
			math32.Max(b.Max.Z, other.Max.Z),
		},
	}
}
