// Package entity defines the renderable unit the pipeline produces: a
// normalized object with a resolved world transform. Entities carry no
// rendering-engine types; the shape factory's handle hides behind Renderable
// so the whole pipeline stays testable without a GPU.
package entity

import (
	"github.com/google/uuid"

	"dreamscene/internal/geom"
	"dreamscene/internal/normalize"
)

// Renderable is the pipeline's view of whatever the shape factory produced.
// LocalBounds returns the local-space box of the geometry; ok is false for
// handles with no intrinsic geometry (pure grouping containers).
type Renderable interface {
	LocalBounds() (box geom.AABB, ok bool)
}

// Transform is a world-space position, Euler rotation (radians), and
// per-axis scale.
type Transform struct {
	Position geom.Vec3
	Rotation geom.Vec3
	Scale    geom.Vec3
}

// ParentAnchor records where an attached entity resolved to.
type ParentAnchor struct {
	BodyID string
	Anchor normalize.Anchor
}

// Entity is one placed, renderable scene object.
type Entity struct {
	ID   string
	Name string
	Type string
	Role normalize.Role

	Transform Transform

	// Parent is nil for scene-level entities.
	Parent *ParentAnchor

	// Shape is the factory handle; nil means the entity is a grouping
	// container with no geometry of its own.
	Shape Renderable

	Color    uint32
	Children []*Entity

	// Rest and RestScale are the resolved transform before animation
	// displaces it; the per-frame spin/orbit/pulse update works relative
	// to them, never feeding back into resolution.
	Rest      geom.Vec3
	RestScale geom.Vec3
	Animation *normalize.Animation
}

// New returns an entity with a fresh id and the given normalized identity.
func New(name, typ string, role normalize.Role) *Entity {
	return &Entity{
		ID:   uuid.NewString(),
		Name: name,
		Type: typ,
		Role: role,
	}
}

// WorldBounds returns the world-space box of the entity: local bounds scaled
// and translated by the transform when geometry exists, otherwise a unit box
// (±1 per axis) around the position so containers still influence framing.
// ok is false when the shape reports a non-finite box.
func (e *Entity) WorldBounds() (geom.AABB, bool) {
	pos := e.Transform.Position
	if e.Shape == nil {
		return geom.NewAABB(
			geom.Vec3{X: pos.X - 1, Y: pos.Y - 1, Z: pos.Z - 1},
			geom.Vec3{X: pos.X + 1, Y: pos.Y + 1, Z: pos.Z + 1},
		), true
	}
	local, ok := e.Shape.LocalBounds()
	if !ok {
		// Geometry exists but exposes no box; same unit-box treatment.
		return geom.NewAABB(
			geom.Vec3{X: pos.X - 1, Y: pos.Y - 1, Z: pos.Z - 1},
			geom.Vec3{X: pos.X + 1, Y: pos.Y + 1, Z: pos.Z + 1},
		), true
	}
	if !local.IsFinite() {
		return geom.AABB{}, false
	}
	s := e.Transform.Scale
	if s.X == 0 {
		s.X = 1
	}
	if s.Y == 0 {
		s.Y = 1
	}
	if s.Z == 0 {
		s.Z = 1
	}
	sz := local.Size()
	half := geom.Vec3{X: sz.X * 0.5 * s.X, Y: sz.Y * 0.5 * s.Y, Z: sz.Z * 0.5 * s.Z}
	c := local.Center()
	center := geom.Vec3{X: pos.X + c.X*s.X, Y: pos.Y + c.Y*s.Y, Z: pos.Z + c.Z*s.Z}
	box := geom.NewAABB(
		geom.Vec3{X: center.X - half.X, Y: center.Y - half.Y, Z: center.Z - half.Z},
		geom.Vec3{X: center.X + half.X, Y: center.Y + half.Y, Z: center.Z + half.Z},
	)
	if !box.IsFinite() {
		return geom.AABB{}, false
	}
	return box, true
}
