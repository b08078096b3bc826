// Package camera derives a viewing pose from a scene bounding box. The pose
// always shows the whole scene; a nil box gets a fixed default so an empty
// scene still looks like a working renderer, not a black screen.
package camera

import (
	"github.com/chewxy/math32"

	"dreamscene/internal/geom"
)

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position geom.Vec3
	LookAt   geom.Vec3
}

// DefaultPose is used when there is nothing to frame.
var DefaultPose = Pose{
	Position: geom.Vec3{X: 0, Y: 20, Z: 40},
	LookAt:   geom.Vec3{},
}

// viewDir is the oblique elevated viewing direction; its components keep the
// framing balanced instead of top-down or side-on.
var viewDir = geom.Vec3{X: 0.7, Y: 0.6, Z: 0.7}

// distanceFactor scales the largest box extent into a camera distance that
// keeps the whole box inside the view frustum.
const distanceFactor float32 = 2

// minExtent floors the view distance so a single point-like object still
// gets a usable distance.
const minExtent float32 = 1

// Frame returns the pose that frames box. Pure and idempotent: the same box
// always yields the same pose. A nil box yields DefaultPose.
func Frame(box *geom.AABB) Pose {
	if box == nil {
		return DefaultPose
	}
	c := box.Center()
	extent := math32.Max(box.MaxExtent(), minExtent)
	distance := extent * distanceFactor
	return Pose{
		Position: c.Add(viewDir.Scale(distance)),
		LookAt:   c,
	}
}
