// Package motion advances entity animations. It only rewrites transforms
// from each entity's rest pose and elapsed time; it never re-enters
// normalization or attachment, so the render loop can call it every frame.
package motion

import (
	"github.com/chewxy/math32"

	"dreamscene/internal/entity"
	"dreamscene/internal/geom"
)

// Advance sets each animated entity's transform for time t (seconds since
// the scene was built). Entities without an animation descriptor are left
// untouched. Deterministic: the pose depends only on rest state and t.
func Advance(entities []*entity.Entity, t float32) {
	for _, e := range entities {
		a := e.Animation
		if a == nil {
			continue
		}
		e.Transform.Rotation = geom.Vec3{
			X: a.SpinX * t,
			Y: a.SpinY * t,
			Z: a.SpinZ * t,
		}
		pos := e.Rest
		if a.OrbitRadius > 0 && a.OrbitSpeed != 0 {
			angle := a.OrbitSpeed * t
			c := math32.Cos(angle) * a.OrbitRadius
			s := math32.Sin(angle) * a.OrbitRadius
			switch a.OrbitAxis {
			case "x":
				pos = pos.Add(geom.Vec3{Y: c, Z: s})
			case "z":
				pos = pos.Add(geom.Vec3{X: c, Y: s})
			default: // "y"
				pos = pos.Add(geom.Vec3{X: c, Z: s})
			}
		}
		e.Transform.Position = pos

		scale := e.RestScale
		if a.PulseAmplitude != 0 && a.PulseSpeed != 0 {
			// Clamp so a hostile amplitude cannot invert or zero the shape.
			amp := math32.Min(math32.Abs(a.PulseAmplitude), 0.9)
			factor := 1 + amp*math32.Sin(a.PulseSpeed*t)
			scale = geom.Vec3{X: scale.X * factor, Y: scale.Y * factor, Z: scale.Z * factor}
		}
		e.Transform.Scale = scale
	}
}
