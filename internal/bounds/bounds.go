// Package bounds accumulates a world-space box over a set of entities so the
// camera can frame everything at once.
package bounds

import (
	"dreamscene/internal/entity"
	"dreamscene/internal/geom"
)

// Compute returns the aggregate axis-aligned box of all entities, or nil
// when there is nothing to frame. Entities whose bounds come back non-finite
// are excluded from framing only; they still render. If every entity had to
// be excluded the result is nil, never a corrupt box.
func Compute(entities []*entity.Entity) *geom.AABB {
	var acc *geom.AABB
	for _, e := range entities {
		box, ok := e.WorldBounds()
		if !ok || !box.IsFinite() {
			continue
		}
		if acc == nil {
			b := box
			acc = &b
			continue
		}
		merged := acc.Expand(box)
		*acc = merged
	}
	if acc != nil && !acc.IsFinite() {
		return nil
	}
	return acc
}
