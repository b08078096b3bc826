// Package pipeline runs the full scene build: untrusted description in,
// renderable entity set plus camera pose out. Every stage is a total
// function over the previous stage's complete output; the whole chain is
// synchronous and cannot fail past the batch boundary.
package pipeline

import (
	"dreamscene/internal/attach"
	"dreamscene/internal/bounds"
	"dreamscene/internal/camera"
	"dreamscene/internal/describe"
	"dreamscene/internal/entity"
	"dreamscene/internal/logger"
	"dreamscene/internal/normalize"
	"dreamscene/internal/sanitize"
)

// Result is everything one generation produced. Diags carry per-object
// degradations; they are informational, never fatal.
type Result struct {
	Entities   []*entity.Entity
	Camera     camera.Pose
	Background uint32
	Diags      []attach.Diag

	// DroppedNonObjects counts raw list entries that were not objects at
	// all (strings, numbers, null) and were skipped before resolution.
	DroppedNonObjects int
}

// Build normalizes, resolves, bounds, and frames the description. log may
// be nil; diagnostics are still collected in the Result. Build never returns
// an error: batch-level structural problems are rejected earlier by
// describe.Decode, and everything after that degrades per object.
func Build(desc *describe.Description, factory attach.Factory, log *logger.Logger) Result {
	var res Result

	objs := make([]*normalize.Object, 0, len(desc.Objects))
	for i, raw := range desc.Objects {
		obj := normalize.Normalize(raw)
		if obj == nil {
			res.DroppedNonObjects++
			if log != nil {
				log.Debugf("object %d dropped: not an object (%T)", i, raw)
			}
			continue
		}
		objs = append(objs, obj)
	}

	roots, graph, rootDiags := attach.ResolveRoots(objs, factory)
	attached, attachDiags := attach.ResolveAttachments(objs, graph, roots, factory)

	res.Entities = append(res.Entities, roots...)
	res.Entities = append(res.Entities, attached...)
	res.Diags = append(res.Diags, rootDiags...)
	res.Diags = append(res.Diags, attachDiags...)
	if log != nil {
		for _, d := range res.Diags {
			log.Warnf("%s", d)
		}
	}

	box := bounds.Compute(res.Entities)
	if box == nil && log != nil && len(res.Entities) > 0 {
		log.Warnf("no usable bounds for %d entities; using default camera", len(res.Entities))
	}
	res.Camera = camera.Frame(box)
	res.Background = sanitize.Color(desc.Background)
	return res
}
