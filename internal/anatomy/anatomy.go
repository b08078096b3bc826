// Package anatomy tracks the attachment anchors exposed by body entities.
// A Graph lives for exactly one generated scene: it is built while roots
// resolve, consulted while attachments resolve, and discarded with the scene.
package anatomy

import (
	"strings"

	"dreamscene/internal/geom"
	"dreamscene/internal/normalize"
)

// Anchor offsets along the up axis, as a fraction of the body's scale.
// A humanoid of scale 1 standing at the origin gets its head anchor at Y=1.2.
const (
	headOffset  float32 = 1.2
	torsoOffset float32 = 0.4
	legsOffset  float32 = -0.3
	armsOffset  float32 = 0.5
)

// Body is one registered body and its world-space anchor positions.
type Body struct {
	ID      string
	Name    string
	Root    geom.Vec3
	Scale   float32
	Anchors map[normalize.Anchor]geom.Vec3
}

// Graph maps registered bodies to their anchor sets. Registration order is
// preserved: when two bodies expose the same anchor name, the first
// registered wins. Not safe for concurrent use; the resolver runs
// single-threaded per generation.
type Graph struct {
	bodies []*Body
	byID   map[string]*Body
}

// NewGraph returns an empty anchor registry.
func NewGraph() *Graph {
	return &Graph{byID: make(map[string]*Body)}
}

// Humanoid reports whether a body should expose the full head/torso/legs/arms
// anchor set. Anything not recognizably human-shaped gets a single torso
// anchor at its root instead.
func Humanoid(typ, name string) bool {
	for _, s := range []string{strings.ToLower(typ), strings.ToLower(name)} {
		if strings.Contains(s, "human") || strings.Contains(s, "person") ||
			strings.Contains(s, "character") || strings.Contains(s, "figure") {
			return true
		}
	}
	return false
}

// Register adds a body and computes its anchor set from root and scale.
// Registering an already-known id recomputes that body's anchors in place
// (its registration order is kept).
func (g *Graph) Register(id, name string, root geom.Vec3, scale float32, humanoid bool) *Body {
	b, ok := g.byID[id]
	if !ok {
		b = &Body{ID: id, Name: name}
		g.bodies = append(g.bodies, b)
		g.byID[id] = b
	}
	b.Root = root
	b.Scale = scale
	b.Anchors = computeAnchors(root, scale, humanoid)
	return b
}

func computeAnchors(root geom.Vec3, scale float32, humanoid bool) map[normalize.Anchor]geom.Vec3 {
	if !humanoid {
		return map[normalize.Anchor]geom.Vec3{
			normalize.AnchorTorso: root,
		}
	}
	return map[normalize.Anchor]geom.Vec3{
		normalize.AnchorHead:  {X: root.X, Y: root.Y + headOffset*scale, Z: root.Z},
		normalize.AnchorTorso: {X: root.X, Y: root.Y + torsoOffset*scale, Z: root.Z},
		normalize.AnchorLegs:  {X: root.X, Y: root.Y + legsOffset*scale, Z: root.Z},
		normalize.AnchorArms:  {X: root.X, Y: root.Y + armsOffset*scale, Z: root.Z},
	}
}

// Find returns the world position of the first registered body exposing the
// given anchor, along with that body. ok is false when no body exposes it.
func (g *Graph) Find(anchor normalize.Anchor) (pos geom.Vec3, body *Body, ok bool) {
	for _, b := range g.bodies {
		if p, exposed := b.Anchors[anchor]; exposed {
			return p, b, true
		}
	}
	return geom.Vec3{}, nil, false
}

// Len returns the number of registered bodies.
func (g *Graph) Len() int {
	return len(g.bodies)
}
