// Package shapes is the shape factory: it turns a normalized object into a
// renderable handle backed by a raylib mesh. Handles are created without
// touching the GPU; meshes are generated lazily on first draw so the factory
// (and the whole pipeline) works before a window exists.
package shapes

import (
	"fmt"
	"strings"

	"dreamscene/internal/entity"
	"dreamscene/internal/geom"
	"dreamscene/internal/normalize"
)

// meshSpec identifies one concrete mesh. Specs with equal keys share the
// cached mesh, so a hundred equal spheres cost one GPU mesh.
type meshSpec struct {
	kind   string
	a, b   float32 // kind-specific dimensions baked into the mesh
	s1, s2 int32   // resolution (rings/slices or sides/segments)
}

func (s meshSpec) key() string {
	return fmt.Sprintf("%s:%g:%g:%d:%d", s.kind, s.a, s.b, s.s1, s.s2)
}

// Handle is the factory's renderable: a mesh spec plus per-instance extent
// scaling and an analytic local-space box. It implements entity.Renderable.
type Handle struct {
	spec meshSpec

	// dims scales the unit mesh into the requested world extents; applied
	// at draw time together with the entity's own scale.
	dims geom.Vec3

	// centerOffset shifts the mesh in model space before scaling so the
	// entity position is the shape's center (raylib cylinders and cones
	// have their base at Y=0).
	centerOffset geom.Vec3

	local geom.AABB
}

// LocalBounds returns the local-space box of the shape before the entity's
// transform. Always ok for geometric handles.
func (h *Handle) LocalBounds() (geom.AABB, bool) {
	return h.local, true
}

// Factory builds handles from the embedded catalog and owns the lazy mesh
// cache used at draw time.
type Factory struct {
	defs  map[string]Def
	cache map[string]cached
	view  viewState
}

// New returns a factory with the embedded catalog loaded. It fails only if
// the embedded catalog itself is broken, which is a build defect.
func New() (*Factory, error) {
	defs, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return &Factory{defs: defs, cache: make(map[string]cached)}, nil
}

// Create builds a handle for the object, using only already-sanitized
// values. Unknown types return an error: the resolver logs and skips that
// one object, the batch continues. A "none"-kind entry (grouping container)
// returns a nil handle with nil error.
func (f *Factory) Create(obj *normalize.Object) (entity.Renderable, error) {
	def, ok := f.defs[strings.ToLower(obj.Type)]
	if !ok {
		return nil, fmt.Errorf("unknown shape type %q", obj.Type)
	}
	p := obj.Params
	switch def.Kind {
	case "none":
		return nil, nil
	case "cube":
		return boxHandle(p.Width, p.Height, p.Depth), nil
	case "sphere":
		d := p.Radius * 2
		return &Handle{
			spec:  meshSpec{kind: "sphere", a: 0.5, s1: res(def.Rings, 16), s2: res(def.Slices, 16)},
			dims:  geom.Vec3{X: d, Y: d, Z: d},
			local: centeredBox(d, d, d),
		}, nil
	case "hemisphere":
		d := p.Radius * 2
		return &Handle{
			spec: meshSpec{kind: "hemisphere", a: 0.5, s1: res(def.Rings, 16), s2: res(def.Slices, 16)},
			dims: geom.Vec3{X: d, Y: d, Z: d},
			local: geom.NewAABB(
				geom.Vec3{X: -p.Radius, Y: 0, Z: -p.Radius},
				geom.Vec3{X: p.Radius, Y: p.Radius, Z: p.Radius},
			),
		}, nil
	case "cylinder":
		r := (p.RadiusTop + p.RadiusBottom) * 0.5
		if p.Radius > r {
			r = p.Radius
		}
		return &Handle{
			spec:         meshSpec{kind: "cylinder", a: 0.5, b: 1, s1: res(def.Slices, 16)},
			dims:         geom.Vec3{X: r * 2, Y: p.Height, Z: r * 2},
			centerOffset: geom.Vec3{Y: -0.5},
			local:        centeredBox(r*2, p.Height, r*2),
		}, nil
	case "cone":
		return &Handle{
			spec:         meshSpec{kind: "cone", a: 0.5, b: 1, s1: res(def.Slices, 16)},
			dims:         geom.Vec3{X: p.Radius * 2, Y: p.Height, Z: p.Radius * 2},
			centerOffset: geom.Vec3{Y: -0.5},
			local:        centeredBox(p.Radius*2, p.Height, p.Radius*2),
		}, nil
	case "torus":
		outer := p.Radius + p.Tube
		return &Handle{
			spec:  meshSpec{kind: "torus", a: p.Radius, b: p.Tube, s1: 24, s2: 16},
			dims:  geom.Vec3{X: 1, Y: 1, Z: 1},
			local: centeredBox(outer*2, p.Tube*2, outer*2),
		}, nil
	case "plane":
		return &Handle{
			spec:  meshSpec{kind: "plane", a: 1, b: 1, s1: 1, s2: 1},
			dims:  geom.Vec3{X: p.Width, Y: 1, Z: p.Depth},
			local: centeredBox(p.Width, 0.1, p.Depth),
		}, nil
	case "poly":
		r := p.OuterRadius
		if p.Radius > r {
			r = p.Radius
		}
		return &Handle{
			spec:  meshSpec{kind: "poly", a: r, s1: p.Sides},
			dims:  geom.Vec3{X: 1, Y: 1, Z: 1},
			local: centeredBox(r*2, 0.1, r*2),
		}, nil
	case "knot":
		outer := p.Radius + p.TubeRadius
		return &Handle{
			spec:  meshSpec{kind: "knot", a: p.TubeRadius, b: p.Radius, s1: 16, s2: 128},
			dims:  geom.Vec3{X: 1, Y: 1, Z: 1},
			local: centeredBox(outer*3, outer*3, outer*3),
		}, nil
	default:
		return nil, fmt.Errorf("shape catalog kind %q not implemented", def.Kind)
	}
}

func boxHandle(w, h, d float32) *Handle {
	return &Handle{
		spec:  meshSpec{kind: "cube", a: 1, b: 1},
		dims:  geom.Vec3{X: w, Y: h, Z: d},
		local: centeredBox(w, h, d),
	}
}

func centeredBox(w, h, d float32) geom.AABB {
	return geom.NewAABB(
		geom.Vec3{X: -w * 0.5, Y: -h * 0.5, Z: -d * 0.5},
		geom.Vec3{X: w * 0.5, Y: h * 0.5, Z: d * 0.5},
	)
}

func res(v, def int32) int32 {
	if v <= 0 {
		return def
	}
	return v
}
