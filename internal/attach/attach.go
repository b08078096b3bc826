// Package attach resolves the object hierarchy in two explicit passes:
// scene-level roots (registering body anchors) first, then attachments
// against the resulting anatomy graph. A failure while building one object
// never aborts the rest of the batch; each outcome is reported as a
// diagnostic instead of an error that escapes the loop.
package attach

import (
	"fmt"

	"dreamscene/internal/anatomy"
	"dreamscene/internal/entity"
	"dreamscene/internal/geom"
	"dreamscene/internal/normalize"
	"dreamscene/internal/sanitize"
)

// forwardBias nudges attached parts along +Z so a part sitting exactly on a
// body surface does not z-fight with it.
const forwardBias float32 = 0.05

// Factory builds geometry for a normalized object. It receives only
// sanitized values. It may return an error (e.g. unknown shape type) or a
// nil Renderable with nil error for container objects without geometry.
type Factory interface {
	Create(obj *normalize.Object) (entity.Renderable, error)
}

// Reason says why an object was skipped or degraded.
type Reason string

const (
	// ReasonFactoryError: geometry construction failed; object dropped.
	ReasonFactoryError Reason = "factory-error"
	// ReasonAnchorFallback: requested anchor not found; object placed at
	// scene origin instead of being dropped.
	ReasonAnchorFallback Reason = "anchor-fallback"
)

// Diag is one per-object diagnostic. Dropped is true only for objects that
// produced no entity.
type Diag struct {
	Name    string
	Type    string
	Reason  Reason
	Err     error
	Dropped bool
}

func (d Diag) String() string {
	if d.Err != nil {
		return fmt.Sprintf("%s %q (%s): %v", d.Reason, d.Name, d.Type, d.Err)
	}
	return fmt.Sprintf("%s %q (%s)", d.Reason, d.Name, d.Type)
}

// createShape calls the factory with panic containment: a panicking factory
// costs one object, not the batch.
func createShape(f Factory, obj *normalize.Object) (r entity.Renderable, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = nil
			err = fmt.Errorf("shape factory panic: %v", p)
		}
	}()
	return f.Create(obj)
}

// ResolveRoots processes every scene-level object: instantiates geometry at
// its literal position and registers bodies in a fresh anatomy graph.
// Objects with a non-scene attachTo are left for ResolveAttachments.
func ResolveRoots(objs []*normalize.Object, f Factory) ([]*entity.Entity, *anatomy.Graph, []Diag) {
	graph := anatomy.NewGraph()
	var roots []*entity.Entity
	var diags []Diag

	for _, obj := range objs {
		if obj == nil || obj.AttachTo != normalize.AnchorScene {
			continue
		}
		shape, err := createShape(f, obj)
		if err != nil {
			diags = append(diags, Diag{
				Name: obj.Name, Type: obj.Type,
				Reason: ReasonFactoryError, Err: err, Dropped: true,
			})
			continue
		}
		e := entity.New(obj.Name, obj.Type, obj.Role)
		e.Shape = shape
		e.Color = obj.Params.Color
		pos := geom.Vec3{X: obj.Params.X, Y: obj.Params.Y, Z: obj.Params.Z}
		s := obj.Params.Scale
		e.Transform = entity.Transform{
			Position: pos,
			Scale:    geom.Vec3{X: s, Y: s, Z: s},
		}
		e.Rest = pos
		e.RestScale = e.Transform.Scale
		e.Animation = obj.Animation

		if obj.Role == normalize.RoleBody {
			graph.Register(e.ID, e.Name, pos, s, anatomy.Humanoid(obj.Type, obj.Name))
		}
		roots = append(roots, e)
	}
	return roots, graph, diags
}

// ResolveAttachments processes every object with a non-scene attachTo
// against the graph built by ResolveRoots. A resolved attachment is placed
// at its anchor plus offset (with the forward bias) and scaled by its
// parent's scale times its own multiplier; it is also recorded as a child of
// the parent root entity. An unresolvable anchor degrades to scene-level
// placement rather than dropping the object.
func ResolveAttachments(objs []*normalize.Object, graph *anatomy.Graph, roots []*entity.Entity, f Factory) ([]*entity.Entity, []Diag) {
	byID := make(map[string]*entity.Entity, len(roots))
	for _, r := range roots {
		byID[r.ID] = r
	}

	var attached []*entity.Entity
	var diags []Diag

	for _, obj := range objs {
		if obj == nil || obj.AttachTo == normalize.AnchorScene {
			continue
		}
		shape, err := createShape(f, obj)
		if err != nil {
			diags = append(diags, Diag{
				Name: obj.Name, Type: obj.Type,
				Reason: ReasonFactoryError, Err: err, Dropped: true,
			})
			continue
		}
		e := entity.New(obj.Name, obj.Type, obj.Role)
		e.Shape = shape
		e.Color = obj.Params.Color
		e.Animation = obj.Animation

		anchorPos, body, ok := graph.Find(obj.AttachTo)
		if !ok {
			// Degraded but visible: scene origin plus the requested offset.
			pos := obj.Offset
			e.Transform = entity.Transform{
				Position: pos,
				Scale:    geom.Vec3{X: obj.Params.Scale, Y: obj.Params.Scale, Z: obj.Params.Scale},
			}
			e.Rest = pos
			e.RestScale = e.Transform.Scale
			diags = append(diags, Diag{
				Name: obj.Name, Type: obj.Type,
				Reason: ReasonAnchorFallback,
			})
			attached = append(attached, e)
			continue
		}

		pos := anchorPos.Add(obj.Offset)
		pos.Z += forwardBias
		s := sanitize.Scale(body.Scale * obj.ScaleMultiplier)
		e.Transform = entity.Transform{
			Position: pos,
			Scale:    geom.Vec3{X: s, Y: s, Z: s},
		}
		e.Rest = pos
		e.RestScale = e.Transform.Scale
		e.Parent = &entity.ParentAnchor{BodyID: body.ID, Anchor: obj.AttachTo}
		if parent, known := byID[body.ID]; known {
			parent.Children = append(parent.Children, e)
		}
		attached = append(attached, e)
	}
	return attached, diags
}
