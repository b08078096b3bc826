// Package normalize turns one untrusted object description into a fully
// defaulted, type-safe record. Normalization never fails for map input;
// only a non-object yields nil (the caller drops it and keeps the batch).
package normalize

import (
	"strings"

	"dreamscene/internal/geom"
	"dreamscene/internal/sanitize"
)

// Role classifies what an object is for; it drives anchor registration
// (body) and has no effect on geometry.
type Role string

const (
	RoleBody        Role = "body"
	RoleClothing    Role = "clothing"
	RoleAccessory   Role = "accessory"
	RoleEnvironment Role = "environment"
	RoleProp        Role = "prop"
	RoleDecoration  Role = "decoration"
)

// Anchor names where an object wants to be placed. AnchorScene means the
// object is scene-level; everything else resolves against a body's anchors.
type Anchor string

const (
	AnchorScene Anchor = "scene"
	AnchorHead  Anchor = "head"
	AnchorTorso Anchor = "torso"
	AnchorLegs  Anchor = "legs"
	AnchorArms  Anchor = "arms"
)

var validRoles = map[Role]bool{
	RoleBody: true, RoleClothing: true, RoleAccessory: true,
	RoleEnvironment: true, RoleProp: true, RoleDecoration: true,
}

var validAnchors = map[Anchor]bool{
	AnchorScene: true, AnchorHead: true, AnchorTorso: true,
	AnchorLegs: true, AnchorArms: true,
}

// Params holds every numeric parameter a shape can take, sanitized to its
// documented range. Unknown parameter keys pass through in Extra untouched
// so newer generators keep working against older factories.
type Params struct {
	X, Y, Z    float32
	X1, Y1, Z1 float32
	X2, Y2, Z2 float32

	Scale float32

	Radius       float32
	RadiusTop    float32
	RadiusBottom float32
	Width        float32
	Height       float32
	Depth        float32
	InnerRadius  float32
	OuterRadius  float32
	Size         float32
	Length       float32

	Tube       float32
	TubeRadius float32

	Intensity float32

	Sides     int32
	Divisions int32

	Color uint32

	Extra map[string]any
}

// Animation describes optional per-frame motion: spin rates in radians per
// second, an orbit around the object's rest position, or a scale pulse.
type Animation struct {
	SpinX, SpinY, SpinZ float32
	OrbitRadius         float32
	OrbitSpeed          float32
	OrbitAxis           string // "x", "y", or "z"; default "y"
	PulseAmplitude      float32
	PulseSpeed          float32
}

// Object is the normalized form of one scene object description.
// Every field has been defaulted or sanitized; no value is out of range.
type Object struct {
	Type            string
	Name            string
	Role            Role
	AttachTo        Anchor
	Params          Params
	ScaleMultiplier float32
	Offset          geom.Vec3
	Coverage        string
	Animation       *Animation
}

// dimensionMins maps each dimensional param key to its floor.
var dimensionMins = map[string]float32{
	"radius": 0.1, "radiusTop": 0.1, "radiusBottom": 0.1,
	"width": 0.1, "height": 0.1, "depth": 0.1,
	"innerRadius": 0.1, "outerRadius": 0.1, "size": 0.1, "length": 0.1,
	"tube": 0.05, "tubeRadius": 0.05,
}

// Normalize converts one raw decoded value into a normalized Object.
// Returns nil when raw is not a JSON object; everything else succeeds.
// Unknown shape types are kept as-is here: rejecting them is the shape
// factory's call, not the normalizer's.
func Normalize(raw any) *Object {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	obj := &Object{
		Type:            stringField(m, "type", "cube"),
		Role:            RoleEnvironment,
		AttachTo:        AnchorScene,
		ScaleMultiplier: sanitize.Scale(m["scaleMultiplier"]),
		Offset:          vec3Field(m["offset"]),
		Params:          normalizeParams(m["params"]),
	}
	obj.Name = stringField(m, "name", obj.Type)
	if r := Role(strings.ToLower(strings.TrimSpace(stringField(m, "role", "")))); validRoles[r] {
		obj.Role = r
	}
	if a := Anchor(strings.ToLower(strings.TrimSpace(stringField(m, "attachTo", "")))); validAnchors[a] {
		obj.AttachTo = a
	}
	if s, ok := m["coverage"].(string); ok {
		obj.Coverage = s
	}
	obj.Animation = normalizeAnimation(m["animation"])
	return obj
}

func stringField(m map[string]any, key, def string) string {
	s, ok := m[key].(string)
	if !ok {
		return def
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// vec3Field accepts [x,y,z] arrays and {x,y,z} maps; every component goes
// through the scalar sanitizer and defaults to 0.
func vec3Field(v any) geom.Vec3 {
	switch t := v.(type) {
	case []any:
		var out geom.Vec3
		if len(t) > 0 {
			out.X = sanitize.Scalar(t[0], 0)
		}
		if len(t) > 1 {
			out.Y = sanitize.Scalar(t[1], 0)
		}
		if len(t) > 2 {
			out.Z = sanitize.Scalar(t[2], 0)
		}
		return out
	case map[string]any:
		return geom.Vec3{
			X: sanitize.Scalar(t["x"], 0),
			Y: sanitize.Scalar(t["y"], 0),
			Z: sanitize.Scalar(t["z"], 0),
		}
	default:
		return geom.Vec3{}
	}
}

func normalizeParams(v any) Params {
	m, _ := v.(map[string]any)
	// m == nil is fine: every lookup misses and yields the field default.
	p := Params{
		X:  sanitize.Scalar(m["x"], 0),
		Y:  sanitize.Scalar(m["y"], 0),
		Z:  sanitize.Scalar(m["z"], 0),
		X1: sanitize.Scalar(m["x1"], 0),
		Y1: sanitize.Scalar(m["y1"], 0),
		Z1: sanitize.Scalar(m["z1"], 0),
		X2: sanitize.Scalar(m["x2"], 1),
		Y2: sanitize.Scalar(m["y2"], 1),
		Z2: sanitize.Scalar(m["z2"], 1),

		Scale: sanitize.Scale(m["scale"]),

		Radius:       sanitize.Dimension(m["radius"], 0.1),
		RadiusTop:    sanitize.Dimension(m["radiusTop"], 0.1),
		RadiusBottom: sanitize.Dimension(m["radiusBottom"], 0.1),
		Width:        sanitize.Dimension(m["width"], 0.1),
		Height:       sanitize.Dimension(m["height"], 0.1),
		Depth:        sanitize.Dimension(m["depth"], 0.1),
		InnerRadius:  sanitize.Dimension(m["innerRadius"], 0.1),
		OuterRadius:  sanitize.Dimension(m["outerRadius"], 0.1),
		Size:         sanitize.Dimension(m["size"], 0.1),
		Length:       sanitize.Dimension(m["length"], 0.1),

		Tube:       sanitize.Dimension(m["tube"], 0.05),
		TubeRadius: sanitize.Dimension(m["tubeRadius"], 0.05),

		Intensity: sanitize.Dimension(m["intensity"], 0.1),

		Sides:     sanitize.Count(m["sides"], 3),
		Divisions: sanitize.Count(m["divisions"], 3),

		Color: sanitize.Color(m["color"]),
	}
	for k, raw := range m {
		if knownParamKeys[k] {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any)
		}
		p.Extra[k] = raw
	}
	return p
}

var knownParamKeys = func() map[string]bool {
	keys := map[string]bool{
		"x": true, "y": true, "z": true,
		"x1": true, "y1": true, "z1": true,
		"x2": true, "y2": true, "z2": true,
		"scale": true, "intensity": true,
		"sides": true, "divisions": true, "color": true,
	}
	for k := range dimensionMins {
		keys[k] = true
	}
	return keys
}()

func normalizeAnimation(v any) *Animation {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	a := &Animation{
		SpinX:          sanitize.Scalar(m["spinX"], 0),
		SpinY:          sanitize.Scalar(m["spinY"], 0),
		SpinZ:          sanitize.Scalar(m["spinZ"], 0),
		OrbitRadius:    sanitize.Scalar(m["orbitRadius"], 0),
		OrbitSpeed:     sanitize.Scalar(m["orbitSpeed"], 0),
		OrbitAxis:      "y",
		PulseAmplitude: sanitize.Scalar(m["pulseAmplitude"], 0),
		PulseSpeed:     sanitize.Scalar(m["pulseSpeed"], 0),
	}
	if a.OrbitRadius < 0 {
		a.OrbitRadius = 0
	}
	switch axis, _ := m["orbitAxis"].(string); strings.ToLower(strings.TrimSpace(axis)) {
	case "x":
		a.OrbitAxis = "x"
	case "z":
		a.OrbitAxis = "z"
	}
	return a
}
