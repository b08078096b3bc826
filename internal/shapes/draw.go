package shapes

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"dreamscene/internal/entity"
)

// cached is one GPU mesh + material pair, created on first draw so GL
// resources come into being after the window exists.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

type viewState struct {
	lightDir [3]float32
}

// defaultLightDir points from above and slightly behind the default camera.
var defaultLightDir = [3]float32{0.4, 1, 0.6}

// SetLight sets the direction-to-light used by every lit shape. Call once
// per frame before drawing; a zero vector keeps the previous value.
func (f *Factory) SetLight(dir [3]float32) {
	if dir[0] == 0 && dir[1] == 0 && dir[2] == 0 {
		return
	}
	f.view.lightDir = dir
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragNormal;
void main() {
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * matModel * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
out vec4 finalColor;
void main() {
  float ndl = max(dot(normalize(fragNormal), normalize(lightDir)), 0.0);
  vec3 lit = colDiffuse.rgb * (0.35 + 0.65 * ndl);
  finalColor = vec4(lit, colDiffuse.a);
}
`
)

// ensureMesh creates the mesh+material for spec if not yet cached.
func (f *Factory) ensureMesh(spec meshSpec) (cached, bool) {
	if c, ok := f.cache[spec.key()]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch spec.kind {
	case "cube":
		mesh = rl.GenMeshCube(1, 1, 1)
	case "sphere":
		mesh = rl.GenMeshSphere(spec.a, int(spec.s1), int(spec.s2))
	case "hemisphere":
		mesh = rl.GenMeshHemiSphere(spec.a, int(spec.s1), int(spec.s2))
	case "cylinder":
		mesh = rl.GenMeshCylinder(spec.a, spec.b, int(spec.s1))
	case "cone":
		mesh = rl.GenMeshCone(spec.a, spec.b, int(spec.s1))
	case "torus":
		mesh = rl.GenMeshTorus(spec.b, spec.a*2, int(spec.s1), int(spec.s2))
	case "plane":
		mesh = rl.GenMeshPlane(spec.a, spec.b, int(spec.s1), int(spec.s2))
	case "poly":
		mesh = rl.GenMeshPoly(int(spec.s1), spec.a)
	case "knot":
		mesh = rl.GenMeshKnot(spec.a, spec.b*2, int(spec.s1), int(spec.s2))
	default:
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	c := cached{mesh: mesh, mtl: mtl}
	f.cache[spec.key()] = c
	return c, true
}

// rgb unpacks a packed 0xRRGGBB color into a raylib color.
func rgb(packed uint32) rl.Color {
	return rl.NewColor(
		uint8(packed>>16&0xFF),
		uint8(packed>>8&0xFF),
		uint8(packed&0xFF),
		255,
	)
}

// Draw renders one entity. Must be called between BeginMode3D and
// EndMode3D. Entities without a *Handle shape (containers, stub shapes in
// tests) draw nothing.
func (f *Factory) Draw(e *entity.Entity) {
	h, ok := e.Shape.(*Handle)
	if !ok || h == nil {
		return
	}
	c, ok := f.ensureMesh(h.spec)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rgb(e.Color)
	}
	light := f.view.lightDir
	if light == ([3]float32{}) {
		light = defaultLightDir
	}
	if loc := rl.GetShaderLocation(c.mtl.Shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(c.mtl.Shader, loc, light[:], rl.ShaderUniformVec3, 1)
	}

	tr := e.Transform
	sx := h.dims.X * nonZero(tr.Scale.X)
	sy := h.dims.Y * nonZero(tr.Scale.Y)
	sz := h.dims.Z * nonZero(tr.Scale.Z)

	transform := composeTransform(h, tr, sx, sy, sz)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

func composeTransform(h *Handle, tr entity.Transform, sx, sy, sz float32) rl.Matrix {
	// Applied left to right: center the mesh, scale, rotate, translate.
	m := rl.MatrixScale(sx, sy, sz)
	if h.centerOffset.X != 0 || h.centerOffset.Y != 0 || h.centerOffset.Z != 0 {
		off := rl.MatrixTranslate(h.centerOffset.X, h.centerOffset.Y, h.centerOffset.Z)
		m = rl.MatrixMultiply(off, m)
	}
	if tr.Rotation.X != 0 || tr.Rotation.Y != 0 || tr.Rotation.Z != 0 {
		rot := rl.MatrixRotateXYZ(rl.NewVector3(tr.Rotation.X, tr.Rotation.Y, tr.Rotation.Z))
		m = rl.MatrixMultiply(m, rot)
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(tr.Position.X, tr.Position.Y, tr.Position.Z))
}

func nonZero(s float32) float32 {
	if s == 0 {
		return 1
	}
	return s
}
