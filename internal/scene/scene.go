package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"dreamscene/internal/camera"
	"dreamscene/internal/entity"
	"dreamscene/internal/motion"
	"dreamscene/internal/pipeline"
	"dreamscene/internal/shapes"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

// Scene holds the current generation's renderable state: the entity set,
// the framed camera, and the background color. A new generation replaces
// everything via SetResult; nothing persists across scenes.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	factory    *shapes.Factory
	entities   []*entity.Entity
	background rl.Color
	elapsed    float32
}

// New returns an empty scene with the default camera pose, so the window
// shows a recognizable (gridded, lit) view before the first generation.
func New(factory *shapes.Factory) *Scene {
	s := &Scene{
		factory:     factory,
		GridVisible: true,
		background:  rl.NewColor(16, 16, 32, 255),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.ApplyPose(camera.DefaultPose)
	return s
}

// ApplyPose points the camera per the framer's output.
func (s *Scene) ApplyPose(p camera.Pose) {
	s.Camera.Position = rl.NewVector3(p.Position.X, p.Position.Y, p.Position.Z)
	s.Camera.Target = rl.NewVector3(p.LookAt.X, p.LookAt.Y, p.LookAt.Z)
}

// SetResult installs a fresh generation: previous entities and anchors are
// discarded wholesale, the camera re-frames, and animation time restarts.
func (s *Scene) SetResult(res pipeline.Result) {
	s.entities = res.Entities
	s.elapsed = 0
	s.background = rl.NewColor(
		uint8(res.Background>>16&0xFF),
		uint8(res.Background>>8&0xFF),
		uint8(res.Background&0xFF),
		255,
	)
	s.ApplyPose(res.Camera)
}

// Reset drops all entities and restores the default view.
func (s *Scene) Reset() {
	s.entities = nil
	s.elapsed = 0
	s.ApplyPose(camera.DefaultPose)
}

// Entities returns the current renderable set. The render loop only reads
// transforms through motion.Advance; nothing else mutates them.
func (s *Scene) Entities() []*entity.Entity {
	return s.entities
}

// Background returns the clear color for the current scene.
func (s *Scene) Background() rl.Color {
	return s.background
}

// Update advances animations by dt seconds and, when freeCamera is set,
// lets raylib's free camera consume mouse/keyboard input.
func (s *Scene) Update(dt float32, freeCamera bool) {
	s.elapsed += dt
	motion.Advance(s.entities, s.elapsed)
	if freeCamera {
		rl.UpdateCamera(&s.Camera, rl.CameraFree)
	}
}

// Draw renders the 3D scene: grid first, then every entity. Call between
// BeginDrawing and EndDrawing; ClearBackground with Background() first.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawEditorGrid()
	}
	for _, e := range s.entities {
		s.factory.Draw(e)
	}
	rl.EndMode3D()
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
