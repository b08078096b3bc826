package pipeline

import (
	"fmt"
	"testing"

	"dreamscene/internal/attach"
	"dreamscene/internal/describe"
	"dreamscene/internal/entity"
	"dreamscene/internal/geom"
	"dreamscene/internal/logger"
	"dreamscene/internal/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unitShape struct{}

func (unitShape) LocalBounds() (geom.AABB, bool) {
	return geom.NewAABB(geom.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}), true
}

type stubFactory struct{}

func (stubFactory) Create(obj *normalize.Object) (entity.Renderable, error) {
	if obj.Type == "broken" {
		return nil, fmt.Errorf("unknown shape type %q", obj.Type)
	}
	return unitShape{}, nil
}

func decode(t *testing.T, s string) *describe.Description {
	t.Helper()
	desc, err := describe.Decode([]byte(s))
	require.NoError(t, err)
	return desc
}

func TestEmptySceneGetsDefaultCamera(t *testing.T) {
	res := Build(decode(t, `{"objects":[]}`), stubFactory{}, nil)
	assert.Empty(t, res.Entities)
	assert.Equal(t, geom.Vec3{X: 0, Y: 20, Z: 40}, res.Camera.Position)
	assert.Equal(t, geom.Vec3{}, res.Camera.LookAt)
}

func TestBatchIsolationEndToEnd(t *testing.T) {
	log := logger.NewAt("")
	res := Build(decode(t, `{
		"objects": [
			{"type":"cube","params":{"x":1}},
			"not an object",
			null,
			{"type":"broken"}
		]
	}`), stubFactory{}, log)

	require.Len(t, res.Entities, 1)
	assert.Equal(t, 2, res.DroppedNonObjects)
	require.Len(t, res.Diags, 1)
	assert.Equal(t, attach.ReasonFactoryError, res.Diags[0].Reason)
	assert.NotEmpty(t, log.Lines())
}

func TestAnchorFallbackKeepsObject(t *testing.T) {
	res := Build(decode(t, `{
		"objects": [{"type":"cone","name":"hat","attachTo":"head"}]
	}`), stubFactory{}, nil)

	require.Len(t, res.Entities, 1)
	assert.Equal(t, geom.Vec3{}, res.Entities[0].Transform.Position)
	require.Len(t, res.Diags, 1)
	assert.Equal(t, attach.ReasonAnchorFallback, res.Diags[0].Reason)
}

func TestBodyAndAttachmentAcrossPasses(t *testing.T) {
	// Attachment listed before the body: the two-pass resolver must still
	// bind it, regardless of list order.
	res := Build(decode(t, `{
		"objects": [
			{"type":"cone","name":"hat","role":"clothing","attachTo":"head"},
			{"type":"human","name":"hero","role":"body","params":{"scale":2}}
		]
	}`), stubFactory{}, nil)

	require.Len(t, res.Entities, 2)
	var hat *entity.Entity
	for _, e := range res.Entities {
		if e.Name == "hat" {
			hat = e
		}
	}
	require.NotNil(t, hat)
	require.NotNil(t, hat.Parent)
	assert.InDelta(t, 2.4, hat.Transform.Position.Y, 1e-4)
}

func TestCameraFramesAllEntities(t *testing.T) {
	res := Build(decode(t, `{
		"objects": [
			{"type":"cube","params":{"x":-20}},
			{"type":"cube","params":{"x":20}}
		]
	}`), stubFactory{}, nil)

	require.Len(t, res.Entities, 2)
	assert.InDelta(t, 0, res.Camera.LookAt.X, 1e-4)
	// Width 41 dominates; camera distance 82 along (0.7, 0.6, 0.7).
	assert.InDelta(t, 82*0.7, res.Camera.Position.X, 1e-3)
}

func TestBackgroundSanitized(t *testing.T) {
	res := Build(decode(t, `{"objects":[],"background":"#112233"}`), stubFactory{}, nil)
	assert.Equal(t, uint32(0x112233), res.Background)

	res = Build(decode(t, `{"objects":[],"background":{"weird":true}}`), stubFactory{}, nil)
	assert.Equal(t, uint32(0xCCCCCC), res.Background)
}
