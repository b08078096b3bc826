package anatomy

import (
	"testing"

	"dreamscene/internal/geom"
	"dreamscene/internal/normalize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanoidAnchorOffsets(t *testing.T) {
	g := NewGraph()
	g.Register("b1", "hero", geom.Vec3{X: 2, Y: 1, Z: -3}, 2, true)

	head, body, ok := g.Find(normalize.AnchorHead)
	require.True(t, ok)
	assert.Equal(t, "b1", body.ID)
	assert.Equal(t, geom.Vec3{X: 2, Y: 1 + 2.4, Z: -3}, head)

	legs, _, ok := g.Find(normalize.AnchorLegs)
	require.True(t, ok)
	assert.InDelta(t, 1-0.6, legs.Y, 1e-5)
}

func TestNonHumanoidSingleTorso(t *testing.T) {
	g := NewGraph()
	g.Register("b1", "dog", geom.Vec3{X: 1}, 1, false)

	_, _, ok := g.Find(normalize.AnchorHead)
	assert.False(t, ok)

	torso, _, ok := g.Find(normalize.AnchorTorso)
	require.True(t, ok)
	assert.Equal(t, geom.Vec3{X: 1}, torso)
}

func TestFirstRegisteredWins(t *testing.T) {
	g := NewGraph()
	g.Register("first", "a", geom.Vec3{X: 10}, 1, true)
	g.Register("second", "b", geom.Vec3{X: 20}, 1, true)

	_, body, ok := g.Find(normalize.AnchorHead)
	require.True(t, ok)
	assert.Equal(t, "first", body.ID)
}

func TestReRegisterRecomputesAnchors(t *testing.T) {
	g := NewGraph()
	g.Register("b1", "hero", geom.Vec3{}, 1, true)
	g.Register("b1", "hero", geom.Vec3{}, 3, true)
	assert.Equal(t, 1, g.Len())

	head, _, ok := g.Find(normalize.AnchorHead)
	require.True(t, ok)
	assert.InDelta(t, 3.6, head.Y, 1e-5)
}

func TestHumanoidDetection(t *testing.T) {
	assert.True(t, Humanoid("human", "bob"))
	assert.True(t, Humanoid("cylinder", "a person standing"))
	assert.True(t, Humanoid("capsule", "main character"))
	assert.False(t, Humanoid("sphere", "beach ball"))
}
