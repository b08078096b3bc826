package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestNormalizeNonObject(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Nil(t, Normalize("sphere"))
	assert.Nil(t, Normalize(42.0))
	assert.Nil(t, Normalize([]any{1, 2}))
}

func TestNormalizeDefaults(t *testing.T) {
	obj := Normalize(decode(t, `{"type":"sphere"}`))
	require.NotNil(t, obj)
	assert.Equal(t, "sphere", obj.Type)
	assert.Equal(t, "sphere", obj.Name)
	assert.Equal(t, RoleEnvironment, obj.Role)
	assert.Equal(t, AnchorScene, obj.AttachTo)
	assert.Equal(t, float32(1), obj.ScaleMultiplier)
	assert.Equal(t, uint32(0xCCCCCC), obj.Params.Color)
	assert.Equal(t, float32(1), obj.Params.Scale)
	assert.Equal(t, float32(0), obj.Params.X)
	assert.Equal(t, float32(0), obj.Params.Y)
	assert.Equal(t, float32(0), obj.Params.Z)
	assert.Equal(t, float32(1), obj.Params.X2)
	assert.Nil(t, obj.Animation)
}

func TestNormalizeExtremeScale(t *testing.T) {
	obj := Normalize(decode(t, `{"type":"cube","params":{"scale":100}}`))
	require.NotNil(t, obj)
	assert.Equal(t, float32(10), obj.Params.Scale)

	obj = Normalize(decode(t, `{"type":"cube","params":{"scale":0.0001}}`))
	require.NotNil(t, obj)
	assert.Equal(t, float32(0.1), obj.Params.Scale)
}

func TestNormalizeNonFinitePosition(t *testing.T) {
	obj := Normalize(map[string]any{
		"type":   "cube",
		"params": map[string]any{"x": math.NaN(), "y": math.Inf(1)},
	})
	require.NotNil(t, obj)
	assert.Equal(t, float32(0), obj.Params.X)
	assert.Equal(t, float32(0), obj.Params.Y)
}

func TestNormalizeBadFieldTypes(t *testing.T) {
	obj := Normalize(decode(t, `{
		"type": 17,
		"name": false,
		"role": "emperor",
		"attachTo": {"k":1},
		"scaleMultiplier": "huge",
		"offset": "nowhere",
		"params": "not an object"
	}`))
	require.NotNil(t, obj)
	assert.Equal(t, "cube", obj.Type)
	assert.Equal(t, "cube", obj.Name)
	assert.Equal(t, RoleEnvironment, obj.Role)
	assert.Equal(t, AnchorScene, obj.AttachTo)
	assert.Equal(t, float32(1), obj.ScaleMultiplier)
	assert.Equal(t, float32(0), obj.Offset.X)
}

func TestNormalizeUnknownTypeKept(t *testing.T) {
	obj := Normalize(decode(t, `{"type":"dragon"}`))
	require.NotNil(t, obj)
	assert.Equal(t, "dragon", obj.Type)
}

func TestNormalizeExtraParamsPassThrough(t *testing.T) {
	obj := Normalize(decode(t, `{"type":"cube","params":{"radius":2,"glow":0.5,"material":"wood"}}`))
	require.NotNil(t, obj)
	assert.Equal(t, float32(2), obj.Params.Radius)
	assert.Equal(t, 0.5, obj.Params.Extra["glow"])
	assert.Equal(t, "wood", obj.Params.Extra["material"])
	_, known := obj.Params.Extra["radius"]
	assert.False(t, known)
}

func TestNormalizeOffsetForms(t *testing.T) {
	obj := Normalize(decode(t, `{"offset":[1,2,3]}`))
	require.NotNil(t, obj)
	assert.Equal(t, float32(2), obj.Offset.Y)

	obj = Normalize(decode(t, `{"offset":{"x":4,"y":5,"z":6}}`))
	require.NotNil(t, obj)
	assert.Equal(t, float32(6), obj.Offset.Z)
}

func TestNormalizeDeterministic(t *testing.T) {
	raw := decode(t, `{"type":"torus","params":{"tube":0.01,"color":"#00ff00"},"role":"prop"}`)
	a := Normalize(raw)
	b := Normalize(raw)
	require.NotNil(t, a)
	assert.Equal(t, *a, *b)
	assert.Equal(t, float32(0.05), a.Params.Tube)
	assert.Equal(t, uint32(0x00FF00), a.Params.Color)
}

func TestNormalizeAnimation(t *testing.T) {
	obj := Normalize(decode(t, `{"animation":{"spinY":1.5,"orbitRadius":-2,"orbitAxis":"Z"}}`))
	require.NotNil(t, obj)
	require.NotNil(t, obj.Animation)
	assert.Equal(t, float32(1.5), obj.Animation.SpinY)
	assert.Equal(t, float32(0), obj.Animation.OrbitRadius)
	assert.Equal(t, "z", obj.Animation.OrbitAxis)
}
